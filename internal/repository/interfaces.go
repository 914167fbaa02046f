package repository

import (
	"context"

	"github.com/medcoop/clinic-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*model.User, error)
}

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	List(ctx context.Context) ([]*model.Patient, error)
	GetByID(ctx context.Context, id int64) (*model.Patient, error)
	// Search matches query as a substring of name or address.
	Search(ctx context.Context, query string) ([]*model.Patient, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context) ([]*model.Doctor, error)
	GetByID(ctx context.Context, id int64) (*model.Doctor, error)
}

type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	List(ctx context.Context) ([]*model.Medicine, error)
	GetByID(ctx context.Context, id int64) (*model.Medicine, error)
	GetSideEffects(ctx context.Context, id int64) (*model.MedicineSideEffects, error)
}

type VisitRepository interface {
	// CreateWithPrescriptions inserts the visit and one prescription row per
	// medicine id in a single transaction. Either all rows persist or none.
	CreateWithPrescriptions(ctx context.Context, visit *model.Visit, medicineIDs []int64) error
	ListDetailed(ctx context.Context) ([]*model.VisitDetail, error)
	HistoryByPatient(ctx context.Context, patientID int64) ([]*model.VisitDetail, error)
	ScheduleByDoctor(ctx context.Context, doctorID int64, start, end model.Date) ([]*model.VisitDetail, error)
	DetailedByDateRange(ctx context.Context, start, end model.Date) ([]*model.VisitDetail, error)
	CountByDate(ctx context.Context, date model.Date) (int, error)
	CountByDiagnosis(ctx context.Context, diagnosis string) (int, error)
}

type ReportRepository interface {
	PopularDiagnoses(ctx context.Context, limit int) ([]*model.DiagnosisCount, error)
	PopularMedicines(ctx context.Context, limit int) ([]*model.MedicineCount, error)
	Statistics(ctx context.Context, today model.Date, weekStart model.Date) (*model.Statistics, error)
}
