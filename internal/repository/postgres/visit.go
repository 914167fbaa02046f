package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
)

type visitRepository struct {
	db *sqlx.DB
}

func NewVisitRepository(db *sqlx.DB) repository.VisitRepository {
	return &visitRepository{db: db}
}

// detailedQuery joins each visit with its patient and doctor names and
// aggregates the prescribed medicine names. Column order is relied on by
// the CSV export.
const detailedQuery = `
	SELECT v.id, v.date, v.location, v.symptoms, v.diagnosis, v.prescriptions_text,
	       p.name AS patient_name, d.name AS doctor_name,
	       COALESCE(array_agg(m.name ORDER BY m.name) FILTER (WHERE m.name IS NOT NULL), '{}') AS medicines
	FROM visits v
	JOIN patients p ON p.id = v.patient_id
	JOIN doctors d ON d.id = v.doctor_id
	LEFT JOIN prescriptions pr ON pr.visit_id = v.id
	LEFT JOIN medicines m ON m.id = pr.medicine_id
`

const detailedGroupBy = ` GROUP BY v.id, p.name, d.name`

// CreateWithPrescriptions persists the visit and its prescriptions as one
// transaction. A failure on any prescription rolls the visit back too.
func (r *visitRepository) CreateWithPrescriptions(ctx context.Context, visit *model.Visit, medicineIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertVisit := `
		INSERT INTO visits (date, location, symptoms, diagnosis, prescriptions_text, patient_id, doctor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err = tx.QueryRowxContext(ctx, insertVisit,
		visit.Date,
		visit.Location,
		visit.Symptoms,
		visit.Diagnosis,
		visit.PrescriptionsText,
		visit.PatientID,
		visit.DoctorID,
	).Scan(&visit.ID)
	if err != nil {
		return fmt.Errorf("failed to create visit: %w", mapWriteError(err, "visit"))
	}

	insertPrescription := `INSERT INTO prescriptions (visit_id, medicine_id) VALUES ($1, $2)`
	for _, medicineID := range medicineIDs {
		if _, err := tx.ExecContext(ctx, insertPrescription, visit.ID, medicineID); err != nil {
			return fmt.Errorf("failed to create prescription: %w", mapWriteError(err, "prescription"))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit visit: %w", err)
	}
	return nil
}

func (r *visitRepository) ListDetailed(ctx context.Context) ([]*model.VisitDetail, error) {
	query := detailedQuery + detailedGroupBy + ` ORDER BY v.id`
	visits := []*model.VisitDetail{}
	if err := r.db.SelectContext(ctx, &visits, query); err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) HistoryByPatient(ctx context.Context, patientID int64) ([]*model.VisitDetail, error) {
	query := detailedQuery + ` WHERE v.patient_id = $1` + detailedGroupBy + ` ORDER BY v.date DESC`
	visits := []*model.VisitDetail{}
	if err := r.db.SelectContext(ctx, &visits, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to get patient history: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) ScheduleByDoctor(ctx context.Context, doctorID int64, start, end model.Date) ([]*model.VisitDetail, error) {
	query := detailedQuery + ` WHERE v.doctor_id = $1 AND v.date BETWEEN $2 AND $3` +
		detailedGroupBy + ` ORDER BY v.date`
	visits := []*model.VisitDetail{}
	if err := r.db.SelectContext(ctx, &visits, query, doctorID, start, end); err != nil {
		return nil, fmt.Errorf("failed to get doctor schedule: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) DetailedByDateRange(ctx context.Context, start, end model.Date) ([]*model.VisitDetail, error) {
	query := detailedQuery + ` WHERE v.date BETWEEN $1 AND $2` + detailedGroupBy + ` ORDER BY v.date, v.id`
	visits := []*model.VisitDetail{}
	if err := r.db.SelectContext(ctx, &visits, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to get visits by date range: %w", err)
	}
	return visits, nil
}

func (r *visitRepository) CountByDate(ctx context.Context, date model.Date) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM visits WHERE date = $1`, date); err != nil {
		return 0, fmt.Errorf("failed to count visits by date: %w", err)
	}
	return count, nil
}

// CountByDiagnosis is an exact, case-sensitive match.
func (r *visitRepository) CountByDiagnosis(ctx context.Context, diagnosis string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM visits WHERE diagnosis = $1`, diagnosis); err != nil {
		return 0, fmt.Errorf("failed to count visits by diagnosis: %w", err)
	}
	return count, nil
}
