package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// PopularDiagnoses ranks diagnoses by visit count. Ties break on the
// diagnosis string so the ordering is stable across runs.
func (r *reportRepository) PopularDiagnoses(ctx context.Context, limit int) ([]*model.DiagnosisCount, error) {
	query := `
		SELECT diagnosis, COUNT(*) AS count
		FROM visits
		GROUP BY diagnosis
		ORDER BY count DESC, diagnosis
		LIMIT $1
	`
	rows := []*model.DiagnosisCount{}
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank diagnoses: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) PopularMedicines(ctx context.Context, limit int) ([]*model.MedicineCount, error) {
	query := `
		SELECT m.name AS medicine, COUNT(*) AS count
		FROM prescriptions p
		JOIN medicines m ON m.id = p.medicine_id
		GROUP BY m.name
		ORDER BY count DESC, m.name
		LIMIT $1
	`
	rows := []*model.MedicineCount{}
	if err := r.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank medicines: %w", err)
	}
	return rows, nil
}

// Statistics computes all aggregate counters in one round trip. The week
// window is [weekStart, today], both inclusive; callers pass calendar-correct
// bounds.
func (r *reportRepository) Statistics(ctx context.Context, today, weekStart model.Date) (*model.Statistics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM patients)  AS total_patients,
			(SELECT COUNT(*) FROM doctors)   AS total_doctors,
			(SELECT COUNT(*) FROM medicines) AS total_medicines,
			(SELECT COUNT(*) FROM visits)    AS total_visits,
			(SELECT COUNT(*) FROM visits WHERE date = $1) AS visits_today,
			(SELECT COUNT(*) FROM visits WHERE date BETWEEN $2 AND $1) AS visits_this_week
	`
	var stats model.Statistics
	if err := r.db.GetContext(ctx, &stats, query, today, weekStart); err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}
	return &stats, nil
}
