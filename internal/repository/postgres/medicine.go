package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
)

type medicineRepository struct {
	db *sqlx.DB
}

func NewMedicineRepository(db *sqlx.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	query := `
		INSERT INTO medicines (name, usage_method, description, side_effects)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		medicine.Name,
		medicine.UsageMethod,
		medicine.Description,
		medicine.SideEffects,
	).Scan(&medicine.ID)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", mapWriteError(err, "medicine"))
	}
	return nil
}

func (r *medicineRepository) List(ctx context.Context) ([]*model.Medicine, error) {
	query := `SELECT * FROM medicines ORDER BY id`
	medicines := []*model.Medicine{}
	if err := r.db.SelectContext(ctx, &medicines, query); err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) GetByID(ctx context.Context, id int64) (*model.Medicine, error) {
	query := `SELECT * FROM medicines WHERE id = $1`
	var medicine model.Medicine
	if err := r.db.GetContext(ctx, &medicine, query, id); err != nil {
		return nil, mapLookupError(err, "medicine")
	}
	return &medicine, nil
}

func (r *medicineRepository) GetSideEffects(ctx context.Context, id int64) (*model.MedicineSideEffects, error) {
	query := `SELECT name, side_effects FROM medicines WHERE id = $1`
	var row model.MedicineSideEffects
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, mapLookupError(err, "medicine")
	}
	return &row, nil
}
