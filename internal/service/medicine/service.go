package medicine

import (
	"context"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
	"github.com/medcoop/clinic-api/internal/validation"
	"github.com/medcoop/clinic-api/pkg/errors"
)

type Service interface {
	CreateMedicine(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error)
	ListMedicines(ctx context.Context) ([]*model.Medicine, error)
}

type service struct {
	repo repository.MedicineRepository
}

func NewService(repo repository.MedicineRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreateMedicine(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error) {
	if errs := validation.ValidateMedicine(req); len(errs) > 0 {
		return nil, errors.Validation(errs)
	}

	medicine := &model.Medicine{
		Name:        req.Name,
		UsageMethod: req.UsageMethod,
		Description: req.Description,
		SideEffects: req.SideEffects,
	}
	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, err
	}
	return medicine, nil
}

func (s *service) ListMedicines(ctx context.Context) ([]*model.Medicine, error) {
	return s.repo.List(ctx)
}
