package patient

import (
	"context"
	"fmt"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
	"github.com/medcoop/clinic-api/internal/validation"
	"github.com/medcoop/clinic-api/pkg/errors"
)

type Service interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
}

type service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if errs := validation.ValidatePatient(req); len(errs) > 0 {
		return nil, errors.Validation(errs)
	}

	// Validation guarantees the date parses.
	birthDate, err := model.ParseDate(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse birth date: %w", err)
	}

	patient := &model.Patient{
		Name:      req.Name,
		Gender:    req.Gender,
		BirthDate: birthDate,
		Address:   req.Address,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return s.repo.List(ctx)
}
