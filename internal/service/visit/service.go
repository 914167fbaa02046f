package visit

import (
	"context"
	"fmt"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
	"github.com/medcoop/clinic-api/pkg/errors"
)

type Service interface {
	// CreateVisit records the visit and one prescription per medicine id as
	// a single atomic unit.
	CreateVisit(ctx context.Context, req *model.CreateVisitRequest) (*model.Visit, error)
	ListVisits(ctx context.Context) ([]*model.VisitDetail, error)
}

type service struct {
	repo repository.VisitRepository
}

func NewService(repo repository.VisitRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreateVisit(ctx context.Context, req *model.CreateVisitRequest) (*model.Visit, error) {
	date, err := model.ParseDate(req.Date)
	if err != nil {
		return nil, errors.Validation([]string{"date must be a valid YYYY-MM-DD date"})
	}

	visit := &model.Visit{
		Date:              date,
		Location:          req.Location,
		Symptoms:          req.Symptoms,
		Diagnosis:         req.Diagnosis,
		PrescriptionsText: req.PrescriptionsText,
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
	}
	if err := s.repo.CreateWithPrescriptions(ctx, visit, req.MedicineIDs); err != nil {
		return nil, fmt.Errorf("failed to record visit: %w", err)
	}
	return visit, nil
}

func (s *service) ListVisits(ctx context.Context) ([]*model.VisitDetail, error) {
	return s.repo.ListDetailed(ctx)
}
