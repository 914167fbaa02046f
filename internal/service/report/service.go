package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository"
)

// DefaultRankingLimit bounds the popular-diagnoses and popular-medicines
// rankings.
const DefaultRankingLimit = 5

// csvHeader fixes the export column order. Downstream consumers parse by
// position, so this must not change.
var csvHeader = []string{
	"Date", "Patient", "Doctor", "Location", "Symptoms",
	"Diagnosis", "Prescriptions", "Medicines",
}

const (
	statsCacheKey = "overall_statistics"
	statsCacheTTL = 30 * time.Second
)

type Service interface {
	CountVisitsByDate(ctx context.Context, date model.Date) (*model.DateCount, error)
	CountVisitsByDiagnosis(ctx context.Context, diagnosis string) (int, error)
	MedicineSideEffects(ctx context.Context, medicineID int64) (*model.MedicineSideEffects, error)
	PopularDiagnoses(ctx context.Context, limit int) ([]*model.DiagnosisCount, error)
	PopularMedicines(ctx context.Context, limit int) ([]*model.MedicineCount, error)
	SearchPatients(ctx context.Context, query string) ([]*model.Patient, error)
	PatientHistory(ctx context.Context, patientID int64) ([]*model.VisitDetail, error)
	DoctorSchedule(ctx context.Context, doctorID int64, start, end model.Date) ([]*model.VisitDetail, error)
	ExportVisitsToCSV(ctx context.Context, start, end model.Date) (string, error)
	OverallStatistics(ctx context.Context) (*model.Statistics, error)
}

type service struct {
	visits    repository.VisitRepository
	patients  repository.PatientRepository
	medicines repository.MedicineRepository
	reports   repository.ReportRepository
	cache     *gocache.Cache
}

func NewService(visits repository.VisitRepository, patients repository.PatientRepository,
	medicines repository.MedicineRepository, reports repository.ReportRepository) Service {
	return &service{
		visits:    visits,
		patients:  patients,
		medicines: medicines,
		reports:   reports,
		cache:     gocache.New(statsCacheTTL, 2*statsCacheTTL),
	}
}

func (s *service) CountVisitsByDate(ctx context.Context, date model.Date) (*model.DateCount, error) {
	count, err := s.visits.CountByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return &model.DateCount{Date: date, Count: count}, nil
}

func (s *service) CountVisitsByDiagnosis(ctx context.Context, diagnosis string) (int, error) {
	return s.visits.CountByDiagnosis(ctx, diagnosis)
}

func (s *service) MedicineSideEffects(ctx context.Context, medicineID int64) (*model.MedicineSideEffects, error) {
	return s.medicines.GetSideEffects(ctx, medicineID)
}

func (s *service) PopularDiagnoses(ctx context.Context, limit int) ([]*model.DiagnosisCount, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	return s.reports.PopularDiagnoses(ctx, limit)
}

func (s *service) PopularMedicines(ctx context.Context, limit int) ([]*model.MedicineCount, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	return s.reports.PopularMedicines(ctx, limit)
}

// SearchPatients matches query as a substring of name or address. An empty
// query returns an empty result rather than every patient.
func (s *service) SearchPatients(ctx context.Context, query string) ([]*model.Patient, error) {
	if query == "" {
		return []*model.Patient{}, nil
	}
	return s.patients.Search(ctx, query)
}

func (s *service) PatientHistory(ctx context.Context, patientID int64) ([]*model.VisitDetail, error) {
	return s.visits.HistoryByPatient(ctx, patientID)
}

func (s *service) DoctorSchedule(ctx context.Context, doctorID int64, start, end model.Date) ([]*model.VisitDetail, error) {
	return s.visits.ScheduleByDoctor(ctx, doctorID, start, end)
}

func (s *service) ExportVisitsToCSV(ctx context.Context, start, end model.Date) (string, error) {
	visits, err := s.visits.DetailedByDateRange(ctx, start, end)
	if err != nil {
		return "", err
	}
	return buildCSV(visits)
}

// buildCSV serializes visits with the fixed column order.
func buildCSV(visits []*model.VisitDetail) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, v := range visits {
		record := []string{
			v.Date.String(),
			v.PatientName,
			v.DoctorName,
			v.Location,
			v.Symptoms,
			v.Diagnosis,
			v.PrescriptionsText,
			strings.Join(v.Medicines, ", "),
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// OverallStatistics aggregates system-wide counters. The weekly figure uses
// true calendar arithmetic over the trailing seven days ending today,
// inclusive. Results are memoized briefly since every dashboard load hits
// this.
func (s *service) OverallStatistics(ctx context.Context) (*model.Statistics, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*model.Statistics), nil
	}

	today := model.Today()
	weekStart := today.AddDays(-6)

	stats, err := s.reports.Statistics(ctx, today, weekStart)
	if err != nil {
		return nil, err
	}

	s.cache.SetDefault(statsCacheKey, stats)
	return stats, nil
}
