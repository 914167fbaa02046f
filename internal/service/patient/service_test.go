package patient

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/pkg/errors"
)

type fakePatientRepo struct {
	createCalls int
	lastPatient *model.Patient
	createErr   error
	patients    []*model.Patient
}

func (f *fakePatientRepo) Create(ctx context.Context, patient *model.Patient) error {
	f.createCalls++
	f.lastPatient = patient
	if f.createErr != nil {
		return f.createErr
	}
	patient.ID = 1
	return nil
}

func (f *fakePatientRepo) List(ctx context.Context) ([]*model.Patient, error) {
	return f.patients, nil
}

func (f *fakePatientRepo) GetByID(ctx context.Context, id int64) (*model.Patient, error) {
	return nil, errors.NotFound("patient", nil)
}

func (f *fakePatientRepo) Search(ctx context.Context, query string) ([]*model.Patient, error) {
	return nil, nil
}

func TestCreatePatientPersistsValidPayload(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewService(repo)

	created, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:      "Ivan Ivanov",
		Gender:    model.GenderMale,
		BirthDate: "1990-05-20",
		Address:   "12 Lenina St, Moscow",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, model.NewDate(1990, time.May, 20), created.BirthDate)
	assert.Equal(t, 1, repo.createCalls)
}

func TestCreatePatientInvalidPayloadNeverReachesRepository(t *testing.T) {
	repo := &fakePatientRepo{}
	svc := NewService(repo)

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:      "X",
		Gender:    "unknown",
		BirthDate: "not-a-date",
		Address:   "abc",
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrValidation, appErr.Code)
	assert.Len(t, appErr.Details, 4)
	assert.Zero(t, repo.createCalls)
}

func TestCreatePatientPropagatesRepositoryError(t *testing.T) {
	repo := &fakePatientRepo{createErr: errors.Internal(nil)}
	svc := NewService(repo)

	_, err := svc.CreatePatient(context.Background(), &model.CreatePatientRequest{
		Name:      "Ivan Ivanov",
		Gender:    model.GenderMale,
		BirthDate: "1990-05-20",
		Address:   "12 Lenina St, Moscow",
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInternal, errors.Code(err))
}

func TestListPatients(t *testing.T) {
	repo := &fakePatientRepo{patients: []*model.Patient{{ID: 1, Name: "Ivan Ivanov"}}}
	svc := NewService(repo)

	patients, err := svc.ListPatients(context.Background())
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ivan Ivanov", patients[0].Name)
}
