package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/validation"
	"github.com/medcoop/clinic-api/pkg/errors"
)

type fakeService struct {
	patients []*model.Patient
}

func (f *fakeService) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if errs := validation.ValidatePatient(req); len(errs) > 0 {
		return nil, errors.Validation(errs)
	}
	return &model.Patient{ID: 7, Name: req.Name, Gender: req.Gender, Address: req.Address}, nil
}

func (f *fakeService) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return f.patients, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestCreatePatientReturns201(t *testing.T) {
	r := setupRouter(&fakeService{})

	body := `{"name":"Ivan Ivanov","gender":"male","birth_date":"1990-05-20","address":"12 Lenina St, Moscow"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Status string        `json:"status"`
		Data   model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(7), resp.Data.ID)
	assert.Equal(t, "Ivan Ivanov", resp.Data.Name)
}

func TestCreatePatientReturns422WithAllViolations(t *testing.T) {
	r := setupRouter(&fakeService{})

	body := `{"name":"X","gender":"unknown","birth_date":"bad","address":"abc"}`
	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Status string   `json:"status"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Len(t, resp.Errors, 4, "every violation is reported in one pass")
}

func TestCreatePatientRejectsMalformedJSON(t *testing.T) {
	r := setupRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/patients", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPatients(t *testing.T) {
	r := setupRouter(&fakeService{patients: []*model.Patient{
		{ID: 1, Name: "Ivan Ivanov"},
		{ID: 2, Name: "Maria Petrova"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []model.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Maria Petrova", resp.Data[1].Name)
}
