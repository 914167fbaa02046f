package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medcoop/clinic-api/internal/model"
)

func validPatient() *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		Name:      "Ivan Ivanov",
		Gender:    model.GenderMale,
		BirthDate: "1985-05-15",
		Address:   "10 Lenin St, Moscow",
	}
}

func TestValidatePatientValid(t *testing.T) {
	assert.Empty(t, ValidatePatient(validPatient()))
}

func TestValidatePatientShortName(t *testing.T) {
	req := validPatient()
	req.Name = " a "

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "name")
}

func TestValidatePatientBadGender(t *testing.T) {
	req := validPatient()
	req.Gender = "unknown"

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "gender")
}

func TestValidatePatientMissingBirthDate(t *testing.T) {
	req := validPatient()
	req.BirthDate = ""

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "birth date is required")
}

func TestValidatePatientUnparseableBirthDate(t *testing.T) {
	req := validPatient()
	req.BirthDate = "15.05.1985"

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "valid YYYY-MM-DD")
}

func TestValidatePatientFutureBirthDate(t *testing.T) {
	req := validPatient()
	req.BirthDate = model.Today().AddDays(1).String()

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "future")
}

func TestValidatePatientBirthDateTodayAllowed(t *testing.T) {
	req := validPatient()
	req.BirthDate = model.Today().String()

	assert.Empty(t, ValidatePatient(req))
}

func TestValidatePatientShortAddress(t *testing.T) {
	req := validPatient()
	req.Address = "abc"

	errs := ValidatePatient(req)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0], "address")
}

func TestValidatePatientReportsAllViolations(t *testing.T) {
	req := &model.CreatePatientRequest{
		Name:      "x",
		Gender:    "other",
		BirthDate: "not-a-date",
		Address:   "y",
	}

	errs := ValidatePatient(req)
	assert.Len(t, errs, 4)
}

func TestValidatePatientCountsRunesNotBytes(t *testing.T) {
	req := validPatient()
	req.Name = "Ян" // two Cyrillic runes, four bytes

	assert.Empty(t, ValidatePatient(req))
}

func validMedicine() *model.CreateMedicineRequest {
	return &model.CreateMedicineRequest{
		Name:        "Paracetamol",
		UsageMethod: "One tablet three times a day",
		Description: "Antipyretic and analgesic medicine",
		SideEffects: "Possible allergic reactions",
	}
}

func TestValidateMedicineValid(t *testing.T) {
	assert.Empty(t, ValidateMedicine(validMedicine()))
}

func TestValidateMedicineEachField(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.CreateMedicineRequest)
		message string
	}{
		{"short name", func(r *model.CreateMedicineRequest) { r.Name = "a" }, "name"},
		{"short usage", func(r *model.CreateMedicineRequest) { r.UsageMethod = "oral" }, "usage method"},
		{"short description", func(r *model.CreateMedicineRequest) { r.Description = "pills" }, "description"},
		{"short side effects", func(r *model.CreateMedicineRequest) { r.SideEffects = "none" }, "side effects"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validMedicine()
			tc.mutate(req)

			errs := ValidateMedicine(req)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs[0], tc.message)
		})
	}
}

func TestValidateMedicineReportsAllViolations(t *testing.T) {
	req := &model.CreateMedicineRequest{}
	assert.Len(t, ValidateMedicine(req), 4)
}

func TestValidatePatientOldBirthDateAllowed(t *testing.T) {
	req := validPatient()
	req.BirthDate = model.NewDate(1900, time.January, 1).String()

	assert.Empty(t, ValidatePatient(req))
}
