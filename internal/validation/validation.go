// Package validation holds the field-level checks for inbound patient and
// medicine payloads. Every check runs regardless of earlier failures so a
// single pass reports all violations in order.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/medcoop/clinic-api/internal/model"
)

// trimmedLen measures a field in runes, not bytes, so non-ASCII names
// count correctly.
func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// ValidatePatient returns the ordered list of violations in req, empty when
// the payload is valid.
func ValidatePatient(req *model.CreatePatientRequest) []string {
	var errs []string

	if trimmedLen(req.Name) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}

	if req.Gender != model.GenderMale && req.Gender != model.GenderFemale {
		errs = append(errs, `gender must be "male" or "female"`)
	}

	if req.BirthDate == "" {
		errs = append(errs, "birth date is required")
	} else if birth, err := model.ParseDate(req.BirthDate); err != nil {
		errs = append(errs, "birth date must be a valid YYYY-MM-DD date")
	} else if birth.Time.After(model.Today().Time) {
		errs = append(errs, "birth date cannot be in the future")
	}

	if trimmedLen(req.Address) < 5 {
		errs = append(errs, "address must be at least 5 characters")
	}

	return errs
}

// ValidateMedicine returns the ordered list of violations in req.
func ValidateMedicine(req *model.CreateMedicineRequest) []string {
	var errs []string

	if trimmedLen(req.Name) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}

	if trimmedLen(req.UsageMethod) < 5 {
		errs = append(errs, "usage method must be at least 5 characters")
	}

	if trimmedLen(req.Description) < 10 {
		errs = append(errs, "description must be at least 10 characters")
	}

	if trimmedLen(req.SideEffects) < 5 {
		errs = append(errs, "side effects must be at least 5 characters")
	}

	return errs
}
