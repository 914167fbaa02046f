package model

// Patient gender constants
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Patient represents a registered patient
type Patient struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Gender    string `json:"gender" db:"gender"`
	BirthDate Date   `json:"birth_date" db:"birth_date"`
	Address   string `json:"address" db:"address"`
}

// CreatePatientRequest represents patient creation parameters. Field-level
// validation happens in the validation package so every violation is
// reported at once, not through binding tags.
type CreatePatientRequest struct {
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
}
