package model

// Medicine represents a prescribable medicine. Names are unique.
type Medicine struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	UsageMethod string `json:"usage_method" db:"usage_method"`
	Description string `json:"description" db:"description"`
	SideEffects string `json:"side_effects" db:"side_effects"`
}

// CreateMedicineRequest represents medicine creation parameters; validated
// by the validation package.
type CreateMedicineRequest struct {
	Name        string `json:"name"`
	UsageMethod string `json:"usage_method"`
	Description string `json:"description"`
	SideEffects string `json:"side_effects"`
}

// MedicineSideEffects is the side-effects lookup projection
type MedicineSideEffects struct {
	Name        string `json:"name" db:"name"`
	SideEffects string `json:"side_effects" db:"side_effects"`
}
