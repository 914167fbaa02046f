package model

// Doctor represents a practicing doctor
type Doctor struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// CreateDoctorRequest represents doctor creation parameters
type CreateDoctorRequest struct {
	Name string `json:"name" binding:"required,min=2"`
}
