package model

import "github.com/lib/pq"

// Visit represents a single patient-doctor encounter
type Visit struct {
	ID                int64  `json:"id" db:"id"`
	Date              Date   `json:"date" db:"date"`
	Location          string `json:"location" db:"location"`
	Symptoms          string `json:"symptoms" db:"symptoms"`
	Diagnosis         string `json:"diagnosis" db:"diagnosis"`
	PrescriptionsText string `json:"prescriptions_text" db:"prescriptions_text"`
	PatientID         int64  `json:"patient_id" db:"patient_id"`
	DoctorID          int64  `json:"doctor_id" db:"doctor_id"`
}

// VisitDetail is the read-side join of a visit with its related display
// fields. Medicines carries the names of all prescribed medicines.
type VisitDetail struct {
	ID                int64          `json:"id" db:"id"`
	Date              Date           `json:"date" db:"date"`
	Location          string         `json:"location" db:"location"`
	Symptoms          string         `json:"symptoms" db:"symptoms"`
	Diagnosis         string         `json:"diagnosis" db:"diagnosis"`
	PrescriptionsText string         `json:"prescriptions_text" db:"prescriptions_text"`
	PatientName       string         `json:"patient_name" db:"patient_name"`
	DoctorName        string         `json:"doctor_name" db:"doctor_name"`
	Medicines         pq.StringArray `json:"medicines" db:"medicines"`
}

// Prescription links one visit to one medicine
type Prescription struct {
	ID         int64 `json:"id" db:"id"`
	VisitID    int64 `json:"visit_id" db:"visit_id"`
	MedicineID int64 `json:"medicine_id" db:"medicine_id"`
}

// CreateVisitRequest represents visit creation parameters. MedicineIDs
// produce one prescription per id, committed atomically with the visit.
type CreateVisitRequest struct {
	Date              string  `json:"date" binding:"required"`
	Location          string  `json:"location" binding:"required"`
	Symptoms          string  `json:"symptoms" binding:"required"`
	Diagnosis         string  `json:"diagnosis" binding:"required"`
	PrescriptionsText string  `json:"prescriptions_text" binding:"required"`
	PatientID         int64   `json:"patient_id" binding:"required"`
	DoctorID          int64   `json:"doctor_id" binding:"required"`
	MedicineIDs       []int64 `json:"medicine_ids"`
}
