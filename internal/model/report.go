package model

// DiagnosisCount is one row of the popular-diagnoses ranking
type DiagnosisCount struct {
	Diagnosis string `json:"diagnosis" db:"diagnosis"`
	Count     int    `json:"count" db:"count"`
}

// MedicineCount is one row of the popular-medicines ranking
type MedicineCount struct {
	Medicine string `json:"medicine" db:"medicine"`
	Count    int    `json:"count" db:"count"`
}

// Statistics holds the system-wide aggregate counters. VisitsThisWeek
// covers the trailing seven calendar days ending today, inclusive.
type Statistics struct {
	TotalPatients  int `json:"total_patients" db:"total_patients"`
	TotalDoctors   int `json:"total_doctors" db:"total_doctors"`
	TotalMedicines int `json:"total_medicines" db:"total_medicines"`
	TotalVisits    int `json:"total_visits" db:"total_visits"`
	VisitsToday    int `json:"visits_today" db:"visits_today"`
	VisitsThisWeek int `json:"visits_this_week" db:"visits_this_week"`
}

// DateCount is the count of visits on a single date
type DateCount struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
}
