package main

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository/postgres"
)

type demoVisit struct {
	date        model.Date
	location    string
	symptoms    string
	diagnosis   string
	notes       string
	patientIdx  int
	doctorIdx   int
	medicineIdx []int
}

// seedDemoData loads a small, self-consistent fixture set: four patients,
// three doctors, four medicines, and five visits with prescriptions.
func seedDemoData(ctx context.Context, db *sqlx.DB) {
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	medicineRepo := postgres.NewMedicineRepository(db)
	visitRepo := postgres.NewVisitRepository(db)

	patients := []*model.Patient{
		{Name: "Ivan Ivanov", Gender: model.GenderMale, BirthDate: model.NewDate(1985, time.May, 15), Address: "10 Lenin St, apt 5, Moscow"},
		{Name: "Anna Petrova", Gender: model.GenderFemale, BirthDate: model.NewDate(1990, time.August, 22), Address: "25 Pushkin St, apt 12, Moscow"},
		{Name: "Petr Sidorov", Gender: model.GenderMale, BirthDate: model.NewDate(1978, time.December, 3), Address: "7 Gagarin St, apt 8, Moscow"},
		{Name: "Maria Kozlova", Gender: model.GenderFemale, BirthDate: model.NewDate(1995, time.March, 18), Address: "15 Mira St, apt 3, Moscow"},
	}
	for _, p := range patients {
		if err := patientRepo.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Str("patient", p.Name).Msg("failed to seed patient")
		}
	}

	doctors := []*model.Doctor{
		{Name: "Dr. Alexey Smirnov"},
		{Name: "Dr. Elena Volkova"},
		{Name: "Dr. Dmitry Novikov"},
	}
	for _, d := range doctors {
		if err := doctorRepo.Create(ctx, d); err != nil {
			log.Fatal().Err(err).Str("doctor", d.Name).Msg("failed to seed doctor")
		}
	}

	medicines := []*model.Medicine{
		{
			Name:        "Paracetamol",
			UsageMethod: "One tablet three times a day after meals",
			Description: "Antipyretic and analgesic for fever and mild pain",
			SideEffects: "Possible allergic reactions, nausea, abdominal pain",
		},
		{
			Name:        "Amoxicillin",
			UsageMethod: "500 mg three times a day for seven days",
			Description: "Broad-spectrum antibacterial for bacterial infections",
			SideEffects: "Diarrhea, nausea, vomiting, allergic reactions",
		},
		{
			Name:        "Ibuprofen",
			UsageMethod: "200-400 mg three to four times a day",
			Description: "Anti-inflammatory, antipyretic and analgesic medicine",
			SideEffects: "Heartburn, nausea, headache, dizziness",
		},
		{
			Name:        "Loratadine",
			UsageMethod: "One tablet once a day",
			Description: "Antihistamine for seasonal and contact allergies",
			SideEffects: "Drowsiness, dry mouth, headache",
		},
	}
	for _, m := range medicines {
		if err := medicineRepo.Create(ctx, m); err != nil {
			log.Fatal().Err(err).Str("medicine", m.Name).Msg("failed to seed medicine")
		}
	}

	visits := []demoVisit{
		{
			date: model.NewDate(2024, time.January, 15), location: "Clinic #1, room 205",
			symptoms: "High temperature, cough, runny nose", diagnosis: "Common cold",
			notes: "Bed rest, plenty of fluids, symptomatic treatment",
			patientIdx: 0, doctorIdx: 0, medicineIdx: []int{0, 2},
		},
		{
			date: model.NewDate(2024, time.January, 15), location: "Clinic #1, room 210",
			symptoms: "Sore throat, difficulty swallowing", diagnosis: "Tonsillitis",
			notes: "Antibacterial therapy, throat gargling",
			patientIdx: 1, doctorIdx: 1, medicineIdx: []int{1},
		},
		{
			date: model.NewDate(2024, time.January, 16), location: "Home visit",
			symptoms: "Skin rash, itching", diagnosis: "Allergic reaction",
			notes: "Remove the allergen, antihistamine therapy",
			patientIdx: 2, doctorIdx: 2, medicineIdx: []int{3},
		},
		{
			date: model.NewDate(2024, time.January, 16), location: "Clinic #1, room 205",
			symptoms: "Headache, weakness", diagnosis: "Tension headache",
			notes: "Pain relief therapy, rest",
			patientIdx: 3, doctorIdx: 0, medicineIdx: []int{2},
		},
		{
			date: model.NewDate(2024, time.January, 17), location: "Clinic #1, room 210",
			symptoms: "Productive cough, shortness of breath", diagnosis: "Bronchitis",
			notes: "Antibacterial therapy, expectorants",
			patientIdx: 0, doctorIdx: 1, medicineIdx: []int{1, 0},
		},
	}

	for _, v := range visits {
		medicineIDs := make([]int64, 0, len(v.medicineIdx))
		for _, idx := range v.medicineIdx {
			medicineIDs = append(medicineIDs, medicines[idx].ID)
		}

		visit := &model.Visit{
			Date:              v.date,
			Location:          v.location,
			Symptoms:          v.symptoms,
			Diagnosis:         v.diagnosis,
			PrescriptionsText: v.notes,
			PatientID:         patients[v.patientIdx].ID,
			DoctorID:          doctors[v.doctorIdx].ID,
		}
		if err := visitRepo.CreateWithPrescriptions(ctx, visit, medicineIDs); err != nil {
			log.Fatal().Err(err).Str("diagnosis", v.diagnosis).Msg("failed to seed visit")
		}
	}

	log.Info().
		Int("patients", len(patients)).
		Int("doctors", len(doctors)).
		Int("medicines", len(medicines)).
		Int("visits", len(visits)).
		Msg("demo data created")
}
