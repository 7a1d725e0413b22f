package models

import "time"

type Feedback struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	Timestamp           time.Time  `json:"timestamp"`
	Symptoms            []string   `json:"symptoms"`
	PainLevel           int        `json:"painLevel"`
	EnergyLevel         int        `json:"energyLevel"`
	DigestiveIssues     []string   `json:"digestiveIssues"`
	SleepQuality        int        `json:"sleepQuality"`
	Mood                int        `json:"mood"`
	Complications       []string   `json:"complications"`
	Notes               string     `json:"notes"`
	Medications         []string   `json:"medications"`
	TherapyPhase        string     `json:"therapyPhase"`
	Status              string     `json:"status"`
	DoctorNotes         string     `json:"doctorNotes,omitempty"`
	PrescriptionChanges string     `json:"prescriptionChanges,omitempty"`
	PrescriptionID      string     `json:"prescriptionId,omitempty"`
	ReviewedAt          *time.Time `json:"reviewedAt,omitempty"`
	ReviewedBy          string     `json:"reviewedBy,omitempty"`

	PatientInfo *PatientInfo `json:"patientInfo,omitempty"`
}
