package models

import "time"

type Medication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

type Prescription struct {
	ID           string       `json:"id"`
	PatientID    string       `json:"patientId"`
	DoctorID     string       `json:"doctorId"`
	Medications  []Medication `json:"medications"`
	Instructions string       `json:"instructions"`
	Duration     string       `json:"duration"`
	Notes        string       `json:"notes"`
	FeedbackID   string       `json:"feedbackId,omitempty"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`

	PatientInfo *PatientInfo `json:"patientInfo,omitempty"`
	DoctorInfo  *DoctorInfo  `json:"doctorInfo,omitempty"`
}
