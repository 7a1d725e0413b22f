package models

import "time"

type TherapyRequest struct {
	ID                string     `json:"id"`
	PatientID         string     `json:"patientId"`
	TherapyType       string     `json:"therapyType"`
	Urgency           string     `json:"urgency"`
	Symptoms          []string   `json:"symptoms"`
	Notes             string     `json:"notes"`
	PreferredDoctorID string     `json:"preferredDoctorId,omitempty"`
	Status            string     `json:"status"`
	CreatedAt         time.Time  `json:"createdAt"`
	AssignedDoctorID  string     `json:"assignedDoctorId,omitempty"`
	ScheduledDate     string     `json:"scheduledDate,omitempty"`
	ScheduledTime     string     `json:"scheduledTime,omitempty"`
	TreatmentPlan     string     `json:"treatmentPlan,omitempty"`
	AcceptedAt        *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt        *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason   string     `json:"rejectionReason,omitempty"`

	// Joined views, filled on reads only.
	PatientInfo *PatientInfo `json:"patientInfo,omitempty"`
	DoctorInfo  *DoctorInfo  `json:"doctorInfo,omitempty"`
}
