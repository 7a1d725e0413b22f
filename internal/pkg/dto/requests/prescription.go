package requests

import "panchkarma-service/internal/app/models"

type CreatePrescription struct {
	PatientID    string              `json:"patientId" validate:"required"`
	DoctorID     string              `json:"doctorId" validate:"required"`
	Medications  []models.Medication `json:"medications" validate:"required,min=1"`
	Instructions string              `json:"instructions"`
	Duration     string              `json:"duration"`
	Notes        string              `json:"notes"`
	FeedbackID   string              `json:"feedbackId"`
}
