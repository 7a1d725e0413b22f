package prescriptions

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/requests"
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, request *requests.CreatePrescription) (string, error)
	ListForPatient(ctx context.Context, patientID string) ([]*models.Prescription, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]*models.Prescription, error)
}
