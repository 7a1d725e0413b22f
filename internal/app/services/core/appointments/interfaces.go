package appointments

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/requests"
)

type AppointmentUsecase interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (string, error)
	ListForPatient(ctx context.Context, patientID string) ([]*models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error)
}
