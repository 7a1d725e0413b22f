package therapy

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/requests"
)

type TherapyUsecase interface {
	Submit(ctx context.Context, request *requests.SubmitTherapyRequest) (string, error)
	Accept(ctx context.Context, request *requests.AcceptTherapyRequest) (*models.TherapyRequest, error)
	Reject(ctx context.Context, request *requests.RejectTherapyRequest) (*models.TherapyRequest, error)
	ListPending(ctx context.Context) ([]*models.TherapyRequest, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]*models.TherapyRequest, error)
	ListForPatient(ctx context.Context, patientID string) ([]*models.TherapyRequest, error)
}
