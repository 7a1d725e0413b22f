package users

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	ListPatientsForDoctor(ctx context.Context, doctorID string) ([]*responses.DoctorPatient, error)
}
