package auth

import (
	"context"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error)
	SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error)
}
