package auth

import (
	"context"
	"panchkarma-service/internal/app/config"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/dto/responses"
	"panchkarma-service/internal/pkg/exceptions"
	"panchkarma-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	EntityStore    entities.Store
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(entityStore entities.Store, internalConfig *config.InternalConfig, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		EntityStore:    entityStore,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing := new(models.Credential)
	found, err := uc.EntityStore.GetJSON(ctx, entities.CredentialKey(email), existing)
	if err != nil {
		return nil, err
	}
	if found {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:             uuid.NewString(),
		Email:          email,
		Role:           request.UserData.Role,
		Name:           request.UserData.Name,
		Phone:          request.UserData.Phone,
		Age:            request.UserData.Age,
		Specialization: request.UserData.Specialization,
		TherapyPlan:    request.UserData.TherapyPlan,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	credential := &models.Credential{
		UserID:       user.ID,
		PasswordHash: string(passwordHash),
	}

	err = uc.EntityStore.PutJSON(ctx, entities.CredentialKey(email), credential)
	if err != nil {
		return nil, err
	}
	err = uc.EntityStore.PutJSON(ctx, entities.UserKey(user.ID), user)
	if err != nil {
		return nil, err
	}
	err = uc.EntityStore.AppendToIndex(ctx, entities.RoleIndexKey(user.Role), user.ID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.SignUp registered user",
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String("role", user.Role),
	)
	return &responses.SignUp{Success: true, User: user}, nil
}

func (uc *authUsecase) SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error) {
	email := strings.ToLower(strings.TrimSpace(request.Email))

	credential := new(models.Credential)
	found, err := uc.EntityStore.GetJSON(ctx, entities.CredentialKey(email), credential)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	err = bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(request.Password))
	if err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}

	user := new(models.User)
	found, err = uc.EntityStore.GetJSON(ctx, entities.UserKey(credential.UserID), user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	accessToken, err := utils.GenerateSessionJWT(user.ID, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.SignIn user signed in",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return &responses.SignIn{
		Success: true,
		User:    user,
		Session: &responses.Session{AccessToken: accessToken},
	}, nil
}
