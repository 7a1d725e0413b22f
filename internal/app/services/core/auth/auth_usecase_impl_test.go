package auth

import (
	"context"
	"errors"
	"panchkarma-service/internal/app/config"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
	"panchkarma-service/internal/pkg/exceptions"
	"panchkarma-service/internal/pkg/utils"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRepository struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{data: make(map[string]string)}
}

func (m *memoryRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = string(jsonValue)
	return nil
}

func (m *memoryRepository) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[key]; exists {
		return false, nil
	}
	m.data[key] = string(jsonValue)
	return true, nil
}

func newAuthFixture() (entities.Store, AuthUsecase, *config.InternalConfig) {
	store := entities.NewEntityStore(newMemoryRepository())
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	}
	return store, NewAuthUsecase(store, internalConfig, zap.NewNop()), internalConfig
}

func signUpRequest() *requests.SignUp {
	return &requests.SignUp{
		Email:    "asha@example.com",
		Password: "correct-horse",
		UserData: requests.SignUpUserData{
			Role: constvars.RoleTypePatient,
			Name: "Asha",
			Age:  41,
		},
	}
}

func TestAuthUsecase_SignUpPersistsUserAndCredential(t *testing.T) {
	ctx := context.Background()
	store, usecase, _ := newAuthFixture()

	response, err := usecase.SignUp(ctx, signUpRequest())
	require.NoError(t, err)
	require.True(t, response.Success)
	require.NotNil(t, response.User)
	assert.NotEmpty(t, response.User.ID)
	assert.Equal(t, "asha@example.com", response.User.Email)
	assert.False(t, response.User.CreatedAt.IsZero())

	credential := new(models.Credential)
	found, err := store.GetJSON(ctx, entities.CredentialKey("asha@example.com"), credential)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, response.User.ID, credential.UserID)
	assert.NotEqual(t, "correct-horse", credential.PasswordHash)

	patients, err := store.ReadIndex(ctx, entities.RoleIndexKey(constvars.RoleTypePatient))
	require.NoError(t, err)
	assert.Contains(t, patients, response.User.ID)
}

func TestAuthUsecase_SignUpNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	store, usecase, _ := newAuthFixture()

	request := signUpRequest()
	request.Email = "  Asha@Example.COM "
	response, err := usecase.SignUp(ctx, request)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", response.User.Email)

	credential := new(models.Credential)
	found, err := store.GetJSON(ctx, entities.CredentialKey("asha@example.com"), credential)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestAuthUsecase_SignUpRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	_, usecase, _ := newAuthFixture()

	_, err := usecase.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	_, err = usecase.SignUp(ctx, signUpRequest())
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestAuthUsecase_SignInIssuesSessionToken(t *testing.T) {
	ctx := context.Background()
	_, usecase, internalConfig := newAuthFixture()

	signedUp, err := usecase.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	response, err := usecase.SignIn(ctx, &requests.SignIn{
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.True(t, response.Success)
	require.NotNil(t, response.Session)
	require.NotEmpty(t, response.Session.AccessToken)

	claims, err := utils.ParseSessionJWT(response.Session.AccessToken, internalConfig.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, signedUp.User.ID, claims.UserID)
	assert.Equal(t, constvars.RoleTypePatient, claims.Role)
}

func TestAuthUsecase_SignInRejectsWrongPassword(t *testing.T) {
	ctx := context.Background()
	_, usecase, _ := newAuthFixture()

	_, err := usecase.SignUp(ctx, signUpRequest())
	require.NoError(t, err)

	_, err = usecase.SignIn(ctx, &requests.SignIn{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

func TestAuthUsecase_SignInUnknownEmail(t *testing.T) {
	ctx := context.Background()
	_, usecase, _ := newAuthFixture()

	_, err := usecase.SignIn(ctx, &requests.SignIn{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}
