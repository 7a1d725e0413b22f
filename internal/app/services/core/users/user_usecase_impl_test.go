package users

import (
	"context"
	"errors"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/exceptions"
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

func newUserFixture() (entities.Store, UserUsecase) {
	store := entities.NewEntityStore(newMemoryRepository())
	return store, NewUserUsecase(store, zap.NewNop())
}

func seedPatient(t *testing.T, store entities.Store, id, name string) {
	t.Helper()
	require.NoError(t, store.PutJSON(context.Background(), entities.UserKey(id), &models.User{
		ID:   id,
		Role: constvars.RoleTypePatient,
		Name: name,
	}))
}

func TestUserUsecase_GetProfile(t *testing.T) {
	ctx := context.Background()
	store, usecase := newUserFixture()
	seedPatient(t, store, "pat-1", "Asha")

	user, err := usecase.GetProfile(ctx, "pat-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
}

func TestUserUsecase_GetProfileMissing(t *testing.T) {
	ctx := context.Background()
	_, usecase := newUserFixture()

	_, err := usecase.GetProfile(ctx, "nobody")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestUserUsecase_ListPatientsForDoctor(t *testing.T) {
	ctx := context.Background()
	store, usecase := newUserFixture()

	seedPatient(t, store, "pat-therapy", "Zoya")
	seedPatient(t, store, "pat-prescription", "Asha")

	// One patient through a therapy request, one through a prescription.
	require.NoError(t, store.PutJSON(ctx, entities.TherapyRequestKey("req-1"), &models.TherapyRequest{
		ID:        "req-1",
		PatientID: "pat-therapy",
		Status:    constvars.TherapyRequestStatusAccepted,
	}))
	require.NoError(t, store.AppendToIndex(ctx, entities.DoctorTherapyRequestsKey("doc-1"), "req-1"))
	require.NoError(t, store.PutJSON(ctx, entities.PrescriptionKey("rx-1"), &models.Prescription{
		ID:        "rx-1",
		PatientID: "pat-prescription",
		DoctorID:  "doc-1",
	}))
	require.NoError(t, store.AppendToIndex(ctx, entities.DoctorPrescriptionsKey("doc-1"), "rx-1"))

	// Two feedback entries for one patient; the latest one is surfaced.
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"fb-old", "fb-new"} {
		require.NoError(t, store.PutJSON(ctx, entities.FeedbackKey("pat-therapy", id), &models.Feedback{
			ID:        id,
			UserID:    "pat-therapy",
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
		require.NoError(t, store.AppendToIndex(ctx, entities.UserFeedbackKey("pat-therapy"), id))
	}

	roster, err := usecase.ListPatientsForDoctor(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, roster, 2)

	// Sorted by name.
	assert.Equal(t, "Asha", roster[0].Name)
	assert.Equal(t, "Zoya", roster[1].Name)

	assert.Equal(t, 0, roster[0].TotalFeedbacks)
	assert.Nil(t, roster[0].RecentFeedback)

	assert.Equal(t, 2, roster[1].TotalFeedbacks)
	require.NotNil(t, roster[1].RecentFeedback)
	assert.Equal(t, "fb-new", roster[1].RecentFeedback.ID)
}

func TestUserUsecase_ListPatientsForDoctorDeduplicates(t *testing.T) {
	ctx := context.Background()
	store, usecase := newUserFixture()

	seedPatient(t, store, "pat-1", "Asha")

	require.NoError(t, store.PutJSON(ctx, entities.TherapyRequestKey("req-1"), &models.TherapyRequest{
		ID:        "req-1",
		PatientID: "pat-1",
		Status:    constvars.TherapyRequestStatusAccepted,
	}))
	require.NoError(t, store.AppendToIndex(ctx, entities.DoctorTherapyRequestsKey("doc-1"), "req-1"))
	require.NoError(t, store.PutJSON(ctx, entities.PrescriptionKey("rx-1"), &models.Prescription{
		ID:        "rx-1",
		PatientID: "pat-1",
		DoctorID:  "doc-1",
	}))
	require.NoError(t, store.AppendToIndex(ctx, entities.DoctorPrescriptionsKey("doc-1"), "rx-1"))

	roster, err := usecase.ListPatientsForDoctor(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, roster, 1)
}

func TestUserUsecase_ListPatientsForDoctorEmpty(t *testing.T) {
	ctx := context.Background()
	_, usecase := newUserFixture()

	roster, err := usecase.ListPatientsForDoctor(ctx, "doc-1")
	require.NoError(t, err)
	assert.Empty(t, roster)
}
