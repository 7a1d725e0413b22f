package notifications

import (
	"context"
	"errors"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
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

func newNotificationFixture(t *testing.T, doctorIDs ...string) (entities.Store, NotificationUsecase) {
	t.Helper()
	store := entities.NewEntityStore(newMemoryRepository())
	ctx := context.Background()
	for _, doctorID := range doctorIDs {
		require.NoError(t, store.AppendToIndex(ctx, entities.RoleIndexKey(constvars.RoleTypeDoctor), doctorID))
	}
	return store, NewNotificationUsecase(store, zap.NewNop())
}

func TestNotificationUsecase_NotifyDoctorsFansOutToRoster(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t, "doc-1", "doc-2")

	usecase.NotifyDoctors(ctx, &DoctorFanOutInput{
		RequestID:   "req-1",
		PatientID:   "pat-1",
		TherapyType: "abhyanga",
		Urgency:     constvars.UrgencyHigh,
	})

	for _, doctorID := range []string{"doc-1", "doc-2"} {
		list, err := usecase.ListForUser(ctx, doctorID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, constvars.NotificationTypeTherapyRequest, list[0].Type)
		assert.Equal(t, constvars.UrgencyHigh, list[0].Priority)
		assert.Equal(t, "req-1", list[0].Data["requestId"])
		assert.False(t, list[0].Read)
	}
}

func TestNotificationUsecase_NotifyDoctorsPreferredDoctorOnly(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t, "doc-1", "doc-2", "doc-3")

	usecase.NotifyDoctors(ctx, &DoctorFanOutInput{
		RequestID:         "req-1",
		PatientID:         "pat-1",
		TherapyType:       "abhyanga",
		Urgency:           constvars.UrgencyMedium,
		PreferredDoctorID: "doc-3",
	})

	for _, doctorID := range []string{"doc-1", "doc-2"} {
		list, err := usecase.ListForUser(ctx, doctorID)
		require.NoError(t, err)
		assert.Empty(t, list)
	}

	list, err := usecase.ListForUser(ctx, "doc-3")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNotificationUsecase_FanOutFeedbackPriority(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t, "doc-1")

	usecase.FanOutFeedback(ctx, &FeedbackFanOutInput{
		FeedbackID:  "fb-plain",
		PatientID:   "pat-1",
		PatientName: "Asha",
		PainLevel:   4,
	})
	usecase.FanOutFeedback(ctx, &FeedbackFanOutInput{
		FeedbackID:    "fb-complicated",
		PatientID:     "pat-1",
		PatientName:   "Asha",
		PainLevel:     8,
		Complications: []string{"fever"},
	})

	list, err := usecase.ListForUser(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	byFeedback := make(map[string]*models.Notification)
	for _, notification := range list {
		byFeedback[notification.Data["feedbackId"].(string)] = notification
	}
	assert.Equal(t, constvars.UrgencyMedium, byFeedback["fb-plain"].Priority)
	assert.Equal(t, false, byFeedback["fb-plain"].Data["hasComplications"])
	assert.Equal(t, constvars.UrgencyHigh, byFeedback["fb-complicated"].Priority)
	assert.Equal(t, true, byFeedback["fb-complicated"].Data["hasComplications"])
}

func TestNotificationUsecase_FanOutFeedbackTruncatesSymptoms(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t, "doc-1")

	usecase.FanOutFeedback(ctx, &FeedbackFanOutInput{
		FeedbackID:  "fb-1",
		PatientID:   "pat-1",
		PatientName: "Asha",
		Symptoms:    []string{"one", "two", "three", "four", "five"},
	})

	list, err := usecase.ListForUser(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	symptoms, ok := list[0].Data["symptoms"].([]interface{})
	require.True(t, ok)
	assert.Len(t, symptoms, constvars.NotificationMaxSymptoms)
}

func TestNotificationUsecase_SendAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t)

	notificationID, err := usecase.Send(ctx, &requests.SendNotification{
		UserID:  "user-1",
		Message: "hello",
	})
	require.NoError(t, err)
	require.NotEmpty(t, notificationID)

	list, err := usecase.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, constvars.NotificationTypeInfo, list[0].Type)
	assert.Equal(t, constvars.UrgencyMedium, list[0].Priority)
}

func TestNotificationUsecase_ListForUserNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, usecase := newNotificationFixture(t)

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"n-old", "n-mid", "n-new"} {
		require.NoError(t, store.PutJSON(ctx, entities.NotificationKey(id), &models.Notification{
			ID:        id,
			UserID:    "user-1",
			Type:      constvars.NotificationTypeInfo,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
		require.NoError(t, store.AppendToIndex(ctx, entities.UserNotificationsKey("user-1"), id))
	}

	list, err := usecase.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "n-new", list[0].ID)
	assert.Equal(t, "n-old", list[2].ID)
}

func TestNotificationUsecase_MarkRead(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t)

	notificationID, err := usecase.Send(ctx, &requests.SendNotification{
		UserID:  "user-1",
		Message: "hello",
	})
	require.NoError(t, err)

	updated, err := usecase.MarkRead(ctx, "user-1", notificationID)
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, "hello", updated.Message)
}

func TestNotificationUsecase_MarkReadRejectsOtherUsers(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t)

	notificationID, err := usecase.Send(ctx, &requests.SendNotification{
		UserID:  "user-1",
		Message: "hello",
	})
	require.NoError(t, err)

	_, err = usecase.MarkRead(ctx, "user-2", notificationID)
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
}

func TestNotificationUsecase_MarkReadMissingNotification(t *testing.T) {
	ctx := context.Background()
	_, usecase := newNotificationFixture(t)

	_, err := usecase.MarkRead(ctx, "user-1", "absent")
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}
