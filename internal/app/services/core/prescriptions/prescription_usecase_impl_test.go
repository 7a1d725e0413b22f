package prescriptions

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
	"panchkarma-service/internal/app/services/core/notifications"
	"panchkarma-service/internal/pkg/constvars"
	"panchkarma-service/internal/pkg/dto/requests"
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

type prescriptionFixture struct {
	store        entities.Store
	notification notifications.NotificationUsecase
	usecase      PrescriptionUsecase
}

func newPrescriptionFixture() *prescriptionFixture {
	logger := zap.NewNop()
	store := entities.NewEntityStore(newMemoryRepository())
	notificationUsecase := notifications.NewNotificationUsecase(store, logger)
	return &prescriptionFixture{
		store:        store,
		notification: notificationUsecase,
		usecase:      NewPrescriptionUsecase(store, notificationUsecase, logger),
	}
}

func sampleMedications() []models.Medication {
	return []models.Medication{
		{Name: "Triphala", Dosage: "500mg", Frequency: "twice daily", Duration: "14 days"},
	}
}

func TestPrescriptionUsecase_CreateIndexesBothSides(t *testing.T) {
	ctx := context.Background()
	fixture := newPrescriptionFixture()

	require.NoError(t, fixture.store.PutJSON(ctx, entities.UserKey("doc-1"), &models.User{
		ID:   "doc-1",
		Role: constvars.RoleTypeDoctor,
		Name: "Mehta",
	}))

	prescriptionID, err := fixture.usecase.Create(ctx, &requests.CreatePrescription{
		PatientID:   "pat-1",
		DoctorID:    "doc-1",
		Medications: sampleMedications(),
	})
	require.NoError(t, err)
	require.NotEmpty(t, prescriptionID)

	stored := new(models.Prescription)
	found, err := fixture.store.GetJSON(ctx, entities.PrescriptionKey(prescriptionID), stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constvars.PrescriptionStatusActive, stored.Status)

	patientIndex, err := fixture.store.ReadIndex(ctx, entities.PatientPrescriptionsKey("pat-1"))
	require.NoError(t, err)
	assert.Contains(t, patientIndex, prescriptionID)

	doctorIndex, err := fixture.store.ReadIndex(ctx, entities.DoctorPrescriptionsKey("doc-1"))
	require.NoError(t, err)
	assert.Contains(t, doctorIndex, prescriptionID)

	patientNotifications, err := fixture.notification.ListForUser(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, patientNotifications, 1)
	assert.Equal(t, constvars.NotificationTypePrescriptionUpdated, patientNotifications[0].Type)
	assert.Equal(t, "New prescription from Dr. Mehta", patientNotifications[0].Message)
}

func TestPrescriptionUsecase_CreateLinksFeedback(t *testing.T) {
	ctx := context.Background()
	fixture := newPrescriptionFixture()

	require.NoError(t, fixture.store.PutJSON(ctx, entities.FeedbackKey("pat-1", "fb-1"), &models.Feedback{
		ID:     "fb-1",
		UserID: "pat-1",
		Status: constvars.FeedbackStatusPendingReview,
	}))

	prescriptionID, err := fixture.usecase.Create(ctx, &requests.CreatePrescription{
		PatientID:   "pat-1",
		DoctorID:    "doc-1",
		Medications: sampleMedications(),
		FeedbackID:  "fb-1",
	})
	require.NoError(t, err)

	feedback := new(models.Feedback)
	found, err := fixture.store.GetJSON(ctx, entities.FeedbackKey("pat-1", "fb-1"), feedback)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constvars.FeedbackStatusReviewed, feedback.Status)
	assert.Equal(t, prescriptionID, feedback.PrescriptionID)
	assert.Equal(t, "doc-1", feedback.ReviewedBy)
	assert.NotNil(t, feedback.ReviewedAt)
}

func TestPrescriptionUsecase_CreateToleratesMissingFeedback(t *testing.T) {
	ctx := context.Background()
	fixture := newPrescriptionFixture()

	prescriptionID, err := fixture.usecase.Create(ctx, &requests.CreatePrescription{
		PatientID:   "pat-1",
		DoctorID:    "doc-1",
		Medications: sampleMedications(),
		FeedbackID:  "never-existed",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, prescriptionID)
}

func TestPrescriptionUsecase_ListsJoinProfiles(t *testing.T) {
	ctx := context.Background()
	fixture := newPrescriptionFixture()

	require.NoError(t, fixture.store.PutJSON(ctx, entities.UserKey("doc-1"), &models.User{
		ID:             "doc-1",
		Name:           "Mehta",
		Specialization: "Panchakarma",
	}))
	require.NoError(t, fixture.store.PutJSON(ctx, entities.UserKey("pat-1"), &models.User{
		ID:          "pat-1",
		Name:        "Asha",
		Phone:       "555-0101",
		TherapyPlan: "detox",
	}))

	_, err := fixture.usecase.Create(ctx, &requests.CreatePrescription{
		PatientID:   "pat-1",
		DoctorID:    "doc-1",
		Medications: sampleMedications(),
	})
	require.NoError(t, err)

	patientView, err := fixture.usecase.ListForPatient(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, patientView, 1)
	require.NotNil(t, patientView[0].DoctorInfo)
	assert.Equal(t, "Mehta", patientView[0].DoctorInfo.Name)
	assert.Equal(t, "Panchakarma", patientView[0].DoctorInfo.Specialization)

	doctorView, err := fixture.usecase.ListForDoctor(ctx, "doc-1")
	require.NoError(t, err)
	require.Len(t, doctorView, 1)
	require.NotNil(t, doctorView[0].PatientInfo)
	assert.Equal(t, "Asha", doctorView[0].PatientInfo.Name)
	assert.Equal(t, "555-0101", doctorView[0].PatientInfo.Phone)
}
