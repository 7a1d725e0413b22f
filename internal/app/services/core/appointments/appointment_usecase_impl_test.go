package appointments

import (
	"context"
	"panchkarma-service/internal/app/models"
	"panchkarma-service/internal/app/services/core/entities"
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

func newAppointmentFixture() (entities.Store, AppointmentUsecase) {
	store := entities.NewEntityStore(newMemoryRepository())
	return store, NewAppointmentUsecase(store, zap.NewNop())
}

func TestAppointmentUsecase_CreateIndexesBothSides(t *testing.T) {
	ctx := context.Background()
	store, usecase := newAppointmentFixture()

	appointmentID, err := usecase.Create(ctx, &requests.CreateAppointment{
		PatientID: "pat-1",
		DoctorID:  "doc-1",
		Date:      "2026-09-10",
		Time:      "09:30",
	})
	require.NoError(t, err)
	require.NotEmpty(t, appointmentID)

	stored := new(models.Appointment)
	found, err := store.GetJSON(ctx, entities.AppointmentKey(appointmentID), stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constvars.AppointmentStatusScheduled, stored.Status)
	assert.Equal(t, constvars.AppointmentTypeDefault, stored.Type)

	patientIndex, err := store.ReadIndex(ctx, entities.PatientAppointmentsKey("pat-1"))
	require.NoError(t, err)
	assert.Contains(t, patientIndex, appointmentID)

	doctorIndex, err := store.ReadIndex(ctx, entities.DoctorAppointmentsKey("doc-1"))
	require.NoError(t, err)
	assert.Contains(t, doctorIndex, appointmentID)
}

func TestAppointmentUsecase_ListsChronologically(t *testing.T) {
	ctx := context.Background()
	_, usecase := newAppointmentFixture()

	seed := []requests.CreateAppointment{
		{PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-09-12", Time: "10:00"},
		{PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-09-10", Time: "14:00"},
		{PatientID: "pat-1", DoctorID: "doc-1", Date: "2026-09-10", Time: "09:30"},
	}
	for i := range seed {
		_, err := usecase.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	list, err := usecase.ListForPatient(ctx, "pat-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-09-10", list[0].Date)
	assert.Equal(t, "09:30", list[0].Time)
	assert.Equal(t, "2026-09-12", list[2].Date)

	doctorList, err := usecase.ListForDoctor(ctx, "doc-1")
	require.NoError(t, err)
	assert.Len(t, doctorList, 3)
}
