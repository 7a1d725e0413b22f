package locker

import (
	"context"
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

func TestLockService_TryLockIsExclusive(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(newMemoryRepository(), zap.NewNop())

	acquired, lockValue, err := service.TryLock(ctx, "lock:therapy_request:req-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	assert.NotEmpty(t, lockValue)

	acquired, _, err = service.TryLock(ctx, "lock:therapy_request:req-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired)
}

func TestLockService_UnlockReleasesForNextHolder(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(newMemoryRepository(), zap.NewNop())

	acquired, lockValue, err := service.TryLock(ctx, "lock:therapy_request:req-1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, service.Unlock(ctx, "lock:therapy_request:req-1", lockValue))

	acquired, _, err = service.TryLock(ctx, "lock:therapy_request:req-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
}

func TestLockService_UnlockRejectsForeignValue(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(newMemoryRepository(), zap.NewNop())

	acquired, _, err := service.TryLock(ctx, "lock:therapy_request:req-1", time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	err = service.Unlock(ctx, "lock:therapy_request:req-1", "someone-else")
	assert.Error(t, err)
}

func TestLockService_UnlockExpiredLockIsNoop(t *testing.T) {
	ctx := context.Background()
	service := NewLockService(newMemoryRepository(), zap.NewNop())

	assert.NoError(t, service.Unlock(ctx, "lock:therapy_request:req-1", "anything"))
}
