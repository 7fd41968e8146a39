package locker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeRedisRepository mirrors the real repository's behavior of JSON-encoding
// values on write, which is what the unlock ownership check depends on.
type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[key], nil
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.values[key] = string(encoded)
	return nil
}

func (r *fakeRedisRepository) TrySetNX(_ context.Context, key string, value interface{}, _ time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.values[key]; exists {
		return false, nil
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.values[key] = string(encoded)
	return true, nil
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func newTestLockService() (*lockService, *fakeRedisRepository) {
	repo := newFakeRedisRepository()
	return &lockService{redisRepo: repo, Log: zap.NewNop()}, repo
}

func TestTryLock(t *testing.T) {
	t.Run("acquires a free lock", func(t *testing.T) {
		service, _ := newTestLockService()

		acquired, lockValue, err := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)

		assert.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, lockValue)
	})

	t.Run("second caller does not acquire a held lock", func(t *testing.T) {
		service, _ := newTestLockService()

		acquired, _, err := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)
		assert.NoError(t, err)
		assert.True(t, acquired)

		acquired, lockValue, err := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)
		assert.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, lockValue)
	})

	t.Run("different keys do not contend", func(t *testing.T) {
		service, _ := newTestLockService()

		acquired, _, _ := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)
		assert.True(t, acquired)

		acquired, _, _ = service.TryLock(context.Background(), "booking:lock:doc2", time.Minute)
		assert.True(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	t.Run("owner releases and the lock becomes free", func(t *testing.T) {
		service, _ := newTestLockService()

		_, lockValue, _ := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)

		err := service.Unlock(context.Background(), "booking:lock:doc1", lockValue)
		assert.NoError(t, err)

		acquired, _, _ := service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)
		assert.True(t, acquired)
	})

	t.Run("non-owner cannot release", func(t *testing.T) {
		service, repo := newTestLockService()

		_, _, _ = service.TryLock(context.Background(), "booking:lock:doc1", time.Minute)

		err := service.Unlock(context.Background(), "booking:lock:doc1", "someone-elses-token")
		assert.Error(t, err)

		stored, _ := repo.Get(context.Background(), "booking:lock:doc1")
		assert.NotEmpty(t, stored)
	})

	t.Run("releasing an expired lock is a no-op", func(t *testing.T) {
		service, _ := newTestLockService()

		err := service.Unlock(context.Background(), "booking:lock:gone", "stale-token")
		assert.NoError(t, err)
	})
}
