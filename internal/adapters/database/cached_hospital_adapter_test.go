package database

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/pkg/errors"
)

// fakeCache is a synchronous in-memory CacheProvider.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errors.NewNotFoundError("key not found")
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func TestCachedAdapter_MissFallsThroughToRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalog([]*entities.Hospital{{ID: "h-1", Name: "Apollo"}})
	cached := NewCachedHospitalAdapter(repo, newFakeCache())

	h, err := cached.GetByID(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "Apollo", h.Name)

	_, err = cached.GetByID(ctx, "h-2")
	assert.True(t, errors.IsNotFound(err))
}

func TestCachedAdapter_HitSkipsRepository(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()

	fromCache := &entities.Hospital{ID: "h-1", Name: "Cached Apollo"}
	data, err := json.Marshal(fromCache)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, hospitalCacheKey("h-1"), data, hospitalByIDTTL))

	// Empty repository: a returned hospital can only come from the cache.
	cached := NewCachedHospitalAdapter(memory.NewCatalog(nil), cache)

	h, err := cached.GetByID(ctx, "h-1")
	require.NoError(t, err)
	assert.Equal(t, "Cached Apollo", h.Name)
}

func TestCachedAdapter_ListHitSkipsRepository(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()

	hospitals := []*entities.Hospital{{ID: "h-1"}, {ID: "h-2"}}
	data, err := json.Marshal(hospitals)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, catalogCacheKey, data, catalogListTTL))

	cached := NewCachedHospitalAdapter(memory.NewCatalog(nil), cache)

	listed, err := cached.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
