package compare

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/domain/entities"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(entities.CompareMaxCapacity, entities.CapacityReject)

	set, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, set.IDs)

	set.Add("h-1")
	require.NoError(t, store.Save(ctx, "sess-1", set))

	loaded, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"h-1"}, loaded.IDs)

	require.NoError(t, store.Clear(ctx, "sess-1"))
	loaded, err = store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.IDs)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(entities.CompareMaxCapacity, entities.CapacityReject)

	set, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	set.Add("h-1")

	// Mutating an unsaved set must not leak into the store.
	loaded, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, loaded.IDs)
}
