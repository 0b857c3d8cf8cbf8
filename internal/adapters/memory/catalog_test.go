package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/seed"
	"github.com/medbridge360/backend/pkg/errors"
)

func TestCatalogSeededListKeepsOrder(t *testing.T) {
	hospitals := seed.Hospitals(time.Now())
	catalog := NewCatalog(hospitals)

	listed, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, len(hospitals))
	for i, h := range hospitals {
		assert.Equal(t, h.ID, listed[i].ID)
	}
}

func TestCatalogGetByID(t *testing.T) {
	catalog := NewCatalog(seed.Hospitals(time.Now()))

	id := seed.HospitalID("Apollo Hospitals")
	h, err := catalog.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Chennai", h.City)
	assert.NotEmpty(t, h.Treatments)

	_, err = catalog.GetByID(context.Background(), "nope")
	assert.True(t, errors.IsNotFound(err))
}

func TestCatalogGetByIDsPreservesInputOrder(t *testing.T) {
	hospitals := seed.Hospitals(time.Now())
	catalog := NewCatalog(hospitals)

	ids := []string{hospitals[2].ID, "unknown", hospitals[0].ID}
	got, err := catalog.GetByIDs(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, hospitals[2].ID, got[0].ID)
	assert.Equal(t, hospitals[0].ID, got[1].ID)
}

func TestCatalogCreateRejectsDuplicates(t *testing.T) {
	catalog := NewCatalog(nil)
	h := &entities.Hospital{ID: "h-1", Name: "Test"}

	require.NoError(t, catalog.Create(context.Background(), h))
	err := catalog.Create(context.Background(), h)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
}
