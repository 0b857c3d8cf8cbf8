package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/pkg/errors"
)

// stubSearchIndex tracks indexed documents and answers queries from a
// fixed ID list.
type stubSearchIndex struct {
	indexed []string
	results []string
	err     error
}

func (s *stubSearchIndex) Search(_ context.Context, _ string, _ int) ([]string, error) {
	return s.results, s.err
}

func (s *stubSearchIndex) Index(_ context.Context, h *entities.Hospital) error {
	s.indexed = append(s.indexed, h.ID)
	return nil
}

func (s *stubSearchIndex) Delete(_ context.Context, _ string) error {
	return nil
}

func TestCatalogService_CreateIndexesHospital(t *testing.T) {
	ctx := context.Background()
	catalog := memory.NewCatalog(nil)
	index := &stubSearchIndex{}
	svc := services.NewCatalogService(catalog, index)

	h := fixtureHospitals()[0]
	require.NoError(t, svc.Create(ctx, h))
	assert.Equal(t, []string{h.ID}, index.indexed)

	got, err := svc.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.Name, got.Name)
}

func TestCatalogService_CreateDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCatalogService(memory.NewCatalog(fixtureHospitals()), nil)

	err := svc.Create(ctx, fixtureHospitals()[0])
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
}

func TestCatalogService_SearchPrefersEngine(t *testing.T) {
	ctx := context.Background()
	index := &stubSearchIndex{results: []string{"h-fortis", "h-apollo"}}
	svc := services.NewCatalogService(memory.NewCatalog(fixtureHospitals()), index)

	hospitals, err := svc.Search(ctx, "oncology", 10)
	require.NoError(t, err)
	require.Len(t, hospitals, 2)

	// Engine relevance order is preserved.
	assert.Equal(t, "h-fortis", hospitals[0].ID)
	assert.Equal(t, "h-apollo", hospitals[1].ID)
}

func TestCatalogService_SearchFallsBackToScan(t *testing.T) {
	ctx := context.Background()
	index := &stubSearchIndex{err: assert.AnError}
	svc := services.NewCatalogService(memory.NewCatalog(fixtureHospitals()), index)

	hospitals, err := svc.Search(ctx, "bangkok", 10)
	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	assert.Equal(t, "h-bumrungrad", hospitals[0].ID)
}

func TestCatalogService_SearchWithoutEngineScansCatalog(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCatalogService(memory.NewCatalog(fixtureHospitals()), nil)

	hospitals, err := svc.Search(ctx, "chemotherapy", 10)
	require.NoError(t, err)
	require.Len(t, hospitals, 1)
	assert.Equal(t, "h-fortis", hospitals[0].ID)
}

func TestCatalogService_EmptyQueryListsAll(t *testing.T) {
	ctx := context.Background()
	svc := services.NewCatalogService(memory.NewCatalog(fixtureHospitals()), nil)

	hospitals, err := svc.Search(ctx, "", 10)
	require.NoError(t, err)
	assert.Len(t, hospitals, 3)
}
