package repositories

import (
	"context"

	"github.com/medbridge360/backend/internal/domain/entities"
)

// HospitalRepository defines read access to the hospital catalog.
// Hospitals are created at seeding time and read-only afterwards from the
// core's perspective.
type HospitalRepository interface {
	// GetByID retrieves a hospital with its treatments
	GetByID(ctx context.Context, id string) (*entities.Hospital, error)

	// GetByIDs retrieves multiple hospitals, preserving input order and
	// silently skipping unknown IDs
	GetByIDs(ctx context.Context, ids []string) ([]*entities.Hospital, error)

	// List retrieves the full catalog in stable catalog order
	List(ctx context.Context) ([]*entities.Hospital, error)
}

// HospitalWriteRepository extends the catalog with seeding operations.
// Only the seeder and the indexer use it.
type HospitalWriteRepository interface {
	HospitalRepository

	// Create inserts a hospital and its owned treatments
	Create(ctx context.Context, hospital *entities.Hospital) error
}

// HospitalSearchRepository defines the optional full-text search index
// (Typesense). When unavailable the matching engine filters the
// repository listing directly.
type HospitalSearchRepository interface {
	// Search returns catalog IDs matching the free-text query, by
	// relevance
	Search(ctx context.Context, query string, limit int) ([]string, error)

	// Index adds or updates a hospital document
	Index(ctx context.Context, hospital *entities.Hospital) error

	// Delete removes a hospital document
	Delete(ctx context.Context, id string) error
}
