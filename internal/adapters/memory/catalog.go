package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	apperrors "github.com/medbridge360/backend/pkg/errors"
)

// Catalog is the static-data catalog variant: an in-memory hospital
// collection seeded at construction time and read-only afterwards. It is
// the default when no database is configured, and the fixture used by
// service tests.
type Catalog struct {
	mu        sync.RWMutex
	hospitals []*entities.Hospital
	byID      map[string]*entities.Hospital
}

var _ repositories.HospitalWriteRepository = (*Catalog)(nil)

// NewCatalog creates a catalog holding the given hospitals in the given
// stable order.
func NewCatalog(hospitals []*entities.Hospital) *Catalog {
	c := &Catalog{
		hospitals: make([]*entities.Hospital, 0, len(hospitals)),
		byID:      make(map[string]*entities.Hospital, len(hospitals)),
	}
	for _, h := range hospitals {
		c.hospitals = append(c.hospitals, h)
		c.byID[h.ID] = h
	}
	return c
}

// Create appends a hospital to the catalog.
func (c *Catalog) Create(_ context.Context, hospital *entities.Hospital) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.byID[hospital.ID]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("hospital with id %s already exists", hospital.ID))
	}
	c.hospitals = append(c.hospitals, hospital)
	c.byID[hospital.ID] = hospital
	return nil
}

// GetByID retrieves a hospital by ID
func (c *Catalog) GetByID(_ context.Context, id string) (*entities.Hospital, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("hospital with id %s not found", id))
	}
	return h, nil
}

// GetByIDs retrieves hospitals preserving input order, skipping unknown
// IDs.
func (c *Catalog) GetByIDs(_ context.Context, ids []string) ([]*entities.Hospital, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hospitals := make([]*entities.Hospital, 0, len(ids))
	for _, id := range ids {
		if h, ok := c.byID[id]; ok {
			hospitals = append(hospitals, h)
		}
	}
	return hospitals, nil
}

// List returns the catalog in seeding order.
func (c *Catalog) List(_ context.Context) ([]*entities.Hospital, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*entities.Hospital, len(c.hospitals))
	copy(out, c.hospitals)
	return out, nil
}
