package compare

import (
	"context"
	"sync"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
)

// MemoryStore keeps compare selections in process memory. Used when
// Redis is unavailable; selections do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sets     map[string][]string
	capacity int
	policy   entities.CompareCapacityPolicy
}

var _ repositories.CompareSetRepository = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory compare set store.
func NewMemoryStore(capacity int, policy entities.CompareCapacityPolicy) *MemoryStore {
	if capacity <= 0 {
		capacity = entities.CompareMaxCapacity
	}
	return &MemoryStore{
		sets:     make(map[string][]string),
		capacity: capacity,
		policy:   policy,
	}
}

// Get returns the stored set for the session, or an empty set.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*entities.CompareSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := entities.NewCompareSet(s.capacity, s.policy)
	for _, id := range s.sets[sessionID] {
		set.Add(id)
	}
	return set, nil
}

// Save stores the set's IDs for the session.
func (s *MemoryStore) Save(_ context.Context, sessionID string, set *entities.CompareSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(set.IDs))
	copy(ids, set.IDs)
	s.sets[sessionID] = ids
	return nil
}

// Clear removes the session's set.
func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sets, sessionID)
	return nil
}
