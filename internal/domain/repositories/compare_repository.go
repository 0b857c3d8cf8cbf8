package repositories

import (
	"context"

	"github.com/medbridge360/backend/internal/domain/entities"
)

// CompareSetRepository persists a user's compare selection across
// navigation, keyed by session. It is the server-side counterpart of the
// client-local compareIds store; the core treats it as just another
// source of a CompareSet input.
type CompareSetRepository interface {
	// Get returns the stored set for the session, or an empty set
	Get(ctx context.Context, sessionID string) (*entities.CompareSet, error)

	// Save stores the set for the session
	Save(ctx context.Context, sessionID string, set *entities.CompareSet) error

	// Clear removes the session's set
	Clear(ctx context.Context, sessionID string) error
}
