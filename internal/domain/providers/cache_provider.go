package providers

import (
	"context"
)

// CacheProvider is a byte-oriented cache used to wrap catalog reads.
type CacheProvider interface {
	// Get retrieves a value; an error means miss or failure
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with an expiration in seconds
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error
}
