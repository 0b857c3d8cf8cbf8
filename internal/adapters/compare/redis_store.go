package compare

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	redisclient "github.com/medbridge360/backend/internal/infrastructure/clients/redis"
	apperrors "github.com/medbridge360/backend/pkg/errors"
)

// compareSetTTL keeps abandoned selections from accumulating.
const compareSetTTL = 7 * 24 * time.Hour

// RedisStore persists compare selections per session in Redis. It is the
// server-side counterpart of the browser's compareIds storage.
type RedisStore struct {
	client   *redisclient.Client
	capacity int
	policy   entities.CompareCapacityPolicy
}

var _ repositories.CompareSetRepository = (*RedisStore)(nil)

// NewRedisStore creates a compare set store. Sets loaded from Redis are
// rehydrated with the store's capacity and policy so a config change
// applies to existing sessions.
func NewRedisStore(client *redisclient.Client, capacity int, policy entities.CompareCapacityPolicy) *RedisStore {
	if capacity <= 0 {
		capacity = entities.CompareMaxCapacity
	}
	return &RedisStore{client: client, capacity: capacity, policy: policy}
}

func compareKey(sessionID string) string {
	return fmt.Sprintf("compare:%s", sessionID)
}

// Get returns the stored set for the session, or an empty set.
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*entities.CompareSet, error) {
	data, err := s.client.Client().Get(ctx, compareKey(sessionID)).Bytes()
	if err == redis.Nil {
		return entities.NewCompareSet(s.capacity, s.policy), nil
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load compare set", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, apperrors.NewInternalError("failed to decode compare set", err)
	}

	set := entities.NewCompareSet(s.capacity, s.policy)
	for _, id := range ids {
		set.Add(id)
	}
	return set, nil
}

// Save stores the set's IDs for the session.
func (s *RedisStore) Save(ctx context.Context, sessionID string, set *entities.CompareSet) error {
	data, err := json.Marshal(set.IDs)
	if err != nil {
		return apperrors.NewInternalError("failed to encode compare set", err)
	}
	if err := s.client.Client().Set(ctx, compareKey(sessionID), data, compareSetTTL).Err(); err != nil {
		return apperrors.NewInternalError("failed to save compare set", err)
	}
	return nil
}

// Clear removes the session's set.
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Client().Del(ctx, compareKey(sessionID)).Err(); err != nil {
		return apperrors.NewInternalError("failed to clear compare set", err)
	}
	return nil
}
