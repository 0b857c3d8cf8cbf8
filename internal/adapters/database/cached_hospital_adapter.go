package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/internal/domain/repositories"
)

// Cache TTLs (in seconds)
const (
	hospitalByIDTTL = 300
	catalogListTTL  = 180
)

// CachedHospitalAdapter wraps a hospital repository with read-through
// caching. The catalog is read-mostly, so short TTLs are enough.
type CachedHospitalAdapter struct {
	adapter repositories.HospitalRepository
	cache   providers.CacheProvider
}

// NewCachedHospitalAdapter creates a new cached hospital adapter
func NewCachedHospitalAdapter(adapter repositories.HospitalRepository, cache providers.CacheProvider) repositories.HospitalRepository {
	return &CachedHospitalAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

func hospitalCacheKey(id string) string {
	return fmt.Sprintf("hospital:%s", id)
}

const catalogCacheKey = "hospitals:all"

// GetByID retrieves a hospital by ID with caching
func (a *CachedHospitalAdapter) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	cacheKey := hospitalCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var hospital entities.Hospital
		if err := json.Unmarshal(cached, &hospital); err == nil {
			return &hospital, nil
		}
		log.Warn().Str("hospital_id", id).Msg("failed to unmarshal cached hospital")
	}

	hospital, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Update cache off the request path
	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(hospital); err == nil {
			if err := a.cache.Set(bgCtx, cacheKey, data, hospitalByIDTTL); err != nil {
				log.Warn().Err(err).Str("hospital_id", id).Msg("failed to cache hospital")
			}
		}
	}()

	return hospital, nil
}

// GetByIDs resolves each ID through the per-hospital cache.
func (a *CachedHospitalAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Hospital, error) {
	hospitals := make([]*entities.Hospital, 0, len(ids))
	var missing []string
	for _, id := range ids {
		if cached, err := a.cache.Get(ctx, hospitalCacheKey(id)); err == nil {
			var hospital entities.Hospital
			if err := json.Unmarshal(cached, &hospital); err == nil {
				hospitals = append(hospitals, &hospital)
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return orderByInput(ids, hospitals), nil
	}

	fetched, err := a.adapter.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	hospitals = append(hospitals, fetched...)

	go func() {
		bgCtx := context.Background()
		for _, h := range fetched {
			if data, err := json.Marshal(h); err == nil {
				_ = a.cache.Set(bgCtx, hospitalCacheKey(h.ID), data, hospitalByIDTTL)
			}
		}
	}()

	return orderByInput(ids, hospitals), nil
}

// List retrieves the full catalog with caching
func (a *CachedHospitalAdapter) List(ctx context.Context) ([]*entities.Hospital, error) {
	if cached, err := a.cache.Get(ctx, catalogCacheKey); err == nil {
		var hospitals []*entities.Hospital
		if err := json.Unmarshal(cached, &hospitals); err == nil {
			return hospitals, nil
		}
		log.Warn().Msg("failed to unmarshal cached catalog")
	}

	hospitals, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx := context.Background()
		if data, err := json.Marshal(hospitals); err == nil {
			if err := a.cache.Set(bgCtx, catalogCacheKey, data, catalogListTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache catalog")
			}
		}
	}()

	return hospitals, nil
}

func orderByInput(ids []string, hospitals []*entities.Hospital) []*entities.Hospital {
	byID := make(map[string]*entities.Hospital, len(hospitals))
	for _, h := range hospitals {
		byID[h.ID] = h
	}
	ordered := make([]*entities.Hospital, 0, len(ids))
	for _, id := range ids {
		if h, ok := byID[id]; ok {
			ordered = append(ordered, h)
		}
	}
	return ordered
}
