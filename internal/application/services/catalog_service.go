package services

import (
	"context"
	"strings"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/internal/infrastructure/observability"
)

// CatalogService handles catalog reads and keeps the search index in
// step with the repository. The index is optional; without it free-text
// search degrades to a substring scan over the listing.
type CatalogService struct {
	repo       repositories.HospitalWriteRepository
	searchRepo repositories.HospitalSearchRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repositories.HospitalWriteRepository, searchRepo repositories.HospitalSearchRepository) *CatalogService {
	return &CatalogService{
		repo:       repo,
		searchRepo: searchRepo,
	}
}

// Create inserts a hospital and indexes it. Index failures are logged,
// not returned; the index catches up on the next write.
func (s *CatalogService) Create(ctx context.Context, hospital *entities.Hospital) error {
	if err := s.repo.Create(ctx, hospital); err != nil {
		return err
	}

	if s.searchRepo != nil {
		if err := s.searchRepo.Index(ctx, hospital); err != nil {
			observability.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("hospital_id", hospital.ID).
				Msg("failed to index hospital")
		}
	}

	return nil
}

// GetByID retrieves a hospital with its treatments.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*entities.Hospital, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves the full catalog in stable order.
func (s *CatalogService) List(ctx context.Context) ([]*entities.Hospital, error) {
	return s.repo.List(ctx)
}

// Search resolves a free-text query to hospitals, by relevance when the
// search engine is configured and by substring scan otherwise.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]*entities.Hospital, error) {
	if query == "" {
		return s.repo.List(ctx)
	}

	if s.searchRepo != nil {
		ids, err := s.searchRepo.Search(ctx, query, limit)
		if err == nil {
			return s.repo.GetByIDs(ctx, ids)
		}
		observability.LoggerFromContext(ctx).Warn().
			Err(err).
			Str("query", query).
			Msg("search engine unavailable, scanning catalog")
	}

	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matched := make([]*entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if matchesQuery(h, q) {
			matched = append(matched, h)
			if limit > 0 && len(matched) >= limit {
				break
			}
		}
	}
	return matched, nil
}

func matchesQuery(h *entities.Hospital, q string) bool {
	if strings.Contains(strings.ToLower(h.Name), q) ||
		strings.Contains(strings.ToLower(h.City), q) ||
		strings.Contains(strings.ToLower(h.Country), q) {
		return true
	}
	for _, spec := range h.Specializations {
		if strings.Contains(strings.ToLower(spec), q) {
			return true
		}
	}
	for _, t := range h.Treatments {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}
