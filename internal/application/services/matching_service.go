package services

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/internal/domain/repositories"
)

// MatchingService ranks the hospital catalog against patient criteria.
// Filtering and scoring are pure; the only nondeterminism is the injected
// distance estimator.
type MatchingService struct {
	repo      repositories.HospitalRepository
	estimator providers.DistanceEstimator
	fallback  entities.FallbackPolicy
}

// NewMatchingService creates a new matching service
func NewMatchingService(repo repositories.HospitalRepository, estimator providers.DistanceEstimator, fallback entities.FallbackPolicy) *MatchingService {
	return &MatchingService{
		repo:      repo,
		estimator: estimator,
		fallback:  fallback,
	}
}

// Search filters the catalog by the criteria and orders the result.
// Non-zero weights select the weighted scoring path, ordered by score
// descending; otherwise the order parameter picks total-cost ascending or
// rating descending. All sorts are stable over catalog order.
func (s *MatchingService) Search(ctx context.Context, criteria entities.SearchCriteria, weights entities.MatchWeights, order entities.SortOrder) ([]entities.ScoredHospital, error) {
	hospitals, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := s.filter(hospitals, criteria)

	results := make([]entities.ScoredHospital, 0, len(matched))
	for _, h := range matched {
		results = append(results, entities.ScoredHospital{
			Hospital:         h,
			MatchedTreatment: matchedTreatment(h, criteria.Treatment),
		})
	}

	if !weights.IsZero() {
		for i := range results {
			h := results[i].Hospital
			dist := s.estimator.EstimateHours(ctx, nil, h.Location)
			results[i].DistanceHours = dist
			results[i].Score = score(h.Rating, dist, weights)
		}
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
		return results, nil
	}

	switch order {
	case entities.SortByCost:
		sort.SliceStable(results, func(i, j int) bool {
			return resultCost(results[i]) < resultCost(results[j])
		})
	default:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Hospital.Rating > results[j].Hospital.Rating
		})
	}
	return results, nil
}

// filter applies the exact filters first, then each free-text filter with
// the zero-match fallback policy.
func (s *MatchingService) filter(hospitals []*entities.Hospital, criteria entities.SearchCriteria) []*entities.Hospital {
	matched := hospitals

	if criteria.Country != "" {
		matched = keep(matched, func(h *entities.Hospital) bool {
			return h.Country == criteria.Country
		})
	}
	if criteria.Specialization != "" {
		matched = keep(matched, func(h *entities.Hospital) bool {
			return h.HasSpecialization(criteria.Specialization)
		})
	}

	matched = s.freeText(matched, criteria.Location, matchesLocation)
	matched = s.freeText(matched, criteria.Treatment, matchesTreatment)

	return matched
}

// freeText applies one free-text filter. A filter that matches nothing
// either drops out entirely or empties the result, per the policy.
func (s *MatchingService) freeText(hospitals []*entities.Hospital, query string, match func(*entities.Hospital, string) bool) []*entities.Hospital {
	if query == "" {
		return hospitals
	}
	q := strings.ToLower(query)
	filtered := keep(hospitals, func(h *entities.Hospital) bool {
		return match(h, q)
	})
	if len(filtered) == 0 && s.fallback == entities.FallbackReturnAll {
		return hospitals
	}
	return filtered
}

func keep(hospitals []*entities.Hospital, pred func(*entities.Hospital) bool) []*entities.Hospital {
	out := make([]*entities.Hospital, 0, len(hospitals))
	for _, h := range hospitals {
		if pred(h) {
			out = append(out, h)
		}
	}
	return out
}

func matchesLocation(h *entities.Hospital, q string) bool {
	return strings.Contains(strings.ToLower(h.City), q) ||
		strings.Contains(strings.ToLower(h.State), q) ||
		strings.Contains(strings.ToLower(h.Country), q)
}

func matchesTreatment(h *entities.Hospital, q string) bool {
	for _, t := range h.Treatments {
		if strings.Contains(strings.ToLower(t.Name), q) {
			return true
		}
	}
	return false
}

// matchedTreatment returns the first treatment whose name matches the
// query, or the hospital's first treatment when the query misses.
func matchedTreatment(h *entities.Hospital, query string) *entities.Treatment {
	if query != "" {
		q := strings.ToLower(query)
		for i := range h.Treatments {
			if strings.Contains(strings.ToLower(h.Treatments[i].Name), q) {
				return &h.Treatments[i]
			}
		}
	}
	return h.FirstTreatment()
}

// score combines quality and proximity into a single relative signal.
// Rating is rescaled from 0-5 to 0-10 so both terms share a range.
func score(rating, distanceHours float64, w entities.MatchWeights) float64 {
	return math.Max(0, rating*2*w.Quality-distanceHours*w.Proximity)
}

// resultCost orders hospitals without a priced treatment last.
func resultCost(r entities.ScoredHospital) float64 {
	if r.MatchedTreatment == nil {
		return math.MaxFloat64
	}
	return r.MatchedTreatment.TotalCost()
}
