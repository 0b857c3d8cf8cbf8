package handlers

import (
	"net/http"
	"strconv"

	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
)

// HospitalHandler handles hospital catalog and search HTTP requests
type HospitalHandler struct {
	catalog        *services.CatalogService
	matching       *services.MatchingService
	itinerary      *services.ItineraryService
	defaultWeights entities.MatchWeights
}

// NewHospitalHandler creates a new hospital handler
func NewHospitalHandler(catalog *services.CatalogService, matching *services.MatchingService, itinerary *services.ItineraryService, defaultWeights entities.MatchWeights) *HospitalHandler {
	return &HospitalHandler{
		catalog:        catalog,
		matching:       matching,
		itinerary:      itinerary,
		defaultWeights: defaultWeights,
	}
}

// ListHospitals handles GET /api/hospitals
//
// Without parameters it returns the full catalog. Criteria come from
// query params; quality_weight/proximity_weight select the weighted
// ranking, weighted=true applies the configured default weights, and
// sort picks the unweighted order.
func (h *HospitalHandler) ListHospitals(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := entities.SearchCriteria{
		Treatment:      q.Get("treatment"),
		Location:       q.Get("location"),
		Country:        q.Get("country"),
		Specialization: q.Get("specialization"),
	}

	weights, err := parseWeights(q.Get("quality_weight"), q.Get("proximity_weight"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if weights.IsZero() && q.Get("weighted") == "true" {
		weights = h.defaultWeights
	}

	order := entities.SortByRating
	if q.Get("sort") == string(entities.SortByCost) {
		order = entities.SortByCost
	}

	results, err := h.matching.Search(r.Context(), criteria, weights, order)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": results,
		"count":     len(results),
	})
}

// SearchHospitals handles GET /api/hospitals/search
//
// Free-text search over the catalog via the search engine when one is
// configured.
func (h *HospitalHandler) SearchHospitals(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	limit := 30
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	hospitals, err := h.catalog.Search(r.Context(), query, limit)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"hospitals": hospitals,
		"count":     len(hospitals),
	})
}

// GetHospital handles GET /api/hospitals/{id}
func (h *HospitalHandler) GetHospital(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	hospital, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, hospital)
}

// GetJourney handles GET /api/hospitals/{id}/journey
//
// The journey protocol is static, but the route still resolves the
// hospital so unknown IDs return 404.
func (h *HospitalHandler) GetJourney(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	if _, err := h.catalog.GetByID(r.Context(), id); err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"steps": h.itinerary.Journey(),
	})
}

func parseWeights(quality, proximity string) (entities.MatchWeights, error) {
	var weights entities.MatchWeights
	if quality == "" && proximity == "" {
		return weights, nil
	}

	wq, err := parseWeight(quality, "quality_weight")
	if err != nil {
		return weights, err
	}
	wp, err := parseWeight(proximity, "proximity_weight")
	if err != nil {
		return weights, err
	}

	weights.Quality = wq
	weights.Proximity = wp
	return weights, nil
}

func parseWeight(raw, name string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, &weightError{name: name}
	}
	return v, nil
}

type weightError struct {
	name string
}

func (e *weightError) Error() string {
	return e.name + " must be a non-negative number"
}
