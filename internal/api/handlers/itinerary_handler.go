package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/medbridge360/backend/internal/application/services"
)

// ItineraryHandler handles trip timeline HTTP requests
type ItineraryHandler struct {
	itinerary *services.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(itinerary *services.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{itinerary: itinerary}
}

type itineraryRequest struct {
	HospitalID   string `json:"hospital_id"`
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
}

// GenerateItinerary handles POST /api/itinerary
func (h *ItineraryHandler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.HospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital_id is required")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "start_date must be a YYYY-MM-DD date")
		return
	}

	events, err := h.itinerary.GenerateForHospital(r.Context(), req.HospitalID, start, req.DurationDays)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"events":        events,
		"duration_days": req.DurationDays,
	})
}
