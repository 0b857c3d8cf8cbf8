package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/medbridge360/backend/internal/application/services"
)

// compareSessionCookie identifies the anonymous compare session. It is
// separate from the auth session so comparison works without login.
const compareSessionCookie = "mb_compare"

// CompareHandler handles compare selection and matrix HTTP requests
type CompareHandler struct {
	compare *services.CompareService
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(compare *services.CompareService) *CompareHandler {
	return &CompareHandler{compare: compare}
}

// GetSelection handles GET /api/compare
func (h *CompareHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	set, err := h.compare.Get(r.Context(), sessionID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, set)
}

// AddToSelection handles POST /api/compare
func (h *CompareHandler) AddToSelection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HospitalID string `json:"hospital_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.HospitalID == "" {
		respondWithError(w, http.StatusBadRequest, "hospital_id is required")
		return
	}

	sessionID := h.sessionID(w, r)
	set, err := h.compare.Add(r.Context(), sessionID, body.HospitalID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, set)
}

// RemoveFromSelection handles DELETE /api/compare/{id}
func (h *CompareHandler) RemoveFromSelection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "hospital ID is required")
		return
	}

	sessionID := h.sessionID(w, r)
	set, err := h.compare.Remove(r.Context(), sessionID, id)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, set)
}

// ClearSelection handles DELETE /api/compare
func (h *CompareHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)
	if err := h.compare.Clear(r.Context(), sessionID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetMatrix handles GET /api/compare/matrix
//
// Explicit ids query params override the stored session selection, so a
// share link renders the same matrix for every visitor.
func (h *CompareHandler) GetMatrix(w http.ResponseWriter, r *http.Request) {
	if ids, ok := r.URL.Query()["id"]; ok {
		matrix, err := h.compare.BuildMatrixFromIDs(r.Context(), ids)
		if err != nil {
			respondWithAppError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, matrix)
		return
	}

	sessionID := h.sessionID(w, r)
	matrix, err := h.compare.BuildMatrix(r.Context(), sessionID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, matrix)
}

// sessionID reads the compare session cookie, minting one on first use.
func (h *CompareHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(compareSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "anonymous"
	}
	id := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     compareSessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
