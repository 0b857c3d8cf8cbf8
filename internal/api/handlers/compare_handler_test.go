package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/adapters/compare"
	"github.com/medbridge360/backend/internal/adapters/memory"
	"github.com/medbridge360/backend/internal/api/handlers"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
)

func newCompareMux() *http.ServeMux {
	catalog := memory.NewCatalog(testHospitals())
	store := compare.NewMemoryStore(entities.CompareMaxCapacity, entities.CapacityReject)
	handler := handlers.NewCompareHandler(services.NewCompareService(catalog, store))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/compare", handler.GetSelection)
	mux.HandleFunc("POST /api/compare", handler.AddToSelection)
	mux.HandleFunc("DELETE /api/compare", handler.ClearSelection)
	mux.HandleFunc("DELETE /api/compare/{id}", handler.RemoveFromSelection)
	mux.HandleFunc("GET /api/compare/matrix", handler.GetMatrix)
	return mux
}

func addToCompare(t *testing.T, mux *http.ServeMux, sessionCookie *http.Cookie, hospitalID string) (*httptest.ResponseRecorder, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/compare", strings.NewReader(`{"hospital_id":"`+hospitalID+`"}`))
	if sessionCookie != nil {
		req.AddCookie(sessionCookie)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "mb_compare" {
			sessionCookie = c
		}
	}
	return rec, sessionCookie
}

func TestCompareHandler_AddMintsSessionCookie(t *testing.T) {
	mux := newCompareMux()

	rec, cookie := addToCompare(t, mux, nil, "h-apollo")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
}

func TestCompareHandler_SelectionRoundTrip(t *testing.T) {
	mux := newCompareMux()

	_, cookie := addToCompare(t, mux, nil, "h-apollo")
	rec, cookie := addToCompare(t, mux, cookie, "h-bumrungrad")
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/compare", nil)
	req.AddCookie(cookie)
	getRec := httptest.NewRecorder()
	mux.ServeHTTP(getRec, req)

	require.Equal(t, http.StatusOK, getRec.Code)
	var set entities.CompareSet
	require.NoError(t, json.Unmarshal(getRec.Body.Bytes(), &set))
	assert.Equal(t, []string{"h-apollo", "h-bumrungrad"}, set.IDs)
}

func TestCompareHandler_AddUnknownHospital(t *testing.T) {
	mux := newCompareMux()

	rec, _ := addToCompare(t, mux, nil, "h-nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompareHandler_AddRequiresBody(t *testing.T) {
	mux := newCompareMux()

	req := httptest.NewRequest(http.MethodPost, "/api/compare", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompareHandler_MatrixFromSession(t *testing.T) {
	mux := newCompareMux()

	_, cookie := addToCompare(t, mux, nil, "h-apollo")
	_, cookie = addToCompare(t, mux, cookie, "h-bumrungrad")

	req := httptest.NewRequest(http.MethodGet, "/api/compare/matrix", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var matrix entities.ComparisonMatrix
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matrix))
	assert.Len(t, matrix.Hospitals, 2)
	assert.Equal(t, "h-bumrungrad", matrix.LowestCostID)
	assert.Equal(t, "h-apollo", matrix.HighestRatingID)
}

func TestCompareHandler_MatrixFromExplicitIDs(t *testing.T) {
	mux := newCompareMux()

	req := httptest.NewRequest(http.MethodGet, "/api/compare/matrix?id=h-apollo&id=h-bumrungrad", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var matrix entities.ComparisonMatrix
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matrix))
	assert.Len(t, matrix.Hospitals, 2)
}

func TestCompareHandler_MatrixInsufficientSelection(t *testing.T) {
	mux := newCompareMux()

	_, cookie := addToCompare(t, mux, nil, "h-apollo")

	req := httptest.NewRequest(http.MethodGet, "/api/compare/matrix", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCompareHandler_RemoveAndClear(t *testing.T) {
	mux := newCompareMux()

	_, cookie := addToCompare(t, mux, nil, "h-apollo")
	_, cookie = addToCompare(t, mux, cookie, "h-bumrungrad")

	req := httptest.NewRequest(http.MethodDelete, "/api/compare/h-apollo", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var set entities.CompareSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	assert.Equal(t, []string{"h-bumrungrad"}, set.IDs)

	clearReq := httptest.NewRequest(http.MethodDelete, "/api/compare", nil)
	clearReq.AddCookie(cookie)
	clearRec := httptest.NewRecorder()
	mux.ServeHTTP(clearRec, clearReq)
	assert.Equal(t, http.StatusNoContent, clearRec.Code)
}
