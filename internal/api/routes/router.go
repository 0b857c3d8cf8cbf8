package routes

import (
	"net/http"
	"time"

	"github.com/medbridge360/backend/internal/api/handlers"
	"github.com/medbridge360/backend/internal/api/middleware"
	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	hospitalHandler  *handlers.HospitalHandler
	compareHandler   *handlers.CompareHandler
	itineraryHandler *handlers.ItineraryHandler
	chatHandler      *handlers.ChatHandler
	authHandler      *handlers.AuthHandler

	sessions providers.SessionProvider
	metrics  *observability.Metrics

	chatRateLimit  int
	chatRateWindow time.Duration
}

// NewRouter creates a new router
func NewRouter(
	hospitalHandler *handlers.HospitalHandler,
	compareHandler *handlers.CompareHandler,
	itineraryHandler *handlers.ItineraryHandler,
	chatHandler *handlers.ChatHandler,
	authHandler *handlers.AuthHandler,
	sessions providers.SessionProvider,
	metrics *observability.Metrics,
	chatRateLimit int,
	chatRateWindow time.Duration,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		hospitalHandler:  hospitalHandler,
		compareHandler:   compareHandler,
		itineraryHandler: itineraryHandler,
		chatHandler:      chatHandler,
		authHandler:      authHandler,
		sessions:         sessions,
		metrics:          metrics,
		chatRateLimit:    chatRateLimit,
		chatRateWindow:   chatRateWindow,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Hospital endpoints
	r.mux.HandleFunc("GET /api/hospitals", r.hospitalHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/hospitals/search", r.hospitalHandler.SearchHospitals)
	r.mux.HandleFunc("GET /api/hospitals/{id}", r.hospitalHandler.GetHospital)
	r.mux.HandleFunc("GET /api/hospitals/{id}/journey", r.hospitalHandler.GetJourney)

	// Compare endpoints
	r.mux.HandleFunc("GET /api/compare", r.compareHandler.GetSelection)
	r.mux.HandleFunc("POST /api/compare", r.compareHandler.AddToSelection)
	r.mux.HandleFunc("DELETE /api/compare", r.compareHandler.ClearSelection)
	r.mux.HandleFunc("DELETE /api/compare/{id}", r.compareHandler.RemoveFromSelection)
	r.mux.HandleFunc("GET /api/compare/matrix", r.compareHandler.GetMatrix)

	// Itinerary endpoint
	r.mux.HandleFunc("POST /api/itinerary", r.itineraryHandler.GenerateItinerary)

	// Chat endpoint, rate limited per client IP
	chatLimiter := middleware.ChatRateLimit(r.chatRateLimit, r.chatRateWindow)
	r.mux.Handle("POST /api/chat", chatLimiter(http.HandlerFunc(r.chatHandler.Chat)))

	// Session endpoints
	if r.authHandler != nil {
		r.mux.HandleFunc("POST /api/auth/login", r.authHandler.Login)
		r.mux.HandleFunc("POST /api/auth/logout", r.authHandler.Logout)

		requireSession := middleware.RequireSession(r.sessions)
		r.mux.Handle("GET /api/me", requireSession(http.HandlerFunc(r.authHandler.Me)))
	}

	// Apply middleware in reverse order (last middleware wraps first).
	// CORS must be outermost so error responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
