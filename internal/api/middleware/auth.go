package middleware

import (
	"context"
	"net/http"

	"github.com/medbridge360/backend/internal/domain/providers"
)

type contextKey string

const claimsContextKey contextKey = "session_claims"

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "mb_session"

// RequireSession rejects requests without a valid session token and puts
// the verified claims on the request context.
func RequireSession(sessions providers.SessionProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				unauthorized(w, "authentication required")
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil {
				unauthorized(w, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + message + `"}`))
}

// tokenFromRequest reads the session cookie, falling back to a bearer
// Authorization header.
func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && auth[:len(prefix)] == prefix {
		return auth[len(prefix):]
	}
	return ""
}

// ClaimsFromContext returns the verified session claims, or nil outside
// an authenticated request.
func ClaimsFromContext(ctx context.Context) *providers.SessionClaims {
	claims, _ := ctx.Value(claimsContextKey).(*providers.SessionClaims)
	return claims
}
