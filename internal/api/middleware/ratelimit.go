package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// ChatRateLimit caps chat requests per client IP. The completion
// provider is paid per token; a runaway client must not drain the budget.
func ChatRateLimit(requestLimit int, window time.Duration) func(http.Handler) http.Handler {
	if requestLimit <= 0 {
		requestLimit = 20
	}
	if window <= 0 {
		window = time.Minute
	}
	return httprate.LimitByIP(requestLimit, window)
}
