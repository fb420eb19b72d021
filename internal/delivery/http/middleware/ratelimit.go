package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"eventboard/internal/delivery/http/helpers"
)

// RateLimit limits each client IP to requests per window. A non-positive requests disables limiting.
func RateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			helpers.WriteJSON(w, http.StatusTooManyRequests, helpers.ErrorResponse{Message: "Too Many Requests"})
		}),
	)
}
