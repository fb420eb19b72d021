package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

const corsMaxAge = 86400

// CORS returns a handler that adds CORS headers for allowed origins and answers preflight requests.
// With no origins configured no CORS headers are sent.
// bypassHeader is added to the allowed request headers so browser clients in development can send it.
func CORS(allowedOrigins []string, bypassHeader string) func(http.Handler) http.Handler {
	origins := make([]string, 0, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSuffix(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", bypassHeader},
		AllowCredentials: true,
		MaxAge:           corsMaxAge,
	})
}
