package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const bypassKey contextKey = "devBypass"

// SetBypass returns a context marked with the development identity bypass.
func SetBypass(ctx context.Context) context.Context {
	return context.WithValue(ctx, bypassKey, true)
}

// BypassFromContext reports whether DevBypass accepted the bypass header for this request.
func BypassFromContext(ctx context.Context) bool {
	v, _ := ctx.Value(bypassKey).(bool)
	return v
}

// DevBypass marks requests carrying header: 1 so identity resolution returns the development user.
// When enabled is false the header is ignored and the request passes through unchanged.
func DevBypass(header string, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(header) == "1" {
				r = r.WithContext(SetBypass(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}
