package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	tests := []struct {
		name          string
		handlerStatus int
		path          string
		method        string
		wantLevel     string
	}{
		{"ok status", http.StatusOK, "/list-events", http.MethodGet, "info"},
		{"bad request", http.StatusBadRequest, "/apply-event", http.MethodPost, "warn"},
		{"method not allowed", http.StatusMethodNotAllowed, "/create-event", http.MethodGet, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
			})
			handler := chimiddleware.RequestID(Logging(logger)(next))
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			require.Equal(t, "request", entry["message"])
			require.Equal(t, tt.wantLevel, entry["level"])
			require.Equal(t, tt.method, entry["method"])
			require.Equal(t, tt.path, entry["path"])
			require.Equal(t, float64(tt.handlerStatus), entry["status"])
			require.GreaterOrEqual(t, entry["duration_ms"].(float64), float64(0))
			require.NotEmpty(t, entry["request_id"])
			require.Equal(t, tt.handlerStatus, rr.Code)
		})
	}
}

func TestLogging_implicitOK(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	rr := httptest.NewRecorder()
	Logging(zerolog.New(&buf))(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, float64(http.StatusOK), entry["status"])
	require.Equal(t, float64(len(`{"ok":true}`)), entry["bytes"])
}
