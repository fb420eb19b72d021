package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/config"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/domain"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(ctx context.Context) error { return p.err }

type routerEventService struct {
	lastBypass bool
}

func (s *routerEventService) CreateEvent(ctx context.Context, idToken string, bypass bool, raw map[string]any) (int64, error) {
	s.lastBypass = bypass
	return 1, nil
}

func (s *routerEventService) GetEvent(ctx context.Context, id int64) (*domain.EventDetail, error) {
	return &domain.EventDetail{ID: id, EventName: "Fair"}, nil
}

func (s *routerEventService) ListEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	return nil, nil
}

func (s *routerEventService) ListMyEvents(ctx context.Context, bypass bool) ([]*domain.HostEvent, error) {
	return nil, nil
}

type routerApplicationService struct {
	lastApply domain.ApplyInput
}

func (s *routerApplicationService) Apply(ctx context.Context, in domain.ApplyInput) (int64, error) {
	s.lastApply = in
	return 7, nil
}

func (s *routerApplicationService) ListForEvent(ctx context.Context, eventID int64) ([]*domain.ApplicationSummary, error) {
	return nil, nil
}

func (s *routerApplicationService) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	return nil
}

type routerUploadService struct{}

func (routerUploadService) IssueUploadURL(ctx context.Context, filename, prefix string) (*domain.UploadTarget, error) {
	return &domain.UploadTarget{UploadURL: "u", Path: "p", PublicURL: "pub"}, nil
}

func newTestRouter(t *testing.T, bypassEnabled bool, env string, db Pinger) (http.Handler, *routerEventService, *routerApplicationService) {
	t.Helper()
	cfg := config.Defaults()
	cfg.Environment = env
	cfg.Auth.AllowBypassHeader = bypassEnabled
	cfg.HTTP.RateLimitWindow = time.Minute

	events := &routerEventService{}
	apps := &routerApplicationService{}
	logger := zerolog.Nop()
	h := NewRouter(&cfg, logger, Controllers{
		Events:       controllers.NewEventController(logger, events),
		Applications: controllers.NewApplicationController(logger, apps),
		Uploads:      controllers.NewUploadController(logger, routerUploadService{}),
	}, db)
	return h, events, apps
}

func TestRouter_Routes(t *testing.T) {
	h, _, _ := newTestRouter(t, false, "development", stubPinger{})

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodPost, "/create-event", `{"event":{"event_name":"x"}}`, http.StatusOK},
		{http.MethodGet, "/create-event", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/get-event?id=3", "", http.StatusOK},
		{http.MethodGet, "/list-events", "", http.StatusOK},
		{http.MethodPost, "/apply-event", `{"event_id":"5","store_name":"Cafe A"}`, http.StatusOK},
		{http.MethodGet, "/apply-event", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/host/list-applications?event_id=5", "", http.StatusOK},
		{http.MethodPost, "/host/update-application", `{"application_id":1,"status":"accepted"}`, http.StatusOK},
		{http.MethodGet, "/host/my-events", "", http.StatusOK},
		{http.MethodPost, "/upload-url", `{}`, http.StatusOK},
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRouter_BypassHeader(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		env        string
		wantBypass bool
	}{
		{"honored when enabled in development", true, "development", true},
		{"ignored when not enabled", false, "development", false},
		{"ignored in production", true, "production", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, apps := newTestRouter(t, tt.enabled, tt.env, stubPinger{})
			req := httptest.NewRequest(http.MethodPost, "/apply-event", strings.NewReader(`{"event_id":5}`))
			req.Header.Set("X-Dev-Bypass", "1")
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantBypass, apps.lastApply.Bypass)
		})
	}
}

func TestRouter_HealthzUnavailable(t *testing.T) {
	h, _, _ := newTestRouter(t, false, "development", stubPinger{err: errors.New("dial tcp: connection refused")})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"ok":false,"message":"database unreachable"}`, rr.Body.String())
}
