package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	"eventboard/config"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events       *controllers.EventController
	Applications *controllers.ApplicationController
	Uploads      *controllers.UploadController
}

// NewRouter initializes the HTTP router with all application routes.
// Operation routes accept every method so each handler can answer 405 in the JSON envelope.
func NewRouter(cfg *config.Config, logger zerolog.Logger, c Controllers, db Pinger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(cfg.HTTP.AllowedOrigins(), cfg.Auth.BypassHeader))
	r.Use(middleware.DevBypass(cfg.Auth.BypassHeader, cfg.BypassHeaderEnabled()))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow))

		r.HandleFunc("/create-event", c.Events.CreateEvent)
		r.HandleFunc("/get-event", c.Events.GetEvent)
		r.HandleFunc("/list-events", c.Events.ListEvents)
		r.HandleFunc("/apply-event", c.Applications.ApplyEvent)
		r.HandleFunc("/upload-url", c.Uploads.IssueUploadURL)

		r.Route("/host", func(r chi.Router) {
			r.HandleFunc("/list-applications", c.Applications.ListApplications)
			r.HandleFunc("/update-application", c.Applications.UpdateApplication)
			r.HandleFunc("/my-events", c.Events.ListMyEvents)
		})
	})

	r.Get("/healthz", healthz(db))
	r.Handle("/metrics", promhttp.Handler())

	// Swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func healthz(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			helpers.WriteJSON(w, http.StatusServiceUnavailable, helpers.ErrorResponse{Message: "database unreachable"})
			return
		}
		helpers.WriteJSONSuccess(w, helpers.OKResponse{OK: true})
	}
}
