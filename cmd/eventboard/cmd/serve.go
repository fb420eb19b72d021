package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eventboard/config"
	"eventboard/internal/adapters/line"
	"eventboard/internal/adapters/storage"
	deliveryhttp "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/repository/postgres"
	"eventboard/internal/services"

	_ "eventboard/docs"
)

const (
	storeTimeout    = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

var serverPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and begin accepting API requests.

The server will:
- Load configuration from environment variables (and .env outside production)
- Connect to Postgres
- Serve the API, /healthz, /metrics and /swagger/
- Handle graceful shutdown on SIGINT/SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverPort, "port", "", "server port (default: PORT or 8080)")
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if serverPort != "" {
		cfg.Port = serverPort
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}

	logger := config.NewLogger(cfg)
	logger.Info().Str("version", Version).Msg("starting eventboard")
	if cfg.Auth.DevMode {
		logger.Warn().Str("user", cfg.Auth.DevFixedUser).Msg("DEV_MODE is on, identity tokens are not verified")
	}
	if cfg.BypassHeaderEnabled() {
		logger.Warn().Str("header", cfg.Auth.BypassHeader).Msg("development bypass header is honored")
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	handler, err := buildHandler(cfg, logger, db)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-stop:
	}
	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func buildHandler(cfg *config.Config, logger zerolog.Logger, db *sql.DB) (http.Handler, error) {
	verifier := line.NewVerifier(cfg.Auth.VerifyURL, cfg.Auth.ChannelID, cfg.Auth.VerifyTimeout)
	identity := services.NewIdentityResolver(verifier, cfg.Auth.DevMode, cfg.Auth.DevFixedUser, logger)

	signer, err := storage.NewUploadSigner(cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	publicURL := func(path string) string {
		return storage.PublicURL(cfg.Storage.BaseURL, cfg.Storage.Bucket, path)
	}

	eventSvc := services.NewEventService(postgres.NewEventRepository(db), identity, logger, storeTimeout)
	appSvc := services.NewApplicationService(postgres.NewApplicationRepository(db), identity,
		cfg.Auth.RequireApplicantIdentity, logger, storeTimeout)
	uploadSvc := services.NewUploadService(signer, publicURL)

	return deliveryhttp.NewRouter(cfg, logger, deliveryhttp.Controllers{
		Events:       controllers.NewEventController(logger, eventSvc),
		Applications: controllers.NewApplicationController(logger, appSvc),
		Uploads:      controllers.NewUploadController(logger, uploadSvc),
	}, db), nil
}
