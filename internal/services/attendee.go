package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eventboard/internal/domain"
)

type applicationService struct {
	appRepo         domain.ApplicationRepository
	identity        domain.IdentityResolver
	requireIdentity bool
	logger          zerolog.Logger
	contextTimeout  time.Duration
}

// NewApplicationService creates an ApplicationService. When requireIdentity is false an apply
// request without a token is stored with no applicant.
func NewApplicationService(
	appRepo domain.ApplicationRepository,
	identity domain.IdentityResolver,
	requireIdentity bool,
	logger zerolog.Logger,
	timeout time.Duration,
) domain.ApplicationService {
	return &applicationService{
		appRepo:         appRepo,
		identity:        identity,
		requireIdentity: requireIdentity,
		logger:          logger,
		contextTimeout:  timeout,
	}
}

func (s *applicationService) Apply(ctx context.Context, in domain.ApplyInput) (int64, error) {
	if in.EventID <= 0 {
		return 0, domain.NewValidationError("event_id required")
	}

	var applicant *string
	if s.requireIdentity || in.Bypass || strings.TrimSpace(in.IDToken) != "" {
		userID, err := s.identity.Resolve(ctx, in.IDToken, in.Bypass)
		if err != nil {
			return 0, err
		}
		applicant = &userID
	}

	app := domain.NewApplication(in.EventID, applicant, in.StoreName, in.Phone, in.Email, in.Memo)

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.appRepo.Create(ctx, app); err != nil {
		return 0, fmt.Errorf("create application: %w", err)
	}
	return app.ID, nil
}

func (s *applicationService) ListForEvent(ctx context.Context, eventID int64) ([]*domain.ApplicationSummary, error) {
	if eventID <= 0 {
		return nil, domain.NewValidationError("event_id required")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	apps, err := s.appRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	if id <= 0 || !status.Valid() {
		return domain.NewValidationError("invalid payload")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	matched, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if !matched {
		s.logger.Warn().Int64("application_id", id).Str("status", string(status)).Msg("status update matched no application")
	}
	return nil
}
