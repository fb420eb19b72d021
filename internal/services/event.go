package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"eventboard/internal/domain"
	"eventboard/internal/payload"
)

type eventService struct {
	eventRepo      domain.EventRepository
	identity       domain.IdentityResolver
	logger         zerolog.Logger
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository,
	identity domain.IdentityResolver,
	logger zerolog.Logger,
	timeout time.Duration,
) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		identity:       identity,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, idToken string, bypass bool, raw map[string]any) (int64, error) {
	if raw == nil {
		return 0, domain.NewValidationError("event payload required")
	}

	userID, err := s.identity.Resolve(ctx, idToken, bypass)
	if err != nil {
		return 0, err
	}

	event := payload.NormalizeEvent(raw)
	if strings.TrimSpace(event.EventName) == "" {
		return 0, domain.NewValidationError("event_name required")
	}
	event.CreatedBy = &userID

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	if err := s.eventRepo.Create(ctx, &event); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return event.ID, nil
}

func (s *eventService) GetEvent(ctx context.Context, id int64) (*domain.EventDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ev, err := s.eventRepo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("event not found")
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return ev, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.EventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) ListMyEvents(ctx context.Context, bypass bool) ([]*domain.HostEvent, error) {
	// TODO: filter by created_by once hosts sign in with a verified token on this route.
	if userID := s.identity.ResolveOptional(bypass); userID != "" {
		s.logger.Debug().Str("user_id", userID).Msg("listing host events")
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.ListHostEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list host events: %w", err)
	}
	return events, nil
}
