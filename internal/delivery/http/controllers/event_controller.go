package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
	"eventboard/internal/payload"
)

// CreateEventRequest is the request body for POST /create-event.
// Event is a loose object; see payload.NormalizeEvent for how each field is coerced.
type CreateEventRequest struct {
	IDToken string         `json:"idToken"`
	Event   map[string]any `json:"event"`
}

// CreateEventResponse is the success body for POST /create-event.
type CreateEventResponse struct {
	OK      bool  `json:"ok"`
	EventID int64 `json:"event_id"`
}

// GetEventResponse is the success body for GET /get-event.
type GetEventResponse struct {
	OK    bool                `json:"ok"`
	Event *domain.EventDetail `json:"event"`
}

// ListEventsResponse is the success body for GET /list-events.
type ListEventsResponse struct {
	OK     bool                   `json:"ok"`
	Events []*domain.EventSummary `json:"events"`
}

// MyEventsResponse is the success body for GET /host/my-events.
type MyEventsResponse struct {
	OK     bool                `json:"ok"`
	Events []*domain.HostEvent `json:"events"`
}

type EventController struct {
	Logger  zerolog.Logger
	Service domain.EventService
}

func NewEventController(logger zerolog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event attributed to the caller. The caller is resolved from idToken, or from the development identity when dev mode or the bypass header applies. Blank strings are stored as null.
// @Tags events
// @Accept json
// @Produce json
// @Param body body CreateEventRequest true "Identity token and event fields"
// @Success 200 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse "validation or store failure"
// @Failure 401 {object} helpers.ErrorResponse "malformed or rejected idToken"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /create-event [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	body := helpers.ReadJSONBody(r)
	event, _ := body["event"].(map[string]any)

	id, err := c.Service.CreateEvent(r.Context(), helpers.StringField(body, "idToken"), middleware.BypassFromContext(r.Context()), event)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, CreateEventResponse{OK: true, EventID: id})
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the public detail projection of one event.
// @Tags events
// @Produce json
// @Param id query int true "Event ID (event_id is accepted as an alias)"
// @Success 200 {object} controllers.GetEventResponse
// @Failure 400 {object} helpers.ErrorResponse "missing id, unknown event or store failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /get-event [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	raw := q.Get("id")
	if raw == "" {
		raw = q.Get("event_id")
	}
	id, ok := payload.PositiveID(raw)
	if !ok {
		c.fail(w, r, domain.NewValidationError("event id required"))
		return
	}

	ev, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, GetEventResponse{OK: true, Event: ev})
}

// ListEvents godoc
// @Summary List events
// @Description Returns every event ordered by start date ascending.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 400 {object} helpers.ErrorResponse "store failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /list-events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.fail(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.EventSummary{}
	}
	helpers.WriteJSONSuccess(w, ListEventsResponse{OK: true, Events: events})
}

// ListMyEvents godoc
// @Summary List host events
// @Description Returns every event, newest first. Results are not yet filtered by the caller.
// @Tags host
// @Produce json
// @Success 200 {object} controllers.MyEventsResponse
// @Failure 400 {object} helpers.ErrorResponse "store failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /host/my-events [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	events, err := c.Service.ListMyEvents(r.Context(), middleware.BypassFromContext(r.Context()))
	if err != nil {
		c.fail(w, r, err)
		return
	}
	if events == nil {
		events = []*domain.HostEvent{}
	}
	helpers.WriteJSONSuccess(w, MyEventsResponse{OK: true, Events: events})
}

func (c *EventController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.Warn().Err(err).Str("path", r.URL.Path).Str("kind", domain.KindOf(err).String()).Msg("request failed")
	helpers.WriteJSONError(w, err)
}
