package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
	"eventboard/internal/payload"
)

// ApplyEventRequest is the request body for POST /apply-event. event_id may be a number or a decimal string.
type ApplyEventRequest struct {
	EventID   any     `json:"event_id" swaggertype:"string" example:"5"`
	StoreName *string `json:"store_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Memo      *string `json:"memo"`
	IDToken   string  `json:"idToken"`
}

// ApplyEventResponse is the success body for POST /apply-event.
type ApplyEventResponse struct {
	OK            bool  `json:"ok"`
	ApplicationID int64 `json:"application_id"`
}

// ListApplicationsResponse is the success body for GET /host/list-applications.
type ListApplicationsResponse struct {
	OK           bool                         `json:"ok"`
	Applications []*domain.ApplicationSummary `json:"applications"`
}

// UpdateApplicationRequest is the validated form of the POST /host/update-application body.
type UpdateApplicationRequest struct {
	ApplicationID int64  `json:"application_id" validate:"gt=0"`
	Status        string `json:"status" validate:"required,oneof=pending accepted rejected" enums:"pending,accepted,rejected"`
}

type ApplicationController struct {
	Logger  zerolog.Logger
	Service domain.ApplicationService
}

func NewApplicationController(logger zerolog.Logger, svc domain.ApplicationService) *ApplicationController {
	return &ApplicationController{
		Logger:  logger,
		Service: svc,
	}
}

// ApplyEvent godoc
// @Summary Apply to an event
// @Description Stores a pending application for the event. The applicant is resolved from idToken, or from the development identity when dev mode or the bypass header applies.
// @Tags applications
// @Accept json
// @Produce json
// @Param body body ApplyEventRequest true "Application"
// @Success 200 {object} controllers.ApplyEventResponse
// @Failure 400 {object} helpers.ErrorResponse "event_id required or store failure"
// @Failure 401 {object} helpers.ErrorResponse "malformed or rejected idToken"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /apply-event [post]
func (c *ApplicationController) ApplyEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	body := helpers.ReadJSONBody(r)
	eventID, ok := payload.PositiveID(body["event_id"])
	if !ok {
		c.fail(w, r, domain.NewValidationError("event_id required"))
		return
	}

	id, err := c.Service.Apply(r.Context(), domain.ApplyInput{
		EventID:   eventID,
		StoreName: payload.OptionalString(body["store_name"]),
		Phone:     payload.OptionalString(body["phone"]),
		Email:     payload.OptionalString(body["email"]),
		Memo:      payload.OptionalString(body["memo"]),
		IDToken:   helpers.StringField(body, "idToken"),
		Bypass:    middleware.BypassFromContext(r.Context()),
	})
	if err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, ApplyEventResponse{OK: true, ApplicationID: id})
}

// ListApplications godoc
// @Summary List applications for an event
// @Description Returns the applications of one event, newest first.
// @Tags host
// @Produce json
// @Param event_id query int true "Event ID"
// @Success 200 {object} controllers.ListApplicationsResponse
// @Failure 400 {object} helpers.ErrorResponse "event_id required or store failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /host/list-applications [get]
func (c *ApplicationController) ListApplications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	eventID, ok := payload.PositiveID(r.URL.Query().Get("event_id"))
	if !ok {
		c.fail(w, r, domain.NewValidationError("event_id required"))
		return
	}

	apps, err := c.Service.ListForEvent(r.Context(), eventID)
	if err != nil {
		c.fail(w, r, err)
		return
	}
	if apps == nil {
		apps = []*domain.ApplicationSummary{}
	}
	helpers.WriteJSONSuccess(w, ListApplicationsResponse{OK: true, Applications: apps})
}

// UpdateApplication godoc
// @Summary Update an application's status
// @Description Sets the review status of an application. An unknown application_id is acknowledged without change.
// @Tags host
// @Accept json
// @Produce json
// @Param body body UpdateApplicationRequest true "Application ID and new status"
// @Success 200 {object} helpers.OKResponse
// @Failure 400 {object} helpers.ErrorResponse "invalid payload or store failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /host/update-application [post]
func (c *ApplicationController) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	body := helpers.ReadJSONBody(r)
	id, _ := payload.PositiveID(body["application_id"])
	req := UpdateApplicationRequest{
		ApplicationID: id,
		Status:        helpers.StringField(body, "status"),
	}
	if err := helpers.Validate(req, "invalid payload"); err != nil {
		c.fail(w, r, err)
		return
	}

	if err := c.Service.UpdateStatus(r.Context(), req.ApplicationID, domain.ApplicationStatus(req.Status)); err != nil {
		c.fail(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, helpers.OKResponse{OK: true})
}

func (c *ApplicationController) fail(w http.ResponseWriter, r *http.Request, err error) {
	c.Logger.Warn().Err(err).Str("path", r.URL.Path).Str("kind", domain.KindOf(err).String()).Msg("request failed")
	helpers.WriteJSONError(w, err)
}
