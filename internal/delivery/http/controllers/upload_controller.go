package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// UploadURLRequest is the request body for POST /upload-url.
type UploadURLRequest struct {
	Filename string `json:"filename" example:"poster.png"`
	Prefix   string `json:"prefix" example:"events"`
}

// UploadURLResponse is the success body for POST /upload-url.
type UploadURLResponse struct {
	OK bool `json:"ok"`
	domain.UploadTarget
}

type UploadController struct {
	Logger  zerolog.Logger
	Service domain.UploadService
}

func NewUploadController(logger zerolog.Logger, svc domain.UploadService) *UploadController {
	return &UploadController{Logger: logger, Service: svc}
}

// IssueUploadURL godoc
// @Summary Issue a signed upload URL
// @Description Generates an object path under prefix (default events) and returns a short-lived upload URL for it together with the public URL the object will have.
// @Tags uploads
// @Accept json
// @Produce json
// @Param body body UploadURLRequest false "Optional filename and prefix"
// @Success 200 {object} controllers.UploadURLResponse
// @Failure 400 {object} helpers.ErrorResponse "storage failure"
// @Failure 405 {object} helpers.ErrorResponse
// @Router /upload-url [post]
func (c *UploadController) IssueUploadURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		helpers.WriteMethodNotAllowed(w)
		return
	}
	body := helpers.ReadJSONBody(r)

	target, err := c.Service.IssueUploadURL(r.Context(), helpers.StringField(body, "filename"), helpers.StringField(body, "prefix"))
	if err != nil {
		c.Logger.Warn().Err(err).Str("path", r.URL.Path).Msg("request failed")
		helpers.WriteJSONError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, UploadURLResponse{OK: true, UploadTarget: *target})
}
