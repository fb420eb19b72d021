package helpers

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"eventboard/internal/domain"
)

// ErrorResponse is the body written for every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// OKResponse is the body of a success response that carries no data.
// swagger:model OKResponse
type OKResponse struct {
	OK bool `json:"ok"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONSuccess writes v with status 200. v is expected to carry OK: true.
func WriteJSONSuccess(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

// WriteJSONError writes {ok:false, message[, code]} with the status chosen by StatusForError.
// Store failures report the store's own message and code; validation failures report only their message.
func WriteJSONError(w http.ResponseWriter, err error) {
	resp := ErrorResponse{Message: err.Error()}
	var se *domain.StoreError
	var de *domain.Error
	switch {
	case errors.As(err, &se):
		resp.Message = se.Message
		resp.Code = se.Code
	case errors.As(err, &de) && de.Kind == domain.KindValidation:
		resp.Message = de.Message
	}
	WriteJSON(w, StatusForError(err), resp)
}

// WriteMethodNotAllowed writes the 405 response used by every handler.
func WriteMethodNotAllowed(w http.ResponseWriter) {
	WriteJSONError(w, domain.ErrMethodNotAllowed)
}

// StatusForError maps an error kind to an HTTP status. Only 400, 401 and 405 are used.
func StatusForError(err error) int {
	switch domain.KindOf(err) {
	case domain.KindAuthFormat, domain.KindAuthVerification:
		return http.StatusUnauthorized
	case domain.KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusBadRequest
	}
}
