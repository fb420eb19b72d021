package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the HTTP layer can pick a status without matching messages.
type ErrorKind int

const (
	// KindUnknown covers failures with no more specific classification.
	KindUnknown ErrorKind = iota
	KindValidation
	KindAuthFormat
	KindAuthVerification
	KindStore
	KindMethodNotAllowed
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthFormat:
		return "auth_format"
	case KindAuthVerification:
		return "auth_verification"
	case KindStore:
		return "store"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "unknown"
	}
}

// Error is a classified error. Message is shown to API clients as-is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidationError returns a KindValidation error with the given client-facing message.
func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

// Sentinel errors for identity resolution.
var (
	ErrInvalidTokenFormat = &Error{Kind: KindAuthFormat, Message: "Invalid idToken format (expect JWS x.y.z)"}
	ErrVerificationFailed = &Error{Kind: KindAuthVerification, Message: "LINE verify failed"}
	ErrVerificationParse  = &Error{Kind: KindUnknown, Message: "LINE verify parse error"}
	ErrSubjectMissing     = &Error{Kind: KindUnknown, Message: "LINE user not found in id_token"}
)

// ErrMethodNotAllowed is returned when a handler is called with the wrong HTTP verb.
var ErrMethodNotAllowed = &Error{Kind: KindMethodNotAllowed, Message: "Method Not Allowed"}

// ErrNotFound is returned by repositories when a single-row lookup matches nothing.
var ErrNotFound = errors.New("not found")

// StoreError is a persistence failure carrying the store's own message and code.
type StoreError struct {
	Op      string
	Code    string
	Message string
	Err     error
}

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var se *StoreError
	if errors.As(err, &se) {
		return KindStore
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
