package domain

import (
	"context"
	"time"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application represents an attendee's submission to take part in an event.
// swagger:model Application
type Application struct {
	ID         int64             `json:"id"`
	EventID    int64             `json:"event_id"`
	LineUserID *string           `json:"line_user_id"`
	StoreName  *string           `json:"store_name"`
	Phone      *string           `json:"phone"`
	Email      *string           `json:"email"`
	Memo       *string           `json:"memo"`
	Status     ApplicationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

// NewApplication returns a pending Application. ID and CreatedAt are set by the store.
func NewApplication(eventID int64, lineUserID, storeName, phone, email, memo *string) *Application {
	return &Application{
		EventID:    eventID,
		LineUserID: lineUserID,
		StoreName:  storeName,
		Phone:      phone,
		Email:      email,
		Memo:       memo,
		Status:     StatusPending,
	}
}

// ApplicationSummary is the projection returned to hosts by GET /host/list-applications.
// swagger:model ApplicationSummary
type ApplicationSummary struct {
	ID        int64             `json:"id"`
	StoreName *string           `json:"store_name"`
	Phone     *string           `json:"phone"`
	Email     *string           `json:"email"`
	Memo      *string           `json:"memo"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// ApplyInput carries the fields of an apply-event submission after ID coercion.
type ApplyInput struct {
	EventID   int64
	StoreName *string
	Phone     *string
	Email     *string
	Memo      *string
	IDToken   string
	Bypass    bool
}

// ApplicationRepository defines storage operations for event applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	ListByEventID(ctx context.Context, eventID int64) ([]*ApplicationSummary, error)
	// UpdateStatus sets the status of the application and reports whether a row matched.
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) (bool, error)
}

// ApplicationService defines attendee and host operations on applications.
type ApplicationService interface {
	Apply(ctx context.Context, in ApplyInput) (int64, error)
	ListForEvent(ctx context.Context, eventID int64) ([]*ApplicationSummary, error)
	UpdateStatus(ctx context.Context, id int64, status ApplicationStatus) error
}
