package domain

import "context"

// Event is the full record written by the create-event operation.
// Optional attributes are nil when absent; they are never stored as empty strings.
type Event struct {
	ID            int64    `json:"id"`
	EventName     string   `json:"event_name"`
	EventNameKana *string  `json:"event_name_kana"`
	Genre         *string  `json:"genre"`
	Label         *string  `json:"label"`
	StartDate     *string  `json:"start_date"`
	EndDate       *string  `json:"end_date"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	ApplyStart    *string  `json:"apply_start"`
	ApplyEnd      *string  `json:"apply_end"`
	Lead          *string  `json:"lead"`
	Description   *string  `json:"description"`
	Supplement    *string  `json:"supplement"`
	MainImage     *string  `json:"main_image"`
	SubImages     []string `json:"sub_images"`
	VenueName     *string  `json:"venue_name"`
	VenueAddress  *string  `json:"venue_address"`
	Lat           *float64 `json:"lat"`
	Lon           *float64 `json:"lon"`
	Organizer     *string  `json:"organizer"`
	ContactName   *string  `json:"contact_name"`
	ContactPhone  *string  `json:"contact_phone"`
	ContactEmail  *string  `json:"contact_email"`
	Price         *string  `json:"price"`
	TicketRelease *string  `json:"ticket_release"`
	TicketPlace   *string  `json:"ticket_place"`
	CreatedBy     *string  `json:"created_by"`
}

// EventDetail is the projection returned by GET /get-event.
// swagger:model EventDetail
type EventDetail struct {
	ID           int64    `json:"id"`
	EventName    string   `json:"event_name"`
	Lead         *string  `json:"lead"`
	Description  *string  `json:"description"`
	MainImage    *string  `json:"main_image"`
	SubImages    []string `json:"sub_images"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	ApplyStart   *string  `json:"apply_start"`
	ApplyEnd     *string  `json:"apply_end"`
	VenueName    *string  `json:"venue_name"`
	VenueAddress *string  `json:"venue_address"`
}

// EventSummary is the projection returned by GET /list-events.
// swagger:model EventSummary
type EventSummary struct {
	ID         int64   `json:"id"`
	EventName  string  `json:"event_name"`
	Lead       *string `json:"lead"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	MainImage  *string `json:"main_image"`
	Label      *string `json:"label"`
	ApplyStart *string `json:"apply_start"`
	ApplyEnd   *string `json:"apply_end"`
}

// HostEvent is the projection returned by GET /host/my-events.
// swagger:model HostEvent
type HostEvent struct {
	ID        int64   `json:"id"`
	EventName string  `json:"event_name"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Lead      *string `json:"lead"`
	CreatedBy *string `json:"created_by"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetDetail(ctx context.Context, id int64) (*EventDetail, error)
	ListSummaries(ctx context.Context) ([]*EventSummary, error)
	ListHostEvents(ctx context.Context) ([]*HostEvent, error)
}

// EventService defines the organizer- and visitor-facing event operations.
type EventService interface {
	// CreateEvent normalizes raw, resolves the creator from idToken and inserts the event.
	CreateEvent(ctx context.Context, idToken string, bypass bool, raw map[string]any) (int64, error)
	GetEvent(ctx context.Context, id int64) (*EventDetail, error)
	ListEvents(ctx context.Context) ([]*EventSummary, error)
	// ListMyEvents returns every event. The caller identity is resolved but not yet used as a filter.
	ListMyEvents(ctx context.Context, bypass bool) ([]*HostEvent, error)
}
