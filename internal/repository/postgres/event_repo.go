package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"eventboard/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (
			event_name, event_name_kana, genre, label,
			start_date, end_date, start_time, end_time, apply_start, apply_end,
			lead, description, supplement, main_image, sub_images,
			venue_name, venue_address, lat, lon,
			organizer, contact_name, contact_phone, contact_email,
			price, ticket_release, ticket_place, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		e.EventName, e.EventNameKana, e.Genre, e.Label,
		e.StartDate, e.EndDate, e.StartTime, e.EndTime, e.ApplyStart, e.ApplyEnd,
		e.Lead, e.Description, e.Supplement, e.MainImage, pq.Array(e.SubImages),
		e.VenueName, e.VenueAddress, e.Lat, e.Lon,
		e.Organizer, e.ContactName, e.ContactPhone, e.ContactEmail,
		e.Price, e.TicketRelease, e.TicketPlace, e.CreatedBy,
	).Scan(&e.ID)
	return observe("events.insert", err)
}

func (r *eventRepository) GetDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	query := `
		SELECT id, event_name, lead, description, main_image, sub_images,
			start_date::text, end_date::text, apply_start::text, apply_end::text,
			venue_name, venue_address
		FROM events
		WHERE id = $1
	`
	e := &domain.EventDetail{}
	var lead, desc, mainImage, startDate, endDate, applyStart, applyEnd, venueName, venueAddress sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.EventName, &lead, &desc, &mainImage, pq.Array(&e.SubImages),
		&startDate, &endDate, &applyStart, &applyEnd,
		&venueName, &venueAddress,
	)
	if err := observe("events.get", err); err != nil {
		return nil, err
	}
	e.Lead = nullString(lead)
	e.Description = nullString(desc)
	e.MainImage = nullString(mainImage)
	e.StartDate = nullString(startDate)
	e.EndDate = nullString(endDate)
	e.ApplyStart = nullString(applyStart)
	e.ApplyEnd = nullString(applyEnd)
	e.VenueName = nullString(venueName)
	e.VenueAddress = nullString(venueAddress)
	return e, nil
}

func (r *eventRepository) ListSummaries(ctx context.Context) ([]*domain.EventSummary, error) {
	query := `
		SELECT id, event_name, lead, start_date::text, end_date::text, main_image, label,
			apply_start::text, apply_end::text
		FROM events
		ORDER BY start_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, observe("events.list", err)
	}
	defer rows.Close()

	events := make([]*domain.EventSummary, 0)
	for rows.Next() {
		e := &domain.EventSummary{}
		var lead, startDate, endDate, mainImage, label, applyStart, applyEnd sql.NullString
		if err := rows.Scan(&e.ID, &e.EventName, &lead, &startDate, &endDate, &mainImage, &label, &applyStart, &applyEnd); err != nil {
			return nil, observe("events.list", err)
		}
		e.Lead = nullString(lead)
		e.StartDate = nullString(startDate)
		e.EndDate = nullString(endDate)
		e.MainImage = nullString(mainImage)
		e.Label = nullString(label)
		e.ApplyStart = nullString(applyStart)
		e.ApplyEnd = nullString(applyEnd)
		events = append(events, e)
	}
	if err := observe("events.list", rows.Err()); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) ListHostEvents(ctx context.Context) ([]*domain.HostEvent, error) {
	query := `
		SELECT id, event_name, start_date::text, end_date::text, lead, created_by
		FROM events
		ORDER BY id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, observe("events.list_host", err)
	}
	defer rows.Close()

	events := make([]*domain.HostEvent, 0)
	for rows.Next() {
		e := &domain.HostEvent{}
		var startDate, endDate, lead, createdBy sql.NullString
		if err := rows.Scan(&e.ID, &e.EventName, &startDate, &endDate, &lead, &createdBy); err != nil {
			return nil, observe("events.list_host", err)
		}
		e.StartDate = nullString(startDate)
		e.EndDate = nullString(endDate)
		e.Lead = nullString(lead)
		e.CreatedBy = nullString(createdBy)
		events = append(events, e)
	}
	if err := observe("events.list_host", rows.Err()); err != nil {
		return nil, err
	}
	return events, nil
}
