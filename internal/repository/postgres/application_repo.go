package postgres

import (
	"context"
	"database/sql"

	"eventboard/internal/domain"
)

type applicationRepository struct {
	DB *sql.DB
}

func NewApplicationRepository(db *sql.DB) domain.ApplicationRepository {
	return &applicationRepository{
		DB: db,
	}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO event_applications (event_id, line_user_id, store_name, phone, email, memo, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		app.EventID, app.LineUserID, app.StoreName, app.Phone, app.Email, app.Memo, string(app.Status),
	).Scan(&app.ID, &app.CreatedAt)
	return observe("applications.insert", err)
}

func (r *applicationRepository) ListByEventID(ctx context.Context, eventID int64) ([]*domain.ApplicationSummary, error) {
	query := `
		SELECT id, store_name, phone, email, memo, status, created_at
		FROM event_applications
		WHERE event_id = $1
		ORDER BY id DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, observe("applications.list", err)
	}
	defer rows.Close()

	apps := make([]*domain.ApplicationSummary, 0)
	for rows.Next() {
		a := &domain.ApplicationSummary{}
		var storeName, phone, email, memo sql.NullString
		var status string
		if err := rows.Scan(&a.ID, &storeName, &phone, &email, &memo, &status, &a.CreatedAt); err != nil {
			return nil, observe("applications.list", err)
		}
		a.StoreName = nullString(storeName)
		a.Phone = nullString(phone)
		a.Email = nullString(email)
		a.Memo = nullString(memo)
		a.Status = domain.ApplicationStatus(status)
		apps = append(apps, a)
	}
	if err := observe("applications.list", rows.Err()); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (bool, error) {
	query := `UPDATE event_applications SET status = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, string(status), id)
	var n int64
	if err == nil {
		n, err = result.RowsAffected()
	}
	if err := observe("applications.update_status", err); err != nil {
		return false, err
	}
	return n > 0, nil
}
