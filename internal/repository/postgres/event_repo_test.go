package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		event    *domain.Event
		mock     func(mock sqlmock.Sqlmock)
		wantID   int64
		wantErr  bool
		wantCode string
	}{
		{
			name: "success",
			event: &domain.Event{
				EventName: "Night Market",
				Genre:     strPtr("food"),
				StartDate: strPtr("2025-05-01"),
				SubImages: []string{"a.png", "b.png"},
				Lat:       floatPtr(35.68),
				CreatedBy: strPtr("U123"),
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(`).
					WithArgs(
						"Night Market", nil, "food", nil,
						"2025-05-01", nil, nil, nil, nil, nil,
						nil, nil, nil, nil, pq.Array([]string{"a.png", "b.png"}),
						nil, nil, 35.68, nil,
						nil, nil, nil, nil,
						nil, nil, nil, "U123",
					).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			},
			wantID: 42,
		},
		{
			name:  "absent sub images stored as null",
			event: &domain.Event{EventName: "Flea"},
			mock: func(mock sqlmock.Sqlmock) {
				args := make([]driver.Value, 27)
				args[0] = "Flea"
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs(args...).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
			},
			wantID: 1,
		},
		{
			name:  "constraint violation keeps code and message",
			event: &domain.Event{EventName: "Bad"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type date"})
			},
			wantErr:  true,
			wantCode: "22P02",
		},
		{
			name:  "db error",
			event: &domain.Event{EventName: "Conf"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				var se *domain.StoreError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, tt.wantCode, se.Code)
				assert.Equal(t, domain.KindStore, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetDetail(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "event_name", "lead", "description", "main_image", "sub_images",
		"start_date", "end_date", "apply_start", "apply_end", "venue_name", "venue_address"}

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.EventDetail
		wantErr error
	}{
		{
			name: "success",
			id:   7,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_name, lead, description, main_image, sub_images`).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(cols).AddRow(
						int64(7), "Night Market", "Lead", nil, "main.png", []byte("{a.png,b.png}"),
						"2025-05-01", "2025-05-02", nil, nil, "Hall", nil,
					))
			},
			want: &domain.EventDetail{
				ID:        7,
				EventName: "Night Market",
				Lead:      strPtr("Lead"),
				MainImage: strPtr("main.png"),
				SubImages: []string{"a.png", "b.png"},
				StartDate: strPtr("2025-05-01"),
				EndDate:   strPtr("2025-05-02"),
				VenueName: strPtr("Hall"),
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, event_name`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetDetail(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListSummaries(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "event_name", "lead", "start_date", "end_date", "main_image", "label", "apply_start", "apply_end"}

	t.Run("ordered by start date", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events\s+ORDER BY start_date ASC`).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(2), "Spring Fair", nil, "2025-04-01", nil, nil, "new", nil, nil).
				AddRow(int64(1), "Summer Fair", "Hot", "2025-07-01", nil, nil, nil, nil, nil))

		got, err := NewEventRepository(db).ListSummaries(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(2), got[0].ID)
		assert.Equal(t, strPtr("new"), got[0].Label)
		assert.Nil(t, got[0].Lead)
		assert.Equal(t, strPtr("Hot"), got[1].Lead)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events`).WillReturnRows(sqlmock.NewRows(cols))

		got, err := NewEventRepository(db).ListSummaries(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM events`).WillReturnError(&pq.Error{Code: "42P01", Message: `relation "events" does not exist`})

		got, err := NewEventRepository(db).ListSummaries(ctx)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Equal(t, `relation "events" does not exist`, err.Error())
	})
}

func TestEventRepository_ListHostEvents(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, event_name, start_date::text, end_date::text, lead, created_by\s+FROM events\s+ORDER BY id DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_name", "start_date", "end_date", "lead", "created_by"}).
			AddRow(int64(3), "C", nil, nil, nil, "U1").
			AddRow(int64(1), "A", "2025-01-01", nil, nil, nil))

	got, err := NewEventRepository(db).ListHostEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, strPtr("U1"), got[0].CreatedBy)
	assert.Nil(t, got[1].CreatedBy)
	assert.Equal(t, strPtr("2025-01-01"), got[1].StartDate)
	require.NoError(t, mock.ExpectationsWereMet())
}
