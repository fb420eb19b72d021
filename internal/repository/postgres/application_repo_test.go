package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

func TestApplicationRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		app      *domain.Application
		mock     func(mock sqlmock.Sqlmock)
		wantID   int64
		wantErr  bool
		wantCode string
	}{
		{
			name: "success",
			app:  domain.NewApplication(5, strPtr("dev-user"), strPtr("Cafe A"), nil, nil, nil),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_applications \(event_id, line_user_id, store_name, phone, email, memo, status\)`).
					WithArgs(int64(5), "dev-user", "Cafe A", nil, nil, nil, "pending").
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created))
			},
			wantID: 11,
		},
		{
			name: "foreign key violation",
			app:  domain.NewApplication(404, nil, nil, nil, nil, nil),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO event_applications`).
					WithArgs(int64(404), nil, nil, nil, nil, nil, "pending").
					WillReturnError(&pq.Error{Code: "23503", Message: "insert or update on table \"event_applications\" violates foreign key constraint"})
			},
			wantErr:  true,
			wantCode: "23503",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = NewApplicationRepository(db).Create(ctx, tt.app)
			if tt.wantErr {
				var se *domain.StoreError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantCode, se.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, tt.app.ID)
			assert.Equal(t, created, tt.app.CreatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestApplicationRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	cols := []string{"id", "store_name", "phone", "email", "memo", "status", "created_at"}

	t.Run("filtered and newest first", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_applications\s+WHERE event_id = \$1\s+ORDER BY id DESC`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(12), "Cafe B", nil, "b@example.com", nil, "accepted", created).
				AddRow(int64(11), "Cafe A", "090", nil, "hi", "pending", created))

		got, err := NewApplicationRepository(db).ListByEventID(ctx, 5)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, &domain.ApplicationSummary{
			ID:        12,
			StoreName: strPtr("Cafe B"),
			Email:     strPtr("b@example.com"),
			Status:    domain.StatusAccepted,
			CreatedAt: created,
		}, got[0])
		assert.Equal(t, domain.StatusPending, got[1].Status)
		assert.Equal(t, strPtr("hi"), got[1].Memo)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no applications", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM event_applications`).WithArgs(int64(6)).WillReturnRows(sqlmock.NewRows(cols))

		got, err := NewApplicationRepository(db).ListByEventID(ctx, 6)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantMatched bool
		wantErr     bool
	}{
		{
			name: "row updated",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE event_applications SET status = \$1 WHERE id = \$2`).
					WithArgs("accepted", int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantMatched: true,
		},
		{
			name: "no matching row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE event_applications`).
					WithArgs("accepted", int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantMatched: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE event_applications`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
		{
			name: "rows affected unavailable",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE event_applications`).
					WithArgs("accepted", int64(3)).
					WillReturnResult(sqlmock.NewErrorResult(sql.ErrConnDone))
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
			matched, err := NewApplicationRepository(db).UpdateStatus(ctx, 3, domain.StatusAccepted)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domain.KindStore, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMatched, matched)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
