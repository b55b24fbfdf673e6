package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"volunteernetwork/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestUserEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userEvent *domain.UserEvent
		mock      func(mock sqlmock.Sqlmock)
		wantID    string
		wantErr   bool
	}{
		{
			name: "success",
			userEvent: &domain.UserEvent{
				UserEmail:  "a@x.com",
				EventID:    "ev-1",
				EventTitle: "Beach Cleanup",
				Date:       "2024-05-01",
				CreatedAt:  createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO user_events \(user_email, event_id, event_title, date, created_at\)`).
					WithArgs("a@x.com", "ev-1", "Beach Cleanup", "2024-05-01", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ue-uuid-1"))
			},
			wantID: "ue-uuid-1",
		},
		{
			name: "db error",
			userEvent: &domain.UserEvent{
				UserEmail: "a@x.com",
				EventID:   "ev-1",
				CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO user_events`).
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
			repo := NewUserEventRepository(db)
			err = repo.Create(ctx, tt.userEvent)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.userEvent.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_email, event_id, event_title, date, created_at`).
		WithArgs("ue-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_email", "event_id", "event_title", "date", "created_at"}).
			AddRow("ue-1", "a@x.com", "ev-1", "Beach Cleanup", "2024-05-01", createdAt))

	repo := NewUserEventRepository(db)
	got, err := repo.GetByID(ctx, "ue-1")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", got.UserEmail)
	require.Equal(t, "ev-1", got.EventID)
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(`SELECT id, user_email, event_id, event_title, date, created_at`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM user_events WHERE id = \$1`).
		WithArgs("ue-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserEventRepository(db)
	require.NoError(t, repo.Delete(ctx, "ue-1"))

	mock.ExpectExec(`DELETE FROM user_events WHERE id = \$1`).
		WithArgs("ue-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(ctx, "ue-1"), domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
