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

func strPtr(s string) *string { return &s }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success with banner",
			event: &domain.Event{
				Title:       "Beach Cleanup",
				Date:        "2024-05-01",
				Description: "Cleaning the beach",
				BannerKey:   strPtr("sunset_abc.png"),
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, date, description, banner_key, created_at, updated_at\)`).
					WithArgs("Beach Cleanup", "2024-05-01", "Cleaning the beach", sql.NullString{String: "sunset_abc.png", Valid: true}, createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID:  "ev-uuid-1",
			wantErr: false,
		},
		{
			name: "success without banner",
			event: &domain.Event{
				Title:     "Tree Plantation",
				Date:      "2024-06-01",
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WithArgs("Tree Plantation", "2024-06-01", "", sql.NullString{}, createdAt, createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-2"))
			},
			wantID:  "ev-uuid-2",
			wantErr: false,
		},
		{
			name: "db error",
			event: &domain.Event{
				Title:     "Broken",
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
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
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, date, description, banner_key, created_at, updated_at`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "date", "description", "banner_key", "created_at", "updated_at"}).
						AddRow("ev-1", "Beach Cleanup", "2024-05-01", "desc", "sunset_abc.png", createdAt, createdAt))
			},
			want: &domain.Event{
				ID:          "ev-1",
				Title:       "Beach Cleanup",
				Date:        "2024-05-01",
				Description: "desc",
				BannerKey:   strPtr("sunset_abc.png"),
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			},
		},
		{
			name: "no banner",
			id:   "ev-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, date, description, banner_key, created_at, updated_at`).
					WithArgs("ev-2").
					WillReturnRows(sqlmock.NewRows([]string{"id", "title", "date", "description", "banner_key", "created_at", "updated_at"}).
						AddRow("ev-2", "Tree Plantation", "", "", nil, createdAt, createdAt))
			},
			want: &domain.Event{
				ID:        "ev-2",
				Title:     "Tree Plantation",
				CreatedAt: createdAt,
				UpdatedAt: createdAt,
			},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, date, description, banner_key, created_at, updated_at`).
					WithArgs("missing").
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
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, date, description, banner_key, created_at, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "date", "description", "banner_key", "created_at", "updated_at"}).
			AddRow("ev-1", "A", "2024-05-01", "", "a.png", createdAt, createdAt).
			AddRow("ev-2", "B", "2024-06-01", "", nil, createdAt, createdAt))

	repo := NewEventRepository(db)
	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "a.png", *events[0].BannerKey)
	require.Nil(t, events[1].BannerKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_SetBanner(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "upsert success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events .+ ON CONFLICT \(id\) DO UPDATE SET banner_key`).
					WithArgs("ev-1", "dune_xyz.png").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
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
			err = repo.SetBanner(ctx, "ev-1", "dune_xyz.png")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
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
			err = repo.Delete(ctx, "ev-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
