package postgres

import (
	"context"
	"database/sql"
	"errors"

	"volunteernetwork/internal/domain"
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
		INSERT INTO events (title, date, description, banner_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	var banner sql.NullString
	if e.BannerKey != nil {
		banner = sql.NullString{String: *e.BannerKey, Valid: true}
	}
	return r.DB.QueryRowContext(ctx, query, e.Title, e.Date, e.Description, banner, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

// List returns all events. Row order is whatever the database yields; callers
// must not depend on it.
func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, title, date, description, banner_key, created_at, updated_at
		FROM events
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		var banner sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Description, &banner, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		if banner.Valid {
			e.BannerKey = &banner.String
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, title, date, description, banner_key, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e := &domain.Event{}
	var banner sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Title, &e.Date, &e.Description, &banner, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if banner.Valid {
		e.BannerKey = &banner.String
	}
	return e, nil
}

// SetBanner upserts the banner key: a missing event row is created with the
// given id rather than treated as an error. The replace-banner flow relies on
// this when the record was lost but a live banner key still needs a home.
func (r *eventRepository) SetBanner(ctx context.Context, id string, bannerKey string) error {
	query := `
		INSERT INTO events (id, title, date, description, banner_key, created_at, updated_at)
		VALUES ($1, '', '', '', $2, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET banner_key = EXCLUDED.banner_key, updated_at = NOW()
	`
	_, err := r.DB.ExecContext(ctx, query, id, bannerKey)
	return err
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
