package postgres

import (
	"context"
	"database/sql"
	"errors"

	"volunteernetwork/internal/domain"
)

type userEventRepository struct {
	DB *sql.DB
}

func NewUserEventRepository(db *sql.DB) domain.UserEventRepository {
	return &userEventRepository{DB: db}
}

func (r *userEventRepository) Create(ctx context.Context, ue *domain.UserEvent) error {
	query := `
		INSERT INTO user_events (user_email, event_id, event_title, date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, ue.UserEmail, ue.EventID, ue.EventTitle, ue.Date, ue.CreatedAt).Scan(&ue.ID)
}

// List returns all user-event associations. Row order is whatever the database
// yields; callers must not depend on it.
func (r *userEventRepository) List(ctx context.Context) ([]*domain.UserEvent, error) {
	query := `
		SELECT id, user_email, event_id, event_title, date, created_at
		FROM user_events
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	userEvents := make([]*domain.UserEvent, 0)
	for rows.Next() {
		ue := &domain.UserEvent{}
		if err := rows.Scan(&ue.ID, &ue.UserEmail, &ue.EventID, &ue.EventTitle, &ue.Date, &ue.CreatedAt); err != nil {
			return nil, err
		}
		userEvents = append(userEvents, ue)
	}
	return userEvents, rows.Err()
}

func (r *userEventRepository) GetByID(ctx context.Context, id string) (*domain.UserEvent, error) {
	query := `
		SELECT id, user_email, event_id, event_title, date, created_at
		FROM user_events
		WHERE id = $1
	`
	ue := &domain.UserEvent{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&ue.ID, &ue.UserEmail, &ue.EventID, &ue.EventTitle, &ue.Date, &ue.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ue, nil
}

func (r *userEventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM user_events WHERE id = $1`
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
