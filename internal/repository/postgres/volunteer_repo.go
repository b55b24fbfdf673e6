package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"volunteernetwork/internal/domain"
)

type volunteerRepository struct {
	DB *sql.DB
}

func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{DB: db}
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `
		INSERT INTO volunteers (email, name, phone, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, v.Email, v.Name, v.Phone, v.CreatedAt).Scan(&v.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// List returns all volunteers. Row order is whatever the database yields;
// callers must not depend on it.
func (r *volunteerRepository) List(ctx context.Context) ([]*domain.Volunteer, error) {
	query := `
		SELECT id, email, name, phone, created_at
		FROM volunteers
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	volunteers := make([]*domain.Volunteer, 0)
	for rows.Next() {
		v := &domain.Volunteer{}
		if err := rows.Scan(&v.ID, &v.Email, &v.Name, &v.Phone, &v.CreatedAt); err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, rows.Err()
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	query := `
		SELECT id, email, name, phone, created_at
		FROM volunteers
		WHERE id = $1
	`
	v := &domain.Volunteer{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Email, &v.Name, &v.Phone, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) GetByEmail(ctx context.Context, email string) (*domain.Volunteer, error) {
	query := `
		SELECT id, email, name, phone, created_at
		FROM volunteers
		WHERE email = $1
	`
	v := &domain.Volunteer{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&v.ID, &v.Email, &v.Name, &v.Phone, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *volunteerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM volunteers WHERE id = $1`
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
