package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEmail is returned when a volunteer registration reuses an email.
var ErrDuplicateEmail = errors.New("email already in use")

// Volunteer represents a registered volunteer. Email is unique across volunteers.
// swagger:model Volunteer
type Volunteer struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVolunteer returns a new Volunteer with the given fields. ID is typically set by the repository on create.
func NewVolunteer(email, name, phone string, createdAt time.Time) *Volunteer {
	return &Volunteer{
		Email:     email,
		Name:      name,
		Phone:     phone,
		CreatedAt: createdAt,
	}
}

// VolunteerRepository defines the interface for volunteer storage.
// List order is unspecified; callers must not depend on it.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) error
	List(ctx context.Context) ([]*Volunteer, error)
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	GetByEmail(ctx context.Context, email string) (*Volunteer, error)
	Delete(ctx context.Context, id string) error
}

// VolunteerService defines the business logic for volunteer registration.
type VolunteerService interface {
	// Register creates a volunteer. Returns ErrDuplicateEmail if the email
	// is already registered.
	Register(ctx context.Context, v *Volunteer) error
	List(ctx context.Context) ([]*Volunteer, error)
	Get(ctx context.Context, id string) (*Volunteer, error)
	Delete(ctx context.Context, id string) error
}
