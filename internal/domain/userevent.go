package domain

import (
	"context"
	"time"
)

// UserEvent links a user to an event they joined. No uniqueness is enforced:
// the same user may hold several associations for the same event.
// swagger:model UserEvent
type UserEvent struct {
	ID         string    `json:"id"`
	UserEmail  string    `json:"user_email"`
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewUserEvent returns a new UserEvent. ID is typically set by the repository on create.
func NewUserEvent(userEmail, eventID, eventTitle, date string, createdAt time.Time) *UserEvent {
	return &UserEvent{
		UserEmail:  userEmail,
		EventID:    eventID,
		EventTitle: eventTitle,
		Date:       date,
		CreatedAt:  createdAt,
	}
}

// UserEventRepository defines the interface for user-event association storage.
// List order is unspecified; callers must not depend on it.
type UserEventRepository interface {
	Create(ctx context.Context, ue *UserEvent) error
	List(ctx context.Context) ([]*UserEvent, error)
	GetByID(ctx context.Context, id string) (*UserEvent, error)
	Delete(ctx context.Context, id string) error
}

// UserEventService defines the business logic for user-event associations.
type UserEventService interface {
	Create(ctx context.Context, ue *UserEvent) error
	List(ctx context.Context) ([]*UserEvent, error)
	Get(ctx context.Context, id string) (*UserEvent, error)
	Delete(ctx context.Context, id string) error
}
