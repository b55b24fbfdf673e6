package domain

import (
	"context"
	"io"
	"time"
)

// Event represents a volunteer event with an optional banner image.
// BannerKey, when set, is the asset store key of the current banner.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	BannerKey   *string   `json:"banner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, date, description string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Date:        date,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines the interface for event record storage.
// List order is unspecified; callers must not depend on it.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// SetBanner has upsert semantics: if no event row exists for id, one is
	// created with that id and the given banner key rather than failing.
	SetBanner(ctx context.Context, id string, bannerKey string) error
	Delete(ctx context.Context, id string) error
}

// BannerUpload is the content of an uploaded banner image.
type BannerUpload struct {
	Content  io.Reader
	Filename string
}

// EventService coordinates event records and their banner assets across the
// record store and the asset store.
type EventService interface {
	// CreateEvent stores the banner (if any) and then the event record,
	// compensating by deleting the banner if the record insert fails.
	CreateEvent(ctx context.Context, event *Event, banner *BannerUpload) error
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	// ReplaceBanner updates the event's banner. oldKey is the key the caller
	// believes is currently attached; when empty, the stored banner key is
	// used instead. When banner is nil the current banner is kept.
	ReplaceBanner(ctx context.Context, eventID, oldKey string, banner *BannerUpload) (*Event, error)
	// DeleteEvent removes the banner asset (tolerating its absence) and then
	// the event record.
	DeleteEvent(ctx context.Context, eventID, bannerKey string) error
	// OpenBanner opens the banner asset for reading. Returns ErrNotFound if
	// the key does not exist.
	OpenBanner(ctx context.Context, key string) (io.ReadCloser, error)
}
