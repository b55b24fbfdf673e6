package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"volunteernetwork/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	assets         domain.AssetStore
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewEventService returns the coordinator for event records and their banner
// assets. The record store and asset store fail independently; the service
// orders writes so that a partial failure never leaves a banner key pointing
// nowhere, and compensates orphaned assets where it can.
func NewEventService(eventRepo domain.EventRepository, assets domain.AssetStore, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		assets:         assets,
		logger:         logger,
		contextTimeout: timeout,
	}
}

// CreateEvent writes the banner asset first, then the event record referencing
// it. If the record insert fails the just-written asset is deleted so it does
// not linger as an orphan; that compensating delete is best-effort and its own
// failure is logged without masking the insert error.
func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event, banner *domain.BannerUpload) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	if banner != nil {
		key, err := s.assets.Put(banner.Content, banner.Filename)
		if err != nil {
			return fmt.Errorf("store banner: %w", err)
		}
		event.BannerKey = &key
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if event.BannerKey != nil {
			if derr := s.assets.Delete(*event.BannerKey); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
				s.logger.ErrorContext(ctx, "compensating banner delete failed", "key", *event.BannerKey, "err", derr)
			}
			event.BannerKey = nil
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.List(ctx)
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// ReplaceBanner swaps the event's banner for a new upload, or keeps the current
// one when no file was sent. The record is updated before the superseded asset
// is deleted: if the update fails the old banner is still intact, and if the
// delete fails afterwards the record already points at the new asset, so the
// worst outcome is an orphaned file, never a dangling reference.
func (s *eventService) ReplaceBanner(ctx context.Context, eventID, oldKey string, banner *domain.BannerUpload) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	oldKey, err := s.resolveBannerKey(ctx, eventID, oldKey)
	if err != nil {
		return nil, err
	}

	if banner == nil {
		// No new upload: keep the current banner. The upsert write keeps the
		// record row alive even if it went missing.
		if oldKey != "" {
			if err := s.eventRepo.SetBanner(ctx, eventID, oldKey); err != nil {
				return nil, fmt.Errorf("update event banner: %w", err)
			}
		}
		return s.eventRepo.GetByID(ctx, eventID)
	}

	newKey, err := s.assets.Put(banner.Content, banner.Filename)
	if err != nil {
		return nil, fmt.Errorf("store banner: %w", err)
	}

	if err := s.eventRepo.SetBanner(ctx, eventID, newKey); err != nil {
		if derr := s.assets.Delete(newKey); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "compensating banner delete failed", "key", newKey, "err", derr)
		}
		return nil, fmt.Errorf("update event banner: %w", err)
	}

	if oldKey != "" && oldKey != newKey {
		if derr := s.assets.Delete(oldKey); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
			// The record already points at the new asset; an undeleted old
			// banner is an orphan, not a correctness failure.
			s.logger.ErrorContext(ctx, "superseded banner not removed", "key", oldKey, "err", derr)
		}
	}

	return s.eventRepo.GetByID(ctx, eventID)
}

// DeleteEvent removes the banner asset first and the record second. If the
// record delete then fails, the event degrades to a broken image rather than
// the asset accumulating as unreferenced storage. A banner that is already
// gone counts as deleted.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, bannerKey string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bannerKey, err := s.resolveBannerKey(ctx, eventID, bannerKey)
	if err != nil {
		return err
	}

	if bannerKey != "" {
		if derr := s.assets.Delete(bannerKey); derr != nil && !errors.Is(derr, domain.ErrNotFound) {
			return fmt.Errorf("delete banner: %w", derr)
		}
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) OpenBanner(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.assets.Get(key)
}

// resolveBannerKey decides which asset key a replace or delete should retire.
// The caller-supplied key wins when present: in a replace-in-place UI the
// client knows which image the user is looking at. When the caller sends
// nothing the stored banner key is read back from the record instead. A
// missing record yields an empty key; the caller's own record operation will
// surface ErrNotFound if that matters.
func (s *eventService) resolveBannerKey(ctx context.Context, eventID, clientKey string) (string, error) {
	if clientKey != "" {
		return clientKey, nil
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get event: %w", err)
	}
	if event.BannerKey == nil {
		return "", nil
	}
	return *event.BannerKey, nil
}
