package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteernetwork/internal/domain"
)

type volunteerService struct {
	volunteerRepo  domain.VolunteerRepository
	contextTimeout time.Duration
}

func NewVolunteerService(volunteerRepo domain.VolunteerRepository, timeout time.Duration) domain.VolunteerService {
	return &volunteerService{
		volunteerRepo:  volunteerRepo,
		contextTimeout: timeout,
	}
}

// Register creates a volunteer record. Emails are normalized before the
// uniqueness check; the database unique constraint backstops the pre-check
// under concurrent registrations of the same email.
func (s *volunteerService) Register(ctx context.Context, v *domain.Volunteer) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v.Email = strings.TrimSpace(strings.ToLower(v.Email))
	if v.Email == "" {
		return domain.ErrInvalidInput
	}
	v.CreatedAt = time.Now()

	_, err := s.volunteerRepo.GetByEmail(ctx, v.Email)
	if err == nil {
		return domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check email: %w", err)
	}

	if err := s.volunteerRepo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create volunteer: %w", err)
	}
	return nil
}

func (s *volunteerService) List(ctx context.Context) ([]*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.volunteerRepo.List(ctx)
}

func (s *volunteerService) Get(ctx context.Context, id string) (*domain.Volunteer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	v, err := s.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get volunteer: %w", err)
	}
	return v, nil
}

func (s *volunteerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.volunteerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete volunteer: %w", err)
	}
	return nil
}
