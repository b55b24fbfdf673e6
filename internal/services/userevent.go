package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"volunteernetwork/internal/domain"
)

type userEventService struct {
	userEventRepo  domain.UserEventRepository
	contextTimeout time.Duration
}

func NewUserEventService(userEventRepo domain.UserEventRepository, timeout time.Duration) domain.UserEventService {
	return &userEventService{
		userEventRepo:  userEventRepo,
		contextTimeout: timeout,
	}
}

func (s *userEventService) Create(ctx context.Context, ue *domain.UserEvent) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ue.UserEmail = strings.TrimSpace(strings.ToLower(ue.UserEmail))
	ue.CreatedAt = time.Now()

	if err := s.userEventRepo.Create(ctx, ue); err != nil {
		return fmt.Errorf("create user event: %w", err)
	}
	return nil
}

func (s *userEventService) List(ctx context.Context) ([]*domain.UserEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.userEventRepo.List(ctx)
}

func (s *userEventService) Get(ctx context.Context, id string) (*domain.UserEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ue, err := s.userEventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user event: %w", err)
	}
	return ue, nil
}

func (s *userEventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.userEventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete user event: %w", err)
	}
	return nil
}
