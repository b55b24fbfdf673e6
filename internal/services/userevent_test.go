package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"volunteernetwork/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserEventRepo is an in-memory UserEventRepository for tests.
type fakeUserEventRepo struct {
	byID   map[string]*domain.UserEvent
	nextID int
}

func newFakeUserEventRepo() *fakeUserEventRepo {
	return &fakeUserEventRepo{
		byID:   make(map[string]*domain.UserEvent),
		nextID: 1,
	}
}

func (f *fakeUserEventRepo) Create(ctx context.Context, ue *domain.UserEvent) error {
	ue.ID = fmt.Sprintf("ue-%d", f.nextID)
	f.nextID++
	f.byID[ue.ID] = ue
	return nil
}

func (f *fakeUserEventRepo) List(ctx context.Context) ([]*domain.UserEvent, error) {
	out := make([]*domain.UserEvent, 0, len(f.byID))
	for _, ue := range f.byID {
		out = append(out, ue)
	}
	return out, nil
}

func (f *fakeUserEventRepo) GetByID(ctx context.Context, id string) (*domain.UserEvent, error) {
	if ue, ok := f.byID[id]; ok {
		return ue, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserEventRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestUserEventService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserEventRepo()
	svc := NewUserEventService(repo, 2*time.Second)

	ue := domain.NewUserEvent("A@X.Com", "ev-1", "Beach Cleanup", "2024-05-01", time.Now())
	require.NoError(t, svc.Create(ctx, ue))
	require.NotEmpty(t, ue.ID)
	assert.Equal(t, "a@x.com", ue.UserEmail)

	// No uniqueness: the same association can be created twice.
	dup := domain.NewUserEvent("a@x.com", "ev-1", "Beach Cleanup", "2024-05-01", time.Now())
	require.NoError(t, svc.Create(ctx, dup))

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := svc.Get(ctx, ue.ID)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", got.EventID)

	require.NoError(t, svc.Delete(ctx, ue.ID))
	_, err = svc.Get(ctx, ue.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, ue.ID), domain.ErrNotFound)
}
