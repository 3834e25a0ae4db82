package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	notifications []*Notification
}

func (r *memRepo) List(ctx context.Context) ([]*Notification, error) {
	return r.notifications, nil
}

func (r *memRepo) ReplaceAll(ctx context.Context, notifications []*Notification) error {
	r.notifications = notifications
	return nil
}

func TestServiceListForUserSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	repo := &memRepo{notifications: []*Notification{
		{ID: "n1", UserID: "u4", CreatedAt: base},
		{ID: "n2", UserID: "u5", CreatedAt: base.Add(time.Hour)},
		{ID: "n3", UserID: "u4", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "n4", UserID: "u4", CreatedAt: base.Add(time.Hour)},
	}}
	s := NewService(repo)

	mine, err := s.ListForUser(context.Background(), "u4")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "n3", mine[0].ID)
	assert.Equal(t, "n4", mine[1].ID)
	assert.Equal(t, "n1", mine[2].ID)
}

func TestServiceMarkRead(t *testing.T) {
	repo := &memRepo{notifications: []*Notification{
		{ID: "n1", UserID: "u4"},
		{ID: "n2", UserID: "u4"},
	}}
	s := NewService(repo)

	require.NoError(t, s.MarkRead(context.Background(), "n1"))
	assert.True(t, repo.notifications[0].IsRead)
	assert.False(t, repo.notifications[1].IsRead)

	// Unknown id is a no-op.
	require.NoError(t, s.MarkRead(context.Background(), "missing"))
}

func TestServiceMarkAllRead(t *testing.T) {
	repo := &memRepo{notifications: []*Notification{
		{ID: "n1", UserID: "u4"},
		{ID: "n2", UserID: "u5"},
		{ID: "n3", UserID: "u4", IsRead: true},
	}}
	s := NewService(repo)

	require.NoError(t, s.MarkAllRead(context.Background(), "u4"))
	assert.True(t, repo.notifications[0].IsRead)
	assert.False(t, repo.notifications[1].IsRead)
	assert.True(t, repo.notifications[2].IsRead)
}
