package notification

import (
	"context"
	"sort"
)

// Service covers the recipient-side operations: listing and read-flag
// mutation. Creation goes through the Factory and the lifecycle engine.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]*Notification, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var mine []*Notification
	for _, n := range all {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool {
		return mine[i].CreatedAt.After(mine[j].CreatedAt)
	})
	return mine, nil
}

// MarkRead flips the read flag on one notification. An unknown id is a
// silent no-op.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i, n := range all {
		if n.ID == id {
			if n.IsRead {
				return nil
			}
			updated := *n
			updated.IsRead = true
			all[i] = &updated
			return s.repo.ReplaceAll(ctx, all)
		}
	}
	return nil
}

// MarkAllRead flips the read flag on every notification of the user.
func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	all, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i, n := range all {
		if n.UserID == userID && !n.IsRead {
			updated := *n
			updated.IsRead = true
			all[i] = &updated
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.repo.ReplaceAll(ctx, all)
}
