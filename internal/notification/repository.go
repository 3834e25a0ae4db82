package notification

import "context"

// Repository stores the notification collection as a single replaceable
// document, same contract as the task and user collections.
type Repository interface {
	List(ctx context.Context) ([]*Notification, error)
	ReplaceAll(ctx context.Context, notifications []*Notification) error
}
