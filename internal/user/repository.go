package user

import "context"

// Repository stores the user collection as a single replaceable document.
// Reads return the whole collection; writes overwrite it.
type Repository interface {
	List(ctx context.Context) ([]*User, error)
	ReplaceAll(ctx context.Context, users []*User) error
}
