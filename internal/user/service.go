package user

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/taskdesk/taskdesk/pkg/cerr"
)

const (
	// DefaultPassword is assigned to accounts created by a manager; the
	// owner is forced to change it on first login.
	DefaultPassword = "123123"

	minPasswordLength = 6
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, cerr.NewError(cerr.NotFound, "user not found", nil)
}

// Login compares the stored password verbatim. Plaintext comparison is kept
// for compatibility with existing account records; replacing it with a salted
// hash only touches this method and the seed dataset.
func (s *Service) Login(ctx context.Context, username, password string) (*User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u, nil
		}
	}
	return nil, cerr.NewError(cerr.Unauthenticated, "invalid username or password", nil)
}

// Create rejects duplicate usernames before any write happens.
func (s *Service) Create(ctx context.Context, u *User) (*User, error) {
	if u.Username == "" {
		return nil, cerr.NewError(cerr.InvalidArgument, "username is required", nil)
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range users {
		if existing.Username == u.Username {
			return nil, cerr.NewError(cerr.AlreadyExists, "username already exists", nil)
		}
	}
	if u.ID == "" {
		u.ID = ulid.Make().String()
	}
	if u.Password == "" {
		u.Password = DefaultPassword
		u.IsFirstLogin = true
	}
	if err := s.repo.ReplaceAll(ctx, append(users, u)); err != nil {
		return nil, err
	}
	return u, nil
}

// Update overwrites the stored record with the same id. An unknown id is a
// silent no-op, matching the store's not-found semantics.
func (s *Service) Update(ctx context.Context, u *User) error {
	users, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	for i, existing := range users {
		if existing.ID == u.ID {
			if u.Password == "" {
				u.Password = existing.Password
			}
			users[i] = u
			return s.repo.ReplaceAll(ctx, users)
		}
	}
	return nil
}

// ChangePassword validates the new password before any state is mutated and
// clears the first-login flag on success.
func (s *Service) ChangePassword(ctx context.Context, userID, newPassword, confirm string) (*User, error) {
	if newPassword != confirm {
		return nil, cerr.NewError(cerr.InvalidArgument, "passwords do not match", nil)
	}
	if len(newPassword) < minPasswordLength {
		return nil, cerr.NewError(cerr.InvalidArgument, "password must be at least 6 characters", nil)
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		if u.ID == userID {
			updated := *u
			updated.Password = newPassword
			updated.IsFirstLogin = false
			users[i] = &updated
			if err := s.repo.ReplaceAll(ctx, users); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, cerr.NewError(cerr.NotFound, "user not found", nil)
}

// Delete removes the account. Tasks referencing the user keep their dangling
// ids; the UI renders those as unknown.
func (s *Service) Delete(ctx context.Context, id string) error {
	users, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	remaining := make([]*User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			remaining = append(remaining, u)
		}
	}
	if len(remaining) == len(users) {
		return nil
	}
	return s.repo.ReplaceAll(ctx, remaining)
}
