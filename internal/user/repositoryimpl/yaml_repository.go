package repositoryimpl

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskdesk/taskdesk/internal/user"
	"github.com/taskdesk/taskdesk/pkg/cerr"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

const usersPath = "users.yaml"

// YAMLRepository persists the whole user collection as one YAML document.
// When the collection does not exist yet it is seeded with the provided
// default dataset and that dataset is returned.
type YAMLRepository struct {
	storage storage.Storage
	seed    []*user.User
}

func NewYAMLRepository(s storage.Storage, seed []*user.User) *YAMLRepository {
	return &YAMLRepository{storage: s, seed: seed}
}

func (r *YAMLRepository) List(ctx context.Context) ([]*user.User, error) {
	data, err := r.storage.Read(ctx, usersPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if err := r.ReplaceAll(ctx, r.seed); err != nil {
				return nil, err
			}
			return r.seed, nil
		}
		return nil, cerr.WrapStorageReadError("users", err)
	}
	var users []*user.User
	if err := yaml.Unmarshal(data, &users); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal users: %w", err))
	}
	return users, nil
}

func (r *YAMLRepository) ReplaceAll(ctx context.Context, users []*user.User) error {
	data, err := yaml.Marshal(users)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal users: %w", err))
	}
	if err := r.storage.Write(ctx, usersPath, data); err != nil {
		return cerr.WrapStorageWriteError("users", err)
	}
	return nil
}
