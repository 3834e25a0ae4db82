package repositoryimpl

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/pkg/cerr"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

const tasksPath = "tasks.yaml"

// YAMLRepository persists the whole task collection as one YAML document,
// seeding the default dataset on first read of an empty store.
type YAMLRepository struct {
	storage storage.Storage
	seed    []*task.Task
}

func NewYAMLRepository(s storage.Storage, seed []*task.Task) *YAMLRepository {
	return &YAMLRepository{storage: s, seed: seed}
}

func (r *YAMLRepository) List(ctx context.Context) ([]*task.Task, error) {
	data, err := r.storage.Read(ctx, tasksPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if err := r.ReplaceAll(ctx, r.seed); err != nil {
				return nil, err
			}
			return r.seed, nil
		}
		return nil, cerr.WrapStorageReadError("tasks", err)
	}
	var tasks []*task.Task
	if err := yaml.Unmarshal(data, &tasks); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal tasks: %w", err))
	}
	return tasks, nil
}

func (r *YAMLRepository) ReplaceAll(ctx context.Context, tasks []*task.Task) error {
	data, err := yaml.Marshal(tasks)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal tasks: %w", err))
	}
	if err := r.storage.Write(ctx, tasksPath, data); err != nil {
		return cerr.WrapStorageWriteError("tasks", err)
	}
	return nil
}
