package repositoryimpl

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskdesk/taskdesk/internal/notification"
	"github.com/taskdesk/taskdesk/pkg/cerr"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

const notificationsPath = "notifications.yaml"

type YAMLRepository struct {
	storage storage.Storage
	seed    []*notification.Notification
}

func NewYAMLRepository(s storage.Storage, seed []*notification.Notification) *YAMLRepository {
	return &YAMLRepository{storage: s, seed: seed}
}

func (r *YAMLRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	data, err := r.storage.Read(ctx, notificationsPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if err := r.ReplaceAll(ctx, r.seed); err != nil {
				return nil, err
			}
			return r.seed, nil
		}
		return nil, cerr.WrapStorageReadError("notifications", err)
	}
	var notifications []*notification.Notification
	if err := yaml.Unmarshal(data, &notifications); err != nil {
		return nil, cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to unmarshal notifications: %w", err))
	}
	return notifications, nil
}

func (r *YAMLRepository) ReplaceAll(ctx context.Context, notifications []*notification.Notification) error {
	data, err := yaml.Marshal(notifications)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal notifications: %w", err))
	}
	if err := r.storage.Write(ctx, notificationsPath, data); err != nil {
		return cerr.WrapStorageWriteError("notifications", err)
	}
	return nil
}
