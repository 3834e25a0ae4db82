package pushnotification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskdesk/taskdesk/internal/eventbus"
	"github.com/taskdesk/taskdesk/internal/notification"
)

// Dispatcher bridges in-app notifications to browser push. It mirrors every
// stored notification record to the recipient's registered subscriptions.
type Dispatcher struct {
	eventBus *eventbus.Bus
	repo     notification.Repository
	sender   *Sender
}

func NewDispatcher(eventBus *eventbus.Bus, repo notification.Repository, sender *Sender) *Dispatcher {
	return &Dispatcher{
		eventBus: eventBus,
		repo:     repo,
		sender:   sender,
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	subID, ch := d.eventBus.Subscribe(256)
	defer d.eventBus.Unsubscribe(subID)

	slog.Info("push notification dispatcher started")
	for {
		select {
		case <-ctx.Done():
			slog.Info("push notification dispatcher stopped")
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if event.Type == eventbus.TypeNotificationCreated {
				d.handleNotificationCreated(ctx, event)
			}
		}
	}
}

func (d *Dispatcher) handleNotificationCreated(ctx context.Context, event *eventbus.Event) {
	all, err := d.repo.List(ctx)
	if err != nil {
		slog.Error("push dispatcher: failed to list notifications", "error", err)
		return
	}

	var record *notification.Notification
	for _, n := range all {
		if n.ID == event.ResourceID {
			record = n
			break
		}
	}
	if record == nil {
		slog.Warn("push dispatcher: notification not found", "id", event.ResourceID)
		return
	}

	var url string
	if record.TaskID != "" {
		url = fmt.Sprintf("/tasks/%s", record.TaskID)
	}

	d.sender.SendToUser(ctx, record.UserID, &NotificationPayload{
		Title: record.Title,
		Body:  record.Message,
		URL:   url,
		Tag:   record.ID,
	})
}
