package task

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/taskdesk/taskdesk/internal/eventbus"
	"github.com/taskdesk/taskdesk/internal/notification"
)

// Engine owns all writes to the task collection. Every save is a
// read-modify-write of the whole collection: load, diff against the stored
// record, spawn a recurring successor if the completion warrants one, queue
// the notifications the diff implies, persist, and only then write the
// queued notifications. Writing notifications after the task write keeps the
// failure window small: a failed task write leaves no notification pointing
// at state that was never persisted.
type Engine struct {
	tasks         Repository
	notifications notification.Repository
	factory       *notification.Factory
	bus           *eventbus.Bus
	now           func() time.Time
}

func NewEngine(tasks Repository, notifications notification.Repository, factory *notification.Factory, bus *eventbus.Bus) *Engine {
	return &Engine{
		tasks:         tasks,
		notifications: notifications,
		factory:       factory,
		bus:           bus,
		now:           time.Now,
	}
}

// Save persists the candidate record, which may be a brand-new task or an
// edit of a stored one, and synthesizes every notification the change
// implies. It returns the saved task.
func (e *Engine) Save(ctx context.Context, incoming *Task) (*Task, error) {
	all, err := e.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	var existing *Task
	for _, t := range all {
		if t.ID == incoming.ID {
			existing = t
			break
		}
	}

	// A proposal on a self-assigned task was authored by its own reader.
	if incoming.Proposal != "" && incoming.AssigneeID == incoming.CreatorID {
		incoming.IsProposalRead = true
	}

	var queued []*notification.Notification

	// Completion of a recurring task spawns the next instance up front so it
	// lands at the head of the collection.
	if existing != nil &&
		existing.Status != StatusCompleted &&
		incoming.Status == StatusCompleted &&
		incoming.Recurring != RecurrenceNone && incoming.Recurring != "" {
		spawn := incoming.Clone()
		spawn.ID = ulid.Make().String()
		spawn.Status = StatusPending
		spawn.DueDate = NextDueDate(incoming.DueDate, incoming.Recurring)
		spawn.CreatedAt = e.now()
		all = append([]*Task{spawn}, all...)
		queued = append(queued, e.factory.RecurringSpawned(incoming.AssigneeID, spawn.ID, incoming.Title))
	}

	if existing == nil {
		all = append([]*Task{incoming}, all...)
		queued = append(queued, e.factory.TaskAssigned(incoming.AssigneeID, incoming.ID, incoming.Title))
	} else {
		// Three independent events, at most one notification each per save,
		// in this priority order.
		if resp := incoming.ManagerResponse; resp != nil &&
			(existing.ManagerResponse == nil || !existing.ManagerResponse.RespondedAt.Equal(resp.RespondedAt)) {
			queued = append(queued, e.factory.ProposalResponse(incoming.AssigneeID, incoming.ID, incoming.Title, string(resp.Type)))
		}

		proposalChanged := strings.TrimSpace(incoming.Proposal) != "" && incoming.Proposal != existing.Proposal
		if incoming.AssigneeID != incoming.CreatorID {
			if proposalChanged {
				queued = append(queued, e.factory.ProposalSubmitted(incoming.CreatorID, incoming.ID, incoming.Title))
			} else if incoming.Status != existing.Status {
				queued = append(queued, e.factory.StatusChanged(incoming.CreatorID, incoming.ID, incoming.Title))
			}
		}

		for i, t := range all {
			if t.ID == incoming.ID {
				all[i] = incoming
				break
			}
		}
	}

	if err := e.tasks.ReplaceAll(ctx, all); err != nil {
		return nil, err
	}
	if err := e.appendNotifications(ctx, queued); err != nil {
		return nil, err
	}

	e.bus.PublishNew(eventbus.TypeTaskSaved, incoming.ID, "", map[string]string{
		"assignee_id": incoming.AssigneeID,
		"creator_id":  incoming.CreatorID,
		"status":      string(incoming.Status),
	})
	return incoming, nil
}

// Delete removes the task and persists the remainder. An absent id is a
// silent no-op. Notifications referencing the task are left untouched.
func (e *Engine) Delete(ctx context.Context, id string) error {
	all, err := e.tasks.List(ctx)
	if err != nil {
		return err
	}
	remaining := make([]*Task, 0, len(all))
	for _, t := range all {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	if len(remaining) == len(all) {
		return nil
	}
	if err := e.tasks.ReplaceAll(ctx, remaining); err != nil {
		return err
	}
	e.bus.PublishNew(eventbus.TypeTaskDeleted, id, "", nil)
	return nil
}

// MarkProposalViewed records that the manager has seen the current proposal.
// It is a convenience composition over Save, not a distinct primitive.
func (e *Engine) MarkProposalViewed(ctx context.Context, t *Task) (*Task, error) {
	viewed := t.Clone()
	viewed.IsProposalRead = true
	return e.Save(ctx, viewed)
}

func (e *Engine) appendNotifications(ctx context.Context, queued []*notification.Notification) error {
	if len(queued) == 0 {
		return nil
	}
	all, err := e.notifications.List(ctx)
	if err != nil {
		return err
	}
	if err := e.notifications.ReplaceAll(ctx, append(all, queued...)); err != nil {
		return err
	}
	for _, n := range queued {
		e.bus.PublishNew(eventbus.TypeNotificationCreated, n.ID, "", map[string]string{
			"user_id": n.UserID,
			"task_id": n.TaskID,
		})
	}
	return nil
}
