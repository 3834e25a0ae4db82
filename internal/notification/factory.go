package notification

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// Factory builds notification records from domain events. Construction is
// pure record assembly: fresh id, current timestamp, unread, template keyed
// by the event. Persisting the record is the caller's job.
type Factory struct {
	now func() time.Time
}

func NewFactory() *Factory {
	return &Factory{now: time.Now}
}

func (f *Factory) build(kind Kind, userID, taskID, title, message string) *Notification {
	return &Notification{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: f.now(),
		Kind:      kind,
		TaskID:    taskID,
	}
}

// TaskAssigned announces a freshly assigned task to its assignee.
func (f *Factory) TaskAssigned(userID, taskID, taskTitle string) *Notification {
	return f.build(KindTaskAssigned, userID, taskID,
		"New task",
		fmt.Sprintf("You have been assigned: %s", taskTitle))
}

// RecurringSpawned announces the successor instance of a completed recurring task.
func (f *Factory) RecurringSpawned(userID, taskID, taskTitle string) *Notification {
	return f.build(KindTaskAssigned, userID, taskID,
		"New recurring task",
		fmt.Sprintf("Recurring task created automatically: %s", taskTitle))
}

// ProposalSubmitted tells the task creator that the officer submitted a new
// proposal or opinion.
func (f *Factory) ProposalSubmitted(userID, taskID, taskTitle string) *Notification {
	return f.build(KindTaskUpdated, userID, taskID,
		"New proposal",
		fmt.Sprintf("A new proposal/opinion was submitted for: %q.", taskTitle))
}

// StatusChanged tells the task creator that the assignee updated progress.
func (f *Factory) StatusChanged(userID, taskID, taskTitle string) *Notification {
	return f.build(KindTaskUpdated, userID, taskID,
		"Progress update",
		fmt.Sprintf("The status of %q was updated.", taskTitle))
}

// ProposalResponse tells the assignee how the manager answered their
// proposal. responseType is the manager response type (AGREE, REJECT, OTHER).
func (f *Factory) ProposalResponse(userID, taskID, taskTitle, responseType string) *Notification {
	var msg string
	switch responseType {
	case "AGREE":
		msg = "The manager AGREED with your proposal."
	case "REJECT":
		msg = "The manager REJECTED your proposal."
	default:
		msg = "The manager gave other directions on your proposal."
	}
	return f.build(KindProposalResponse, userID, taskID,
		"Proposal response",
		fmt.Sprintf("%s Task: %s", msg, taskTitle))
}
