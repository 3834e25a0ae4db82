package notification

import "time"

type Kind string

const (
	KindTaskAssigned     Kind = "TASK_ASSIGNED"
	KindTaskUpdated      Kind = "TASK_UPDATED"
	KindDeadlineWarning  Kind = "DEADLINE_WARNING"
	KindSystem           Kind = "SYSTEM"
	KindProposalResponse Kind = "PROPOSAL_RESPONSE"
)

// Notification is created only by the Factory as a side effect of a task
// lifecycle operation. After creation the only legal mutation is flipping
// IsRead; the core never deletes notifications, so a deleted task may leave
// orphaned TaskID references behind.
type Notification struct {
	ID        string    `yaml:"id" json:"id"`
	UserID    string    `yaml:"user_id" json:"userId"`
	Title     string    `yaml:"title" json:"title"`
	Message   string    `yaml:"message" json:"message"`
	IsRead    bool      `yaml:"is_read" json:"isRead"`
	CreatedAt time.Time `yaml:"created_at" json:"createdAt"`
	Kind      Kind      `yaml:"type" json:"type"`
	TaskID    string    `yaml:"task_id" json:"taskId,omitempty"`
}
