package task

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusOverdue    Status = "OVERDUE"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

type Recurrence string

const (
	RecurrenceNone      Recurrence = "NONE"
	RecurrenceWeekly    Recurrence = "WEEKLY"
	RecurrenceMonthly   Recurrence = "MONTHLY"
	RecurrenceQuarterly Recurrence = "QUARTERLY"
)

type ResponseType string

const (
	ResponseAgree  ResponseType = "AGREE"
	ResponseReject ResponseType = "REJECT"
	ResponseOther  ResponseType = "OTHER"
)

// ManagerResponse is the manager's structured reply to an officer proposal.
// RespondedAt uniquely stamps one response event: a changed timestamp is the
// sole signal that a new response occurred.
type ManagerResponse struct {
	Type        ResponseType `yaml:"type" json:"type"`
	Content     string       `yaml:"content" json:"content,omitempty"`
	RespondedAt time.Time    `yaml:"responded_at" json:"respondedAt"`
}

type Task struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`

	Proposal        string           `yaml:"proposal" json:"proposal,omitempty"`
	IsProposalRead  bool             `yaml:"is_proposal_read" json:"isProposalRead"`
	ManagerResponse *ManagerResponse `yaml:"manager_response" json:"managerResponse,omitempty"`

	DispatchNumber   string `yaml:"dispatch_number" json:"dispatchNumber,omitempty"`
	IssuingAuthority string `yaml:"issuing_authority" json:"issuingAuthority,omitempty"`
	IssueDate        string `yaml:"issue_date" json:"issueDate,omitempty"`

	Recurring Recurrence `yaml:"recurring" json:"recurring"`

	AssigneeID string    `yaml:"assignee_id" json:"assigneeId"`
	CreatorID  string    `yaml:"creator_id" json:"creatorId"`
	Status     Status    `yaml:"status" json:"status"`
	Priority   Priority  `yaml:"priority" json:"priority"`
	DueDate    time.Time `yaml:"due_date" json:"dueDate"`
	CreatedAt  time.Time `yaml:"created_at" json:"createdAt"`

	// SuggestedSteps are produced by an external advisory collaborator and
	// only carried along by the engine.
	SuggestedSteps []string `yaml:"suggested_steps" json:"suggestedSteps,omitempty"`
}

// Clone returns a deep copy so lifecycle mutations never alias stored records.
func (t *Task) Clone() *Task {
	clone := *t
	if t.ManagerResponse != nil {
		resp := *t.ManagerResponse
		clone.ManagerResponse = &resp
	}
	if t.SuggestedSteps != nil {
		clone.SuggestedSteps = append([]string(nil), t.SuggestedSteps...)
	}
	return &clone
}

// DueSoonWindow is how far ahead a due date counts as "due soon".
const DueSoonWindow = 72 * time.Hour

// EffectivelyOverdue reports lateness regardless of whether the status field
// was ever flipped to OVERDUE. Both representations are equivalent for
// filtering and counting: a past-due IN_PROGRESS task is overdue even though
// its status says otherwise.
func (t *Task) EffectivelyOverdue(now time.Time) bool {
	if t.Status == StatusOverdue {
		return true
	}
	if t.Status == StatusCompleted || t.Status == StatusCancelled {
		return false
	}
	return t.DueDate.Before(now)
}

// DueSoon reports whether the due date falls within the warning window.
// Tasks already overdue, completed or cancelled are excluded.
func (t *Task) DueSoon(now time.Time) bool {
	if t.Status == StatusCompleted || t.Status == StatusCancelled || t.Status == StatusOverdue {
		return false
	}
	return !t.DueDate.Before(now) && !t.DueDate.After(now.Add(DueSoonWindow))
}
