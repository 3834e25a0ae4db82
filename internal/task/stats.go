package task

import (
	"strings"
	"time"

	"github.com/taskdesk/taskdesk/internal/user"
)

// DashboardStats is a read-only projection over the task collection.
type DashboardStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
	DueSoon    int `json:"dueSoon"`
}

// ComputeDashboard classifies tasks with the shared derived-status
// predicates. Every overdue/due-soon count in the system must go through
// EffectivelyOverdue and DueSoon; diverging re-implementations at call sites
// are a defect.
func ComputeDashboard(tasks []*Task, now time.Time) DashboardStats {
	stats := DashboardStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case StatusPending:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusCompleted:
			stats.Completed++
		}
		if t.EffectivelyOverdue(now) {
			stats.Overdue++
		}
		if t.DueSoon(now) {
			stats.DueSoon++
		}
	}
	return stats
}

// OfficerStats summarizes one officer's workload for the manager dashboard.
type OfficerStats struct {
	UserID         string `json:"userId"`
	FullName       string `json:"fullName"`
	Total          int    `json:"total"`
	Completed      int    `json:"completed"`
	InProgress     int    `json:"inProgress"`
	Overdue        int    `json:"overdue"`
	CompletionRate int    `json:"completionRate"`
}

// ComputeOfficerStats builds one row per officer over their assigned tasks,
// using the same predicates as ComputeDashboard.
func ComputeOfficerStats(tasks []*Task, officers []*user.User, now time.Time) []OfficerStats {
	rows := make([]OfficerStats, 0, len(officers))
	for _, officer := range officers {
		if officer.Role != user.RoleOfficer {
			continue
		}
		row := OfficerStats{UserID: officer.ID, FullName: officer.FullName}
		for _, t := range tasks {
			if t.AssigneeID != officer.ID {
				continue
			}
			row.Total++
			switch t.Status {
			case StatusCompleted:
				row.Completed++
			case StatusInProgress:
				row.InProgress++
			}
			if t.EffectivelyOverdue(now) {
				row.Overdue++
			}
		}
		if row.Total > 0 {
			row.CompletionRate = row.Completed * 100 / row.Total
		}
		rows = append(rows, row)
	}
	return rows
}

// FilterAssignee returns the tasks assigned to the given user.
func FilterAssignee(tasks []*Task, userID string) []*Task {
	var out []*Task
	for _, t := range tasks {
		if t.AssigneeID == userID {
			out = append(out, t)
		}
	}
	return out
}

// PendingProposals returns tasks carrying an unread proposal, the manager's
// review queue.
func PendingProposals(tasks []*Task) []*Task {
	var out []*Task
	for _, t := range tasks {
		if strings.TrimSpace(t.Proposal) != "" && !t.IsProposalRead {
			out = append(out, t)
		}
	}
	return out
}
