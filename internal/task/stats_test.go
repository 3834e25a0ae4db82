package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/taskdesk/taskdesk/internal/user"
)

func TestEffectivelyOverdue(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"past due in progress", Task{Status: StatusInProgress, DueDate: past}, true},
		{"past due pending", Task{Status: StatusPending, DueDate: past}, true},
		{"past due completed", Task{Status: StatusCompleted, DueDate: past}, false},
		{"past due cancelled", Task{Status: StatusCancelled, DueDate: past}, false},
		{"future due pending", Task{Status: StatusPending, DueDate: future}, false},
		{"status overdue with future due date", Task{Status: StatusOverdue, DueDate: future}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.EffectivelyOverdue(now))
		})
	}
}

func TestDueSoon(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{"due in two days", Task{Status: StatusPending, DueDate: now.Add(48 * time.Hour)}, true},
		{"due exactly at the window edge", Task{Status: StatusPending, DueDate: now.Add(DueSoonWindow)}, true},
		{"due past the window", Task{Status: StatusPending, DueDate: now.Add(DueSoonWindow + time.Second)}, false},
		{"already past due", Task{Status: StatusPending, DueDate: now.Add(-time.Second)}, false},
		{"due now", Task{Status: StatusPending, DueDate: now}, true},
		{"completed", Task{Status: StatusCompleted, DueDate: now.Add(time.Hour)}, false},
		{"status overdue", Task{Status: StatusOverdue, DueDate: now.Add(time.Hour)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.DueSoon(now))
		})
	}
}

func TestComputeDashboard(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		{Status: StatusPending, DueDate: now.Add(48 * time.Hour)},
		{Status: StatusInProgress, DueDate: now.Add(-time.Hour)},
		{Status: StatusCompleted, DueDate: now.Add(-time.Hour)},
		{Status: StatusCancelled, DueDate: now.Add(-time.Hour)},
		{Status: StatusOverdue, DueDate: now.Add(time.Hour)},
	}

	stats := ComputeDashboard(tasks, now)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.InProgress)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Overdue)
	assert.Equal(t, 1, stats.DueSoon)
}

func TestComputeDashboardMatchesPredicates(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	tasks := []*Task{
		{Status: StatusPending, DueDate: now.Add(24 * time.Hour)},
		{Status: StatusInProgress, DueDate: now.Add(-24 * time.Hour)},
		{Status: StatusOverdue, DueDate: now.Add(96 * time.Hour)},
		{Status: StatusPending, DueDate: now.Add(96 * time.Hour)},
	}

	stats := ComputeDashboard(tasks, now)
	var overdue, dueSoon int
	for _, tk := range tasks {
		if tk.EffectivelyOverdue(now) {
			overdue++
		}
		if tk.DueSoon(now) {
			dueSoon++
		}
	}
	assert.Equal(t, overdue, stats.Overdue)
	assert.Equal(t, dueSoon, stats.DueSoon)
}

func TestComputeOfficerStats(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	users := []*user.User{
		{ID: "u1", FullName: "Manager", Role: user.RoleManager},
		{ID: "u4", FullName: "Officer A", Role: user.RoleOfficer},
		{ID: "u5", FullName: "Officer B", Role: user.RoleOfficer},
	}
	tasks := []*Task{
		{AssigneeID: "u4", Status: StatusCompleted, DueDate: now.Add(time.Hour)},
		{AssigneeID: "u4", Status: StatusInProgress, DueDate: now.Add(-time.Hour)},
		{AssigneeID: "u4", Status: StatusCompleted, DueDate: now.Add(time.Hour)},
		{AssigneeID: "u4", Status: StatusPending, DueDate: now.Add(time.Hour)},
		{AssigneeID: "u1", Status: StatusPending, DueDate: now.Add(time.Hour)},
	}

	rows := ComputeOfficerStats(tasks, users, now)
	assert.Len(t, rows, 2)

	assert.Equal(t, "u4", rows[0].UserID)
	assert.Equal(t, 4, rows[0].Total)
	assert.Equal(t, 2, rows[0].Completed)
	assert.Equal(t, 1, rows[0].InProgress)
	assert.Equal(t, 1, rows[0].Overdue)
	assert.Equal(t, 50, rows[0].CompletionRate)

	assert.Equal(t, "u5", rows[1].UserID)
	assert.Equal(t, 0, rows[1].Total)
	assert.Equal(t, 0, rows[1].CompletionRate)
}

func TestPendingProposals(t *testing.T) {
	tasks := []*Task{
		{ID: "t1", Proposal: "Needs review."},
		{ID: "t2", Proposal: "Already seen.", IsProposalRead: true},
		{ID: "t3"},
		{ID: "t4", Proposal: "   "},
	}

	pending := PendingProposals(tasks)
	assert.Len(t, pending, 1)
	assert.Equal(t, "t1", pending[0].ID)
}
