package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFactoryTaskAssigned(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	f := &Factory{now: func() time.Time { return now }}

	n := f.TaskAssigned("u4", "t1", "Inspect site")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "u4", n.UserID)
	assert.Equal(t, "t1", n.TaskID)
	assert.Equal(t, KindTaskAssigned, n.Kind)
	assert.Equal(t, "New task", n.Title)
	assert.Equal(t, "You have been assigned: Inspect site", n.Message)
	assert.False(t, n.IsRead)
	assert.Equal(t, now, n.CreatedAt)
}

func TestFactoryFreshIDs(t *testing.T) {
	f := NewFactory()
	a := f.TaskAssigned("u4", "t1", "A")
	b := f.TaskAssigned("u4", "t1", "A")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFactoryRecurringSpawned(t *testing.T) {
	f := NewFactory()
	n := f.RecurringSpawned("u4", "t2", "Monthly report")
	assert.Equal(t, KindTaskAssigned, n.Kind)
	assert.Equal(t, "New recurring task", n.Title)
	assert.Contains(t, n.Message, "Monthly report")
}

func TestFactoryProposalSubmitted(t *testing.T) {
	f := NewFactory()
	n := f.ProposalSubmitted("u1", "t1", "Inspect site")
	assert.Equal(t, KindTaskUpdated, n.Kind)
	assert.Equal(t, "New proposal", n.Title)
	assert.Contains(t, n.Message, `"Inspect site"`)
}

func TestFactoryStatusChanged(t *testing.T) {
	f := NewFactory()
	n := f.StatusChanged("u1", "t1", "Inspect site")
	assert.Equal(t, KindTaskUpdated, n.Kind)
	assert.Equal(t, "Progress update", n.Title)
}

func TestFactoryProposalResponse(t *testing.T) {
	tests := []struct {
		name         string
		responseType string
		fragment     string
	}{
		{"agree", "AGREE", "AGREED"},
		{"reject", "REJECT", "REJECTED"},
		{"other", "OTHER", "other directions"},
		{"unknown falls back to other", "SOMETHING", "other directions"},
	}
	f := NewFactory()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := f.ProposalResponse("u4", "t1", "Inspect site", tt.responseType)
			assert.Equal(t, KindProposalResponse, n.Kind)
			assert.Equal(t, "Proposal response", n.Title)
			assert.Contains(t, n.Message, tt.fragment)
			assert.Contains(t, n.Message, "Inspect site")
		})
	}
}
