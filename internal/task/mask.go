package task

import (
	"github.com/taskdesk/taskdesk/internal/user"

	"github.com/taskdesk/taskdesk/pkg/cerr"
)

// ApplyRoleMask restricts which fields of the candidate record the actor may
// persist. The original client relied on role-gated form fields; the gate
// lives server-side here so a hand-crafted request cannot widen an officer's
// write surface. Internal callers (CLI, tests) pass a nil actor and are
// trusted.
//
// Officers may only touch the proposal and status of tasks assigned to them.
// Managers may edit everything except authoring a proposal on a task
// assigned to someone else; proposals belong to their assignee.
func ApplyRoleMask(actor *user.User, existing, incoming *Task) (*Task, error) {
	if actor == nil {
		return incoming, nil
	}

	if actor.Role == user.RoleOfficer {
		if existing == nil {
			return nil, cerr.NewError(cerr.PermissionDenied, "officers cannot create tasks", nil)
		}
		if existing.AssigneeID != actor.ID {
			return nil, cerr.NewError(cerr.PermissionDenied, "task is not assigned to you", nil)
		}
		masked := existing.Clone()
		masked.Proposal = incoming.Proposal
		masked.Status = incoming.Status
		if masked.Proposal != existing.Proposal {
			masked.IsProposalRead = false
		}
		return masked, nil
	}

	masked := incoming.Clone()
	if existing != nil && existing.AssigneeID != actor.ID && incoming.Proposal != existing.Proposal {
		masked.Proposal = existing.Proposal
		masked.IsProposalRead = existing.IsProposalRead
	}
	return masked, nil
}
