package task

import "context"

// Repository stores the task collection as a single replaceable document.
// Every write replaces the whole collection; across concurrent clients the
// last writer wins. That is the documented contract, not an oversight — the
// interface is deliberately narrow so per-record transactional writes can be
// swapped in without touching lifecycle logic.
type Repository interface {
	List(ctx context.Context) ([]*Task, error)
	ReplaceAll(ctx context.Context, tasks []*Task) error
}
