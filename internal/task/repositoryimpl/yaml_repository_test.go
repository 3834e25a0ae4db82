package repositoryimpl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk/internal/task"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

func newTestRepo(t *testing.T, seed []*task.Task) *YAMLRepository {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewYAMLRepository(store, seed)
}

func TestYAMLRepositorySeedsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	seed := []*task.Task{
		{ID: "t1", Title: "Seeded", Status: task.StatusPending},
	}
	repo := newTestRepo(t, seed)

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)

	// The seed is persisted, not just returned.
	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestYAMLRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, nil)

	due := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	in := []*task.Task{{
		ID:         "t1",
		Title:      "Inspect site",
		Proposal:   "Extend by two days.",
		AssigneeID: "u4",
		CreatorID:  "u1",
		Status:     task.StatusInProgress,
		Priority:   task.PriorityHigh,
		Recurring:  task.RecurrenceMonthly,
		DueDate:    due,
		CreatedAt:  due.Add(-48 * time.Hour),
		ManagerResponse: &task.ManagerResponse{
			Type:        task.ResponseAgree,
			Content:     "Approved.",
			RespondedAt: due,
		},
		SuggestedSteps: []string{"survey", "report"},
	}}

	require.NoError(t, repo.ReplaceAll(ctx, in))

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, in[0].Title, out[0].Title)
	assert.Equal(t, in[0].Recurring, out[0].Recurring)
	assert.True(t, out[0].DueDate.Equal(due))
	require.NotNil(t, out[0].ManagerResponse)
	assert.Equal(t, task.ResponseAgree, out[0].ManagerResponse.Type)
	assert.Equal(t, []string{"survey", "report"}, out[0].SuggestedSteps)
}

func TestYAMLRepositoryReplaceAllIsLastWriterWins(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t, nil)

	require.NoError(t, repo.ReplaceAll(ctx, []*task.Task{{ID: "t1"}, {ID: "t2"}}))
	require.NoError(t, repo.ReplaceAll(ctx, []*task.Task{{ID: "t3"}}))

	out, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t3", out[0].ID)
}
