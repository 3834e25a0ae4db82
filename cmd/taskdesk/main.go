// Command taskdesk is a maintenance CLI that operates directly on the record
// store, sharing the lifecycle engine with the server so direct edits still
// produce notifications and recurring successors.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/oklog/ulid/v2"

	"github.com/taskdesk/taskdesk/internal/eventbus"
	"github.com/taskdesk/taskdesk/internal/notification"
	notificationrepo "github.com/taskdesk/taskdesk/internal/notification/repositoryimpl"
	"github.com/taskdesk/taskdesk/internal/seed"
	"github.com/taskdesk/taskdesk/internal/task"
	taskrepo "github.com/taskdesk/taskdesk/internal/task/repositoryimpl"
	userrepo "github.com/taskdesk/taskdesk/internal/user/repositoryimpl"
	"github.com/taskdesk/taskdesk/pkg/storage"
)

var (
	app     = kingpin.New("taskdesk", "Work order tracking for managers and officers")
	baseDir = app.Flag("data-dir", "Record store directory").Default(".taskdesk/data").String()

	listCmd      = app.Command("list", "List tasks")
	listAssignee = listCmd.Flag("assignee", "Filter by assignee user ID").String()

	showCmd = app.Command("show", "Show task details")
	showID  = showCmd.Arg("id", "Task ID").Required().String()

	createCmd      = app.Command("create", "Create a new task")
	createTitle    = createCmd.Arg("title", "Task title").Required().String()
	createAssignee = createCmd.Flag("assignee", "Assignee user ID").Required().String()
	createCreator  = createCmd.Flag("creator", "Creator user ID").Required().String()
	createPriority = createCmd.Flag("priority", "Priority (LOW, MEDIUM, HIGH, URGENT)").Default("MEDIUM").String()
	createDue      = createCmd.Flag("due", "Due date (YYYY-MM-DD)").Required().String()
	createRecur    = createCmd.Flag("recurring", "Recurrence (NONE, WEEKLY, MONTHLY, QUARTERLY)").Default("NONE").String()

	completeCmd = app.Command("complete", "Mark a task completed")
	completeID  = completeCmd.Arg("id", "Task ID").Required().String()

	deleteCmd = app.Command("delete", "Delete a task")
	deleteID  = deleteCmd.Arg("id", "Task ID").Required().String()

	seedCmd = app.Command("seed", "Write the initial dataset into an empty store")
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx := context.Background()
	store, err := storage.NewLocalStorage(*baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	tasks := taskrepo.NewYAMLRepository(store, seed.DefaultTasks(now))
	notifications := notificationrepo.NewYAMLRepository(store, seed.DefaultNotifications(now))
	engine := task.NewEngine(tasks, notifications, notification.NewFactory(), eventbus.New())

	switch command {
	case listCmd.FullCommand():
		err = handleList(ctx, tasks, *listAssignee)
	case showCmd.FullCommand():
		err = handleShow(ctx, tasks, *showID)
	case createCmd.FullCommand():
		err = handleCreate(ctx, engine)
	case completeCmd.FullCommand():
		err = handleComplete(ctx, tasks, engine, *completeID)
	case deleteCmd.FullCommand():
		err = engine.Delete(ctx, *deleteID)
	case seedCmd.FullCommand():
		err = handleSeed(ctx, store, tasks, notifications)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func handleList(ctx context.Context, tasks task.Repository, assignee string) error {
	all, err := tasks.List(ctx)
	if err != nil {
		return err
	}
	if assignee != "" {
		all = task.FilterAssignee(all, assignee)
	}
	now := time.Now()
	for _, t := range all {
		printStatus(t, now)
		fmt.Printf("  %s  %s  due %s  [%s]\n", t.ID, t.Title, t.DueDate.Format("2006-01-02"), t.Priority)
	}
	stats := task.ComputeDashboard(all, now)
	fmt.Printf("\n%d tasks: %d pending, %d in progress, %d completed, %d overdue, %d due soon\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Completed, stats.Overdue, stats.DueSoon)
	return nil
}

func printStatus(t *task.Task, now time.Time) {
	switch {
	case t.Status == task.StatusCompleted:
		green.Printf("%-12s", t.Status)
	case t.EffectivelyOverdue(now):
		red.Printf("%-12s", "OVERDUE")
	case t.DueSoon(now):
		yellow.Printf("%-12s", t.Status)
	default:
		fmt.Printf("%-12s", t.Status)
	}
}

func handleShow(ctx context.Context, tasks task.Repository, id string) error {
	all, err := tasks.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range all {
		if t.ID != id {
			continue
		}
		fmt.Printf("ID:        %s\nTitle:     %s\nStatus:    %s\nPriority:  %s\nAssignee:  %s\nCreator:   %s\nDue:       %s\nRecurring: %s\n",
			t.ID, t.Title, t.Status, t.Priority, t.AssigneeID, t.CreatorID, t.DueDate.Format(time.RFC3339), t.Recurring)
		if t.Description != "" {
			fmt.Printf("Description:\n  %s\n", t.Description)
		}
		if t.Proposal != "" {
			fmt.Printf("Proposal (read=%v):\n  %s\n", t.IsProposalRead, t.Proposal)
		}
		if t.ManagerResponse != nil {
			fmt.Printf("Manager response (%s at %s):\n  %s\n",
				t.ManagerResponse.Type, t.ManagerResponse.RespondedAt.Format(time.RFC3339), t.ManagerResponse.Content)
		}
		return nil
	}
	return fmt.Errorf("task %s not found", id)
}

func handleCreate(ctx context.Context, engine *task.Engine) error {
	due, err := time.Parse("2006-01-02", *createDue)
	if err != nil {
		return fmt.Errorf("invalid due date: %w", err)
	}
	t := &task.Task{
		ID:         ulid.Make().String(),
		Title:      *createTitle,
		AssigneeID: *createAssignee,
		CreatorID:  *createCreator,
		Status:     task.StatusPending,
		Priority:   task.Priority(*createPriority),
		Recurring:  task.Recurrence(*createRecur),
		DueDate:    due,
		CreatedAt:  time.Now(),
	}
	saved, err := engine.Save(ctx, t)
	if err != nil {
		return err
	}
	green.Printf("created %s\n", saved.ID)
	return nil
}

func handleComplete(ctx context.Context, tasks task.Repository, engine *task.Engine, id string) error {
	all, err := tasks.List(ctx)
	if err != nil {
		return err
	}
	for _, t := range all {
		if t.ID != id {
			continue
		}
		done := t.Clone()
		done.Status = task.StatusCompleted
		if _, err := engine.Save(ctx, done); err != nil {
			return err
		}
		green.Printf("completed %s\n", id)
		if done.Recurring != task.RecurrenceNone && done.Recurring != "" {
			yellow.Println("recurring task, next instance scheduled")
		}
		return nil
	}
	return fmt.Errorf("task %s not found", id)
}

// handleSeed forces the first-read seeding of every collection.
func handleSeed(ctx context.Context, store storage.Storage, tasks task.Repository, notifications notification.Repository) error {
	users := userrepo.NewYAMLRepository(store, seed.DefaultUsers())
	if _, err := users.List(ctx); err != nil {
		return err
	}
	if _, err := tasks.List(ctx); err != nil {
		return err
	}
	if _, err := notifications.List(ctx); err != nil {
		return err
	}
	green.Println("store seeded")
	return nil
}
