package task

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskdesk/taskdesk/internal/user"
	"github.com/taskdesk/taskdesk/pkg/cerr"
)

// actorHeader carries the id of the authenticated user. Requests without it
// are treated as trusted internal callers and skip the role mask.
const actorHeader = "X-User-ID"

type Server struct {
	engine *Engine
	tasks  Repository
	users  *user.Service
}

func NewServer(engine *Engine, tasks Repository, users *user.Service) *Server {
	return &Server{engine: engine, tasks: tasks, users: users}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/tasks", s.handleList)
	r.Post("/tasks", s.handleSave)
	r.Delete("/tasks/{id}", s.handleDelete)
	r.Post("/tasks/{id}/proposal-viewed", s.handleProposalViewed)
	r.Get("/stats/dashboard", s.handleDashboard)
	r.Get("/stats/officers", s.handleOfficerStats)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if assignee := r.URL.Query().Get("assignee"); assignee != "" {
		tasks = FilterAssignee(tasks, assignee)
	}
	if r.URL.Query().Get("pendingProposals") == "true" {
		tasks = PendingProposals(tasks)
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	cerr.SetJSONResponse(ctx, tasks)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var incoming Task
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid task payload", err)
		return
	}
	if incoming.ID == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "task id is required", nil)
		return
	}

	actor, err := s.actor(r)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	var existing *Task
	all, err := s.tasks.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	for _, t := range all {
		if t.ID == incoming.ID {
			existing = t
			break
		}
	}

	masked, err := ApplyRoleMask(actor, existing, &incoming)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	saved, err := s.engine.Save(ctx, masked)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, saved)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, err := s.actor(r)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if actor != nil && !actor.IsManager() {
		cerr.SetNewJSONError(ctx, cerr.PermissionDenied, "only managers can delete tasks", nil)
		return
	}
	if err := s.engine.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}

func (s *Server) handleProposalViewed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	all, err := s.tasks.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	for _, t := range all {
		if t.ID == id {
			saved, err := s.engine.MarkProposalViewed(ctx, t)
			if err != nil {
				cerr.SetJSONError(ctx, err)
				return
			}
			cerr.SetJSONResponse(ctx, saved)
			return
		}
	}
	cerr.SetNewJSONError(ctx, cerr.NotFound, "task not found", nil)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if assignee := r.URL.Query().Get("assignee"); assignee != "" {
		tasks = FilterAssignee(tasks, assignee)
	}
	cerr.SetJSONResponse(ctx, ComputeDashboard(tasks, time.Now()))
}

func (s *Server) handleOfficerStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	users, err := s.users.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, ComputeOfficerStats(tasks, users, time.Now()))
}

func (s *Server) actor(r *http.Request) (*user.User, error) {
	id := r.Header.Get(actorHeader)
	if id == "" {
		return nil, nil
	}
	return s.users.Get(r.Context(), id)
}
