package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdesk/taskdesk/pkg/cerr"
)

type Server struct {
	service *Service
}

func NewServer(service *Service) *Server {
	return &Server{service: service}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/notifications", s.handleList)
	r.Post("/notifications/{id}/read", s.handleMarkRead)
	r.Post("/notifications/read-all", s.handleMarkAllRead)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("user")
	if userID == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "user query parameter is required", nil)
		return
	}
	notifications, err := s.service.ListForUser(ctx, userID)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if notifications == nil {
		notifications = []*Notification{}
	}
	cerr.SetJSONResponse(ctx, notifications)
}

func (s *Server) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.service.MarkRead(ctx, chi.URLParam(r, "id")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"read": true})
}

func (s *Server) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := r.URL.Query().Get("user")
	if userID == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "user query parameter is required", nil)
		return
	}
	if err := s.service.MarkAllRead(ctx, userID); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"read": true})
}
