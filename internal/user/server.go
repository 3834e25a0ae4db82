package user

import (
	"encoding/json"
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
	r.Post("/login", s.handleLogin)
	r.Get("/users", s.handleList)
	r.Post("/users", s.handleCreate)
	r.Get("/users/{id}", s.handleGet)
	r.Put("/users/{id}", s.handleUpdate)
	r.Delete("/users/{id}", s.handleDelete)
	r.Post("/users/{id}/password", s.handleChangePassword)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid login payload", err)
		return
	}
	u, err := s.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, u)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	users, err := s.service.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if users == nil {
		users = []*User{}
	}
	cerr.SetJSONResponse(ctx, users)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	u, err := s.service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, u)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid user payload", err)
		return
	}
	created, err := s.service.Create(ctx, &u)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, created)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var u User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid user payload", err)
		return
	}
	u.ID = chi.URLParam(r, "id")
	if err := s.service.Update(ctx, &u); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, &u)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]bool{"deleted": true})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req struct {
		NewPassword string `json:"newPassword"`
		Confirm     string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid password payload", err)
		return
	}
	u, err := s.service.ChangePassword(ctx, chi.URLParam(r, "id"), req.NewPassword, req.Confirm)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, u)
}
