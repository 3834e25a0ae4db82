package event

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskdesk/taskdesk/internal/eventbus"
)

// Server streams bus events to browsers over server-sent events. Clients use
// the stream as a change signal and re-fetch the collections they care about.
// The routes write the response themselves and must be mounted outside the
// JSON response middleware.
type Server struct {
	eventBus *eventbus.Bus
}

func NewServer(eventBus *eventbus.Bus) *Server {
	return &Server{eventBus: eventBus}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/events", s.handleStream)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	// Optional filters, comma-free single values to keep the contract small.
	typeFilter := r.URL.Query().Get("type")
	userFilter := r.URL.Query().Get("user")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	subID, ch := s.eventBus.Subscribe(64)
	defer s.eventBus.Unsubscribe(subID)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			if typeFilter != "" && string(event.Type) != typeFilter {
				continue
			}
			if userFilter != "" {
				if userID, ok := event.Metadata["user_id"]; ok && userID != userFilter {
					continue
				}
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data)
			flusher.Flush()
		}
	}
}
