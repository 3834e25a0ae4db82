package task

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdesk/taskdesk/internal/eventbus"
	"github.com/taskdesk/taskdesk/internal/notification"
	"github.com/taskdesk/taskdesk/internal/user"
	"github.com/taskdesk/taskdesk/pkg/cerr"
)

type memUserRepo struct {
	users []*user.User
}

func (r *memUserRepo) List(ctx context.Context) ([]*user.User, error) {
	return r.users, nil
}

func (r *memUserRepo) ReplaceAll(ctx context.Context, users []*user.User) error {
	r.users = users
	return nil
}

func newTestServer(now time.Time) (*Server, *memTaskRepo) {
	tasks := &memTaskRepo{}
	notifications := &memNotificationRepo{}
	engine := NewEngine(tasks, notifications, notification.NewFactory(), eventbus.New())
	engine.now = func() time.Time { return now }
	users := user.NewService(&memUserRepo{users: []*user.User{
		{ID: "u1", Username: "manager", Role: user.RoleManager},
		{ID: "u4", Username: "officer", Role: user.RoleOfficer},
	}})
	return NewServer(engine, tasks, users), tasks
}

func newTestRouter(s *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(cerr.NewJSONResponseChiMiddleware())
	s.Routes(r)
	return r
}

func TestServerSaveAndList(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, _ := newTestServer(now)
	router := newTestRouter(server)

	body := `{"id":"t1","title":"Inspect site","assigneeId":"u4","creatorId":"u1","status":"PENDING","priority":"HIGH","dueDate":"2024-06-12T00:00:00Z","createdAt":"2024-06-10T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("X-User-ID", "u1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []*Task
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
	assert.Equal(t, "Inspect site", tasks[0].Title)
}

func TestServerOfficerCannotCreate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, _ := newTestServer(now)
	router := newTestRouter(server)

	body := `{"id":"t1","title":"Rogue task","assigneeId":"u4","creatorId":"u4","status":"PENDING"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("X-User-ID", "u4")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServerOfficerEditMasked(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, tasks := newTestServer(now)
	router := newTestRouter(server)

	tasks.tasks = []*Task{{
		ID: "t1", Title: "Inspect site", AssigneeID: "u4", CreatorID: "u1",
		Status: StatusPending, Priority: PriorityHigh,
		DueDate: now.Add(48 * time.Hour), CreatedAt: now,
	}}

	body := `{"id":"t1","title":"Renamed","assigneeId":"u4","creatorId":"u1","status":"IN_PROGRESS","priority":"LOW","proposal":"Started."}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("X-User-ID", "u4")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	saved := tasks.tasks[0]
	assert.Equal(t, "Inspect site", saved.Title)
	assert.Equal(t, PriorityHigh, saved.Priority)
	assert.Equal(t, StatusInProgress, saved.Status)
	assert.Equal(t, "Started.", saved.Proposal)
}

func TestServerDeleteRequiresManager(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, tasks := newTestServer(now)
	router := newTestRouter(server)

	tasks.tasks = []*Task{{ID: "t1", AssigneeID: "u4", CreatorID: "u1"}}

	req := httptest.NewRequest(http.MethodDelete, "/tasks/t1", nil)
	req.Header.Set("X-User-ID", "u4")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Len(t, tasks.tasks, 1)

	req = httptest.NewRequest(http.MethodDelete, "/tasks/t1", nil)
	req.Header.Set("X-User-ID", "u1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, tasks.tasks)
}

func TestServerUnknownActorRejected(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, _ := newTestServer(now)
	router := newTestRouter(server)

	body := `{"id":"t1","title":"x","assigneeId":"u4","creatorId":"u1"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("X-User-ID", "ghost")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServerDashboard(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, tasks := newTestServer(now)
	router := newTestRouter(server)

	tasks.tasks = []*Task{
		{ID: "t1", AssigneeID: "u4", Status: StatusPending, DueDate: now.Add(24 * time.Hour)},
		{ID: "t2", AssigneeID: "u5", Status: StatusInProgress, DueDate: now.Add(-time.Hour)},
	}

	req := httptest.NewRequest(http.MethodGet, "/stats/dashboard", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.Total)

	req = httptest.NewRequest(http.MethodGet, "/stats/dashboard?assignee=u4", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Pending)
}

func TestServerProposalViewed(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	server, tasks := newTestServer(now)
	router := newTestRouter(server)

	tasks.tasks = []*Task{{
		ID: "t1", Title: "Inspect site", Proposal: "Extend.",
		AssigneeID: "u4", CreatorID: "u1", Status: StatusInProgress,
		DueDate: now, CreatedAt: now,
	}}

	req := httptest.NewRequest(http.MethodPost, "/tasks/t1/proposal-viewed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, tasks.tasks[0].IsProposalRead)

	req = httptest.NewRequest(http.MethodPost, "/tasks/missing/proposal-viewed", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
