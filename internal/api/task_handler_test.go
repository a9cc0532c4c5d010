package api

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

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/service"
)

// stubTaskService implements service.TaskService with function fields.
type stubTaskService struct {
	createFn func(ctx context.Context, input service.CreateTaskInput) (*domain.Task, error)
	getFn    func(ctx context.Context, id string) (*domain.Task, error)
	listFn   func(ctx context.Context, statusFilter string) ([]*domain.Task, error)
	updateFn func(ctx context.Context, id string, input service.UpdateTaskInput) (*domain.Task, error)
}

func (s *stubTaskService) Create(ctx context.Context, input service.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, input)
}

func (s *stubTaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.getFn(ctx, id)
}

func (s *stubTaskService) List(ctx context.Context, statusFilter string) ([]*domain.Task, error) {
	return s.listFn(ctx, statusFilter)
}

func (s *stubTaskService) Update(ctx context.Context, id string, input service.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, id, input)
}

func newTestRouter(svc service.TaskService) http.Handler {
	handler := NewTaskHandler(svc)
	r := chi.NewRouter()
	r.Post("/api/v1/tasks", handler.CreateTask)
	r.Get("/api/v1/tasks", handler.ListTasks)
	r.Get("/api/v1/tasks/{id}", handler.GetTask)
	r.Patch("/api/v1/tasks/{id}", handler.UpdateTask)
	return r
}

func sampleTask() *domain.Task {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Task{
		ID:          "64f000000000000000000001",
		Title:       "Ship the release",
		Description: "cut and tag",
		Status:      domain.StatusInProgress,
		DueDate:     now.Add(72 * time.Hour),
		CreatedAt:   now,
		UpdatedAt:   now,
		Version:     1,
	}
}

func TestCreateTaskHandler(t *testing.T) {
	t.Run("returns 201 with the REST representation", func(t *testing.T) {
		svc := &stubTaskService{createFn: func(_ context.Context, input service.CreateTaskInput) (*domain.Task, error) {
			assert.Equal(t, "Ship the release", input.Title)
			assert.Equal(t, "в процессе", input.Status)
			return sampleTask(), nil
		}}

		body := `{"title":"Ship the release","description":"cut and tag","dueDate":"2026-08-04T12:00:00Z","status":"в процессе"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "64f000000000000000000001", resp.ID)
		assert.Equal(t, "в процессе", resp.Status)
		assert.Equal(t, int64(1), resp.Version)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		svc := &stubTaskService{}
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid request format")
	})

	t.Run("rejects a missing title at the edge", func(t *testing.T) {
		svc := &stubTaskService{}
		body := `{"dueDate":"2026-08-04T12:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps validation failures to 400 with the reason", func(t *testing.T) {
		svc := &stubTaskService{createFn: func(_ context.Context, _ service.CreateTaskInput) (*domain.Task, error) {
			return nil, domain.NewValidationError(domain.CodeInvalidDueDate, "Invalid due date format")
		}}

		body := `{"title":"ok","dueDate":"soon"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid due date format")
	})
}

func TestGetTaskHandler(t *testing.T) {
	t.Run("returns the task", func(t *testing.T) {
		svc := &stubTaskService{getFn: func(_ context.Context, id string) (*domain.Task, error) {
			assert.Equal(t, "64f000000000000000000001", id)
			return sampleTask(), nil
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/64f000000000000000000001", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Ship the release", resp.Title)
	})

	t.Run("maps not-found to 404 with a timestamped error body", func(t *testing.T) {
		svc := &stubTaskService{getFn: func(_ context.Context, _ string) (*domain.Task, error) {
			return nil, service.ErrTaskNotFound
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/not-a-valid-id-format", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Error     string    `json:"error"`
			Timestamp time.Time `json:"timestamp"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Task not found", resp.Error)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("maps invalid-id to 400", func(t *testing.T) {
		svc := &stubTaskService{getFn: func(_ context.Context, _ string) (*domain.Task, error) {
			return nil, service.ErrInvalidTaskID
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/x", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid task ID")
	})

	t.Run("hides store failures behind 500", func(t *testing.T) {
		svc := &stubTaskService{getFn: func(_ context.Context, _ string) (*domain.Task, error) {
			return nil, &service.TaskServiceError{Operation: "get_task", Message: "store get failed"}
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/64f000000000000000000001", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
		assert.NotContains(t, rec.Body.String(), "store get failed")
	})
}

func TestListTasksHandler(t *testing.T) {
	t.Run("passes the status query through", func(t *testing.T) {
		svc := &stubTaskService{listFn: func(_ context.Context, statusFilter string) ([]*domain.Task, error) {
			assert.Equal(t, "завершена", statusFilter)
			return []*domain.Task{sampleTask()}, nil
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status="+"завершена", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("returns an empty array, not null", func(t *testing.T) {
		svc := &stubTaskService{listFn: func(_ context.Context, _ string) ([]*domain.Task, error) {
			return nil, nil
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("maps an invalid filter to 400", func(t *testing.T) {
		svc := &stubTaskService{listFn: func(_ context.Context, _ string) ([]*domain.Task, error) {
			return nil, domain.NewValidationError(domain.CodeInvalidStatus, "Invalid status")
		}}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=bogus", nil)
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTaskHandler(t *testing.T) {
	t.Run("forwards only supplied fields", func(t *testing.T) {
		svc := &stubTaskService{updateFn: func(_ context.Context, id string, input service.UpdateTaskInput) (*domain.Task, error) {
			assert.Equal(t, "64f000000000000000000001", id)
			assert.Nil(t, input.Title)
			assert.Nil(t, input.Status)
			require.NotNil(t, input.Description)
			assert.Equal(t, "new text", *input.Description)
			return sampleTask(), nil
		}}

		body := `{"description":"new text"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/64f000000000000000000001", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("maps not-found to 404", func(t *testing.T) {
		svc := &stubTaskService{updateFn: func(_ context.Context, _ string, _ service.UpdateTaskInput) (*domain.Task, error) {
			return nil, service.ErrTaskNotFound
		}}

		body := `{"title":"ok"}`
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/64f000000000000000000099", strings.NewReader(body))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
