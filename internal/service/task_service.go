package service

import (
	"context"
	"log/slog"

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/events"
	"github.com/cmtrswtng/taskflow/internal/store"
)

// CreateTaskInput carries the deserialized fields of a create request.
// Status and DueDate use the REST wire vocabulary; the GraphQL layer
// translates its enum before calling.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	Status      string
}

// UpdateTaskInput is a partial update. Nil fields were not supplied by the
// caller and must be left untouched in storage.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService provides the task lifecycle operations. Each operation takes
// already-deserialized input and returns either the task or a typed
// failure: a domain.ValidationError, ErrTaskNotFound, ErrInvalidTaskID, or
// a passed-through store failure.
type TaskService interface {
	// Create validates, sanitizes and persists a new task, then emits a
	// best-effort "created" event.
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)

	// Get retrieves a task by ID.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// List retrieves tasks, optionally filtered by a REST-vocabulary
	// status value. The filter is validated before the store is called.
	List(ctx context.Context, statusFilter string) ([]*domain.Task, error)

	// Update applies a partial update, then emits a best-effort "updated"
	// event.
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
}

type taskService struct {
	store     store.TaskStore
	publisher events.Publisher
	limits    domain.FieldLimits
	logger    *slog.Logger
}

// NewTaskService creates a TaskService on top of the given store and event
// publisher. Zero limits fall back to the defaults.
func NewTaskService(
	taskStore store.TaskStore,
	publisher events.Publisher,
	limits domain.FieldLimits,
	logger *slog.Logger,
) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"}
	}
	if publisher == nil {
		return nil, &TaskServiceError{Operation: "create_service", Message: "publisher cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if limits.TitleMax == 0 && limits.DescriptionMax == 0 {
		limits = domain.DefaultFieldLimits()
	}

	return &taskService{
		store:     taskStore,
		publisher: publisher,
		limits:    limits,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// Create runs the pipeline: validate title and due date first, then
// sanitize, then length-check the sanitized description, then resolve the
// status.
func (s *taskService) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if err := domain.ValidateTitle(input.Title, s.limits); err != nil {
		return nil, err
	}
	dueDate, err := domain.ValidateDueDate(input.DueDate)
	if err != nil {
		return nil, err
	}

	title, err := domain.Sanitize(input.Title)
	if err != nil {
		return nil, err
	}
	description := ""
	if input.Description != "" {
		description, err = domain.Sanitize(input.Description)
		if err != nil {
			return nil, err
		}
	}
	if err := domain.ValidateDescription(description, s.limits); err != nil {
		return nil, err
	}

	status, err := domain.ValidateStatus(input.Status)
	if err != nil {
		return nil, err
	}

	task, err := s.store.Create(ctx, store.CreateTaskParams{
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		return nil, &TaskServiceError{Operation: "create_task", Message: "store create failed", Err: err}
	}

	s.notify(ctx, events.ActionCreated, task.ID)

	return task, nil
}

// Get retrieves a task. An empty ID is type-level misuse; a well-formed
// but unknown or store-rejected ID is an ordinary not-found.
func (s *taskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		return nil, &TaskServiceError{Operation: "get_task", Message: "store get failed", Err: err}
	}
	return task, nil
}

// List validates the optional filter up front, before any store call, then
// delegates; ordering is the store's responsibility.
func (s *taskService) List(ctx context.Context, statusFilter string) ([]*domain.Task, error) {
	var filter *domain.Status
	if statusFilter != "" {
		status, err := domain.ValidateStatus(statusFilter)
		if err != nil {
			return nil, err
		}
		filter = &status
	}

	tasks, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, &TaskServiceError{Operation: "list_tasks", Message: "store list failed", Err: err}
	}
	return tasks, nil
}

// Update validates and sanitizes only the supplied fields, mirroring the
// create pipeline per field, and delegates the merge to the store's atomic
// update.
func (s *taskService) Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error) {
	if id == "" {
		return nil, ErrInvalidTaskID
	}

	var patch store.TaskPatch

	if input.Title != nil {
		if err := domain.ValidateTitle(*input.Title, s.limits); err != nil {
			return nil, err
		}
		title, err := domain.Sanitize(*input.Title)
		if err != nil {
			return nil, err
		}
		patch.Title = &title
	}

	if input.Description != nil {
		description := ""
		if *input.Description != "" {
			var err error
			description, err = domain.Sanitize(*input.Description)
			if err != nil {
				return nil, err
			}
		}
		if err := domain.ValidateDescription(description, s.limits); err != nil {
			return nil, err
		}
		patch.Description = &description
	}

	if input.Status != nil {
		status, err := domain.ValidateStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}

	task, err := s.store.Update(ctx, id, patch)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		return nil, &TaskServiceError{Operation: "update_task", Message: "store update failed", Err: err}
	}

	s.notify(ctx, events.ActionUpdated, task.ID)

	return task, nil
}

// notify publishes a task event. Publish failures are logged and
// discarded; they never alter the caller-visible outcome.
func (s *taskService) notify(ctx context.Context, action events.Action, taskID string) {
	event := events.NewTaskEvent(action, taskID)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish task event",
			"error", err,
			"event_id", event.ID,
			"task_id", taskID,
			"action", action)
	}
}
