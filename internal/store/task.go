package store

import (
	"context"
	"time"

	"github.com/cmtrswtng/taskflow/internal/domain"
)

// CreateTaskParams carries the already-validated, already-sanitized fields
// of a new task. The store assigns ID, CreatedAt, UpdatedAt and Version.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      domain.Status
	DueDate     time.Time
}

// TaskPatch is a partial update. Nil fields are left untouched in storage;
// a patch must never overwrite a field the caller did not supply.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.Status
}

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task, assigning its ID, timestamps and an
	// initial version of 1.
	Create(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// GetByID retrieves a task by its ID. A malformed or unknown ID
	// returns ErrTaskNotFound; the store's ID-format rules are stricter
	// than (and distinct from) the service's own check.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// List retrieves tasks, optionally filtered by status, ordered
	// most-recently-created first.
	List(ctx context.Context, status *domain.Status) ([]*domain.Task, error)

	// Update applies a partial update as one atomic step: the field
	// merge, the UpdatedAt stamp and the version increment happen in a
	// single read-modify-write. Returns ErrTaskNotFound if no document
	// matches id.
	Update(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)
}
