package service

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by TaskService.
var (
	// ErrTaskNotFound indicates that the referenced task does not exist.
	// Malformed IDs that match the service's type check but not the
	// store's ID format are reported the same way.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidTaskID indicates type-level misuse of the ID parameter
	// (an empty value). Unlike a format-level miss, this is a caller bug
	// signal, not an ordinary not-found.
	ErrInvalidTaskID = errors.New("invalid task ID")
)

// TaskServiceError wraps system-level failures from the task service with
// context. Validation and not-found outcomes are never wrapped in it.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "create_task").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}
