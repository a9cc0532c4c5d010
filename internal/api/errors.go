package api

import (
	"errors"
	"net/http"

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/service"
	"github.com/cmtrswtng/taskflow/internal/store"
)

// MapErrorToStatusCode maps service errors to HTTP status codes. Validation
// and not-found are domain outcomes mapped to client errors; everything
// else is a system-level failure.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, service.ErrInvalidTaskID):
		return http.StatusBadRequest

	case errors.Is(err, service.ErrTaskNotFound),
		store.IsNotFoundError(err):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message exposed to the caller. Validation
// rejections carry their specific reason; system-level failures never leak
// internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}

	switch {
	case errors.Is(err, service.ErrInvalidTaskID):
		return "Invalid task ID"
	case errors.Is(err, service.ErrTaskNotFound), store.IsNotFoundError(err):
		return "Task not found"
	default:
		return "An unexpected error occurred"
	}
}
