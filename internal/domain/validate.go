package domain

import (
	"fmt"
	"strings"
	"time"
)

// ValidateTitle checks that title is non-empty (ignoring whitespace) and
// within the configured length bound.
func ValidateTitle(title string, limits FieldLimits) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError(CodeTitleRequired, "Title is required")
	}
	if len([]rune(title)) > limits.TitleMax {
		return NewValidationError(
			CodeTitleTooLong,
			fmt.Sprintf("Title too long (max %d characters)", limits.TitleMax),
		)
	}
	return nil
}

// ValidateDescription checks the length bound. The empty description is
// allowed.
func ValidateDescription(description string, limits FieldLimits) error {
	if len([]rune(description)) > limits.DescriptionMax {
		return NewValidationError(
			CodeDescriptionTooLong,
			fmt.Sprintf("Description too long (max %d characters)", limits.DescriptionMax),
		)
	}
	return nil
}

// ValidateDueDate parses the wire representation of a due date (RFC 3339,
// the REST schema's date-time format) into an instant.
func ValidateDueDate(dueDate string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, dueDate)
	if err != nil {
		return time.Time{}, NewValidationError(CodeInvalidDueDate, "Invalid due date format")
	}
	return t, nil
}

// ValidateStatus parses a REST-vocabulary status string into the canonical
// status. The empty string defaults to StatusOpen.
func ValidateStatus(status string) (Status, error) {
	if status == "" {
		return StatusOpen, nil
	}
	return ParseRESTStatus(status)
}
