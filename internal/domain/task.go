package domain

import "time"

// Task is the sole entity of the system. ID, CreatedAt, UpdatedAt and
// Version are assigned by the store and never settable by callers; Title
// and Description are always stored sanitized.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Version     int64     `json:"version"`
}

// FieldLimits bounds the free-text fields. Limits are configuration,
// passed in at construction time rather than read from globals.
type FieldLimits struct {
	TitleMax       int
	DescriptionMax int
}

// DefaultFieldLimits returns the limits used when configuration does not
// override them.
func DefaultFieldLimits() FieldLimits {
	return FieldLimits{TitleMax: 100, DescriptionMax: 500}
}
