package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Action identifies what happened to a task.
type Action string

// Possible task actions.
const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// TaskEvent is the notification emitted after a task write commits. It is
// advisory: persistence is the source of truth and consumers must tolerate
// missing or duplicated events.
type TaskEvent struct {
	// ID is a unique identifier for this event.
	ID uuid.UUID `json:"id"`

	// TaskID identifies the task the event refers to.
	TaskID string `json:"taskId"`

	// Action is what happened to the task.
	Action Action `json:"action"`

	// Timestamp is when the event was created.
	Timestamp time.Time `json:"timestamp"`
}

// NewTaskEvent creates a TaskEvent for the given action and task.
func NewTaskEvent(action Action, taskID string) *TaskEvent {
	return &TaskEvent{
		ID:        uuid.New(),
		TaskID:    taskID,
		Action:    action,
		Timestamp: time.Now().UTC(),
	}
}

// Publisher publishes task events to a durable channel. Delivery is
// at-least-once from the channel's perspective; callers that treat
// publication as best-effort must swallow the returned error themselves.
type Publisher interface {
	Publish(ctx context.Context, event *TaskEvent) error
}

// Handler consumes task events. Implementations are registered with the
// consuming side of the channel.
type Handler interface {
	HandleEvent(ctx context.Context, event *TaskEvent) error
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, event *TaskEvent) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *TaskEvent) error {
	return f(ctx, event)
}
