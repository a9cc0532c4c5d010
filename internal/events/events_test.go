package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler counts the events it receives and can be told to fail.
type recordingHandler struct {
	handled []*TaskEvent
	err     error
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *TaskEvent) error {
	h.handled = append(h.handled, event)
	return h.err
}

func TestNewTaskEvent(t *testing.T) {
	event := NewTaskEvent(ActionCreated, "64f000000000000000000001")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "64f000000000000000000001", event.TaskID)
	assert.Equal(t, ActionCreated, event.Action)
	assert.False(t, event.Timestamp.IsZero())
}

func TestLocalPublisher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("publish with no handlers succeeds", func(t *testing.T) {
		publisher := NewLocalPublisher(logger)
		err := publisher.Publish(context.Background(), NewTaskEvent(ActionCreated, "a"))
		assert.NoError(t, err)
	})

	t.Run("dispatches to every handler", func(t *testing.T) {
		publisher := NewLocalPublisher(logger)
		first := &recordingHandler{}
		second := &recordingHandler{}
		publisher.RegisterHandler(first)
		publisher.RegisterHandler(second)

		event := NewTaskEvent(ActionUpdated, "a")
		require.NoError(t, publisher.Publish(context.Background(), event))

		require.Len(t, first.handled, 1)
		require.Len(t, second.handled, 1)
		assert.Equal(t, event, first.handled[0])
	})

	t.Run("a failing handler does not starve the others", func(t *testing.T) {
		publisher := NewLocalPublisher(logger)
		failing := &recordingHandler{err: errors.New("handler error")}
		healthy := &recordingHandler{}
		publisher.RegisterHandler(failing)
		publisher.RegisterHandler(healthy)

		err := publisher.Publish(context.Background(), NewTaskEvent(ActionCreated, "a"))
		assert.EqualError(t, err, "handler error")
		assert.Len(t, failing.handled, 1)
		assert.Len(t, healthy.handled, 1)
	})
}
