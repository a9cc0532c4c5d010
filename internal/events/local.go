package events

import (
	"context"
	"log/slog"
	"sync"
)

// LocalPublisher is an in-process implementation of Publisher that
// dispatches events synchronously to registered handlers. It backs
// broker-less deployments (no queue URL configured) and tests.
type LocalPublisher struct {
	handlers []Handler
	mu       sync.RWMutex
	logger   *slog.Logger
}

// NewLocalPublisher creates a new LocalPublisher.
func NewLocalPublisher(logger *slog.Logger) *LocalPublisher {
	return &LocalPublisher{
		handlers: make([]Handler, 0),
		logger:   logger.With("component", "local_publisher"),
	}
}

// RegisterHandler adds a handler to receive published events.
func (p *LocalPublisher) RegisterHandler(handler Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, handler)
	p.logger.Debug("registered event handler", "handler_count", len(p.handlers))
}

// Publish dispatches the event to all registered handlers. Every handler
// receives the event even if an earlier one fails; the first error
// encountered is returned.
func (p *LocalPublisher) Publish(ctx context.Context, event *TaskEvent) error {
	p.mu.RLock()
	handlers := make([]Handler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	p.logger.Debug("publishing event",
		"event_id", event.ID,
		"task_id", event.TaskID,
		"action", event.Action,
		"handler_count", len(handlers))

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			p.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"action", event.Action)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
