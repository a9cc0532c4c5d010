package mocks

import (
	"context"
	"sync"

	"github.com/cmtrswtng/taskflow/internal/events"
)

// Publisher is a mock of events.Publisher recording every published event.
// Err, when set, is returned from every Publish call.
type Publisher struct {
	Err error

	mu     sync.Mutex
	events []*events.TaskEvent
}

var _ events.Publisher = (*Publisher)(nil)

func (m *Publisher) Publish(ctx context.Context, event *events.TaskEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return m.Err
}

// Events returns a copy of the events published so far.
func (m *Publisher) Events() []*events.TaskEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.TaskEvent, len(m.events))
	copy(out, m.events)
	return out
}
