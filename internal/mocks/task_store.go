// Package mocks provides hand-written test doubles for the store and
// event contracts.
package mocks

import (
	"context"

	"github.com/cmtrswtng/taskflow/internal/domain"
	"github.com/cmtrswtng/taskflow/internal/store"
)

// TaskStore is a configurable mock of store.TaskStore. Each method
// delegates to the corresponding Fn field and records its calls.
type TaskStore struct {
	CreateFn  func(ctx context.Context, params store.CreateTaskParams) (*domain.Task, error)
	GetByIDFn func(ctx context.Context, id string) (*domain.Task, error)
	ListFn    func(ctx context.Context, status *domain.Status) ([]*domain.Task, error)
	UpdateFn  func(ctx context.Context, id string, patch store.TaskPatch) (*domain.Task, error)

	CreateCalls []store.CreateTaskParams
	GetCalls    []string
	ListCalls   []*domain.Status
	UpdateCalls []store.TaskPatch
}

var _ store.TaskStore = (*TaskStore)(nil)

func (m *TaskStore) Create(ctx context.Context, params store.CreateTaskParams) (*domain.Task, error) {
	m.CreateCalls = append(m.CreateCalls, params)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, params)
	}
	return nil, store.NewStoreError("task", "create", "not configured", nil)
}

func (m *TaskStore) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	m.GetCalls = append(m.GetCalls, id)
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *TaskStore) List(ctx context.Context, status *domain.Status) ([]*domain.Task, error) {
	m.ListCalls = append(m.ListCalls, status)
	if m.ListFn != nil {
		return m.ListFn(ctx, status)
	}
	return []*domain.Task{}, nil
}

func (m *TaskStore) Update(ctx context.Context, id string, patch store.TaskPatch) (*domain.Task, error) {
	m.UpdateCalls = append(m.UpdateCalls, patch)
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch)
	}
	return nil, store.ErrTaskNotFound
}
