// service.go is the thin boundary the HTTP and MCP surfaces call. It groups
// the store, registry and executor behind the three submission/query
// operations plus execute. No business logic lives here.
package main

import "context"

// Service exposes the core operations to the transport layers.
type Service struct {
	store    *Store
	registry *Registry
	executor *Executor
}

// NewService wires a service over the given store and registry.
func NewService(store *Store, registry *Registry) *Service {
	return &Service{
		store:    store,
		registry: registry,
		executor: NewExecutor(store, registry),
	}
}

// Submit creates a pending task and returns it with its assigned ID.
// The task type is deliberately not validated against the registry here:
// an unknown type fails at execution time, not at submission.
func (s *Service) Submit(taskType, inputText string) (*Task, error) {
	return s.store.CreateTask(taskType, inputText)
}

// Get returns the current record for a task ID, or ErrTaskNotFound.
func (s *Service) Get(id string) (*Task, error) {
	return s.store.GetTask(id)
}

// List returns all tasks in insertion order.
func (s *Service) List() ([]Task, error) {
	return s.store.ListTasks()
}

// Execute drives the task with the given ID to a terminal state.
// See Executor.Execute for the error contract.
func (s *Service) Execute(ctx context.Context, id string) error {
	return s.executor.Execute(ctx, id)
}

// Types returns the registered task type names.
func (s *Service) Types() []string {
	return s.registry.Types()
}
