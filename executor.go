// executor.go drives a single task through its state machine to a terminal
// state. Outcomes that belong to the task (missing processor, processor
// failure) are persisted into the record; only NotFound and InvalidState
// propagate to the caller.
package main

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
)

// Executor looks up the processor for a task's type, invokes it, and
// persists the status transitions around the invocation.
type Executor struct {
	store    *Store
	registry *Registry
}

// NewExecutor creates an executor over the given store and registry.
func NewExecutor(store *Store, registry *Registry) *Executor {
	return &Executor{store: store, registry: registry}
}

// Execute runs the task with the given ID exactly once.
//
// The pending->processing transition is persisted before the processor is
// invoked, so a crash mid-execution leaves an observable processing state
// rather than a silently lost pending task. The transition is a guarded
// UPDATE: of any concurrent Execute calls for the same ID, exactly one
// proceeds and the rest return ErrInvalidState.
//
// Returns ErrTaskNotFound for an unknown ID and ErrInvalidState for a task
// that is not pending. Never returns an error for a processor that failed;
// that outcome lives in the task record.
func (e *Executor) Execute(ctx context.Context, id string) error {
	task, err := e.store.GetTask(id)
	if err != nil {
		return err
	}
	if task.Status != StatusPending {
		return fmt.Errorf("%w: task %s is %s", ErrInvalidState, id, task.Status)
	}

	ok, err := e.store.MarkProcessing(id)
	if err != nil {
		return err
	}
	if !ok {
		// Lost the race to another caller between the read and the update.
		return fmt.Errorf("%w: task %s", ErrInvalidState, id)
	}

	proc, found := e.registry.Lookup(task.TaskType)
	if !found {
		msg := fmt.Sprintf("no processor for type %s", task.TaskType)
		log.Printf("task failed id=%s type=%s error=%q", id, task.TaskType, msg)
		return e.store.MarkFailed(id, msg)
	}

	log.Printf("task start id=%s type=%s", id, task.TaskType)
	result, procErr := invoke(ctx, proc, task.InputText)
	if procErr != nil {
		log.Printf("task failed id=%s type=%s error=%q", id, task.TaskType, procErr)
		return e.store.MarkFailed(id, procErr.Error())
	}
	log.Printf("task done id=%s type=%s", id, task.TaskType)
	return e.store.MarkCompleted(id, result)
}

// invoke calls the processor, converting a panic into an ordinary failure so
// that one misbehaving processor never takes the process down.
func invoke(ctx context.Context, proc Processor, input string) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("processor panic: %v\n%s", r, debug.Stack())
			err = fmt.Errorf("processor panicked: %v", r)
		}
	}()
	return proc(ctx, input)
}
