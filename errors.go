// errors.go holds the sentinel errors surfaced to callers of the executor
// and façade. Failures that belong to a task (a missing processor, a
// processor error) are recorded into the task itself and are not errors here.
package main

import "errors"

var (
	// ErrTaskNotFound is returned when a referenced task ID does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidState is returned when execution is requested for a task
	// that is not pending. A task runs at most once.
	ErrInvalidState = errors.New("task is not pending")
)
