// task.go defines the task record and its status state machine.
// Tasks are persisted by the store and mutated only by the executor.
package main

import (
	"time"
)

// Status is the lifecycle state of a task.
//
// Transitions are monotonic and one-directional:
//
//	pending -> processing -> completed | failed
//
// A task never re-enters pending or processing after reaching a terminal
// state, and the executor is the only writer of transitions.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status admits no further transition.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Task is a persisted unit of work: a typed input submitted by a caller,
// carried through the state machine to a result or an error.
//
// ID, TaskType and InputText are immutable after creation. Exactly one of
// ResultText/ErrorText is populated once the task is terminal; neither is
// populated before that.
type Task struct {
	ID        string `gorm:"primaryKey" json:"id"`
	TaskType  string `gorm:"index;not null" json:"task_type"`
	InputText string `gorm:"type:text;not null" json:"input_text"`

	Status     Status `gorm:"index;not null;default:'pending'" json:"status"`
	ResultText string `gorm:"type:text" json:"result_text,omitempty"`
	ErrorText  string `gorm:"type:text" json:"error_text,omitempty"`

	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
