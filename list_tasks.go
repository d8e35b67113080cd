// list_tasks.go defines the list_tasks and task_types tool types.
package main

// ListTasksArgs is the input for the list_tasks tool. No arguments needed.
type ListTasksArgs struct{}

// ListTasksOutput lists every task in insertion order.
type ListTasksOutput struct {
	Tasks []TaskStatusView `json:"tasks"`
}

// TaskTypesArgs is the input for the task_types tool. No arguments needed.
type TaskTypesArgs struct{}

// TaskTypesOutput lists the registered processor type names.
type TaskTypesOutput struct {
	TaskTypes []string `json:"task_types"`
}
