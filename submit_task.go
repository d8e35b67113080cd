// submit_task.go defines the submit_task tool types: create a pending task
// and hand it to the background runner.
package main

// SubmitTaskArgs is the input for the submit_task tool.
type SubmitTaskArgs struct {
	TaskType  string `json:"task_type" jsonschema:"Processor type tag. Unknown types are accepted and fail at execution."`
	InputText string `json:"input_text" jsonschema:"Text payload handed to the processor"`
}

// SubmitTaskOutput returns the assigned task ID.
type SubmitTaskOutput struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"` // always "pending" on creation
}
