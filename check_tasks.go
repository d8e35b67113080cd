// check_tasks.go defines the check_tasks tool types: lightweight status
// polling with aggregate counts and per-task status (no result content).
package main

import "time"

// CheckTasksArgs is the input for the check_tasks tool.
type CheckTasksArgs struct {
	// TaskIDs filters to specific tasks. Empty returns all tasks.
	TaskIDs []string `json:"task_ids,omitempty" jsonschema:"Filter to specific task IDs. Empty returns all."`
}

// CheckTasksOutput contains a compact summary plus individual task statuses.
type CheckTasksOutput struct {
	Summary TaskSummary      `json:"summary"`
	Tasks   []TaskStatusView `json:"tasks"`
}

// TaskSummary provides aggregate counts across all matched tasks.
type TaskSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// TaskStatusView is the per-task view in check_tasks. Intentionally omits
// the result content — use get_result for that.
type TaskStatusView struct {
	ID             string `json:"id"`
	TaskType       string `json:"task_type"`
	Status         Status `json:"status"`
	Error          string `json:"error,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds"` // wall-clock seconds (meaning varies by status)
}

// summarize builds the check_tasks view over a task listing. If ids is
// non-empty only those tasks are included.
func summarize(tasks []Task, ids []string) CheckTasksOutput {
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}

	var out CheckTasksOutput
	now := time.Now()
	for _, t := range tasks {
		if len(idSet) > 0 && !idSet[t.ID] {
			continue
		}
		out.Summary.Total++
		switch t.Status {
		case StatusPending:
			out.Summary.Pending++
		case StatusProcessing:
			out.Summary.Processing++
		case StatusCompleted:
			out.Summary.Completed++
		case StatusFailed:
			out.Summary.Failed++
		}
		out.Tasks = append(out.Tasks, TaskStatusView{
			ID:             t.ID,
			TaskType:       t.TaskType,
			Status:         t.Status,
			Error:          t.ErrorText,
			ElapsedSeconds: taskElapsedSeconds(&t, now),
		})
	}
	return out
}

// taskElapsedSeconds computes wall-clock seconds for a task based on state.
//   - pending: seconds since created (queue wait time)
//   - processing: seconds since the processing transition (work time so far)
//   - completed/failed: seconds from creation to completion
func taskElapsedSeconds(t *Task, now time.Time) int {
	switch t.Status {
	case StatusPending:
		return int(now.Sub(t.CreatedAt).Seconds())
	case StatusProcessing:
		return int(now.Sub(t.UpdatedAt).Seconds())
	case StatusCompleted, StatusFailed:
		if t.CompletedAt != nil {
			return int(t.CompletedAt.Sub(t.CreatedAt).Seconds())
		}
	}
	return 0
}
