// get_result.go defines the get_result tool types: full result retrieval
// for specific completed or failed tasks.
package main

// GetResultArgs is the input for the get_result tool.
type GetResultArgs struct {
	TaskIDs []string `json:"task_ids" jsonschema:"Task IDs to retrieve full results for"`
}

// GetResultOutput contains the full content for each requested task.
type GetResultOutput struct {
	Results []TaskResultView `json:"results"`
}

// TaskResultView includes the full result text for a single task.
type TaskResultView struct {
	ID       string `json:"id"`
	TaskType string `json:"task_type,omitempty"`
	Status   string `json:"status"`
	Content  string `json:"content,omitempty"` // result_text (empty unless completed)
	Error    string `json:"error,omitempty"`   // error_text (empty unless failed)
}

// resultViews builds get_result entries for the requested IDs. Unknown IDs
// get a "not_found" entry rather than failing the whole call.
func resultViews(store *Store, ids []string) []TaskResultView {
	views := make([]TaskResultView, 0, len(ids))
	for _, id := range ids {
		t, err := store.GetTask(id)
		if err != nil {
			views = append(views, TaskResultView{
				ID:     id,
				Status: "not_found",
				Error:  "task not found",
			})
			continue
		}
		views = append(views, TaskResultView{
			ID:       t.ID,
			TaskType: t.TaskType,
			Status:   string(t.Status),
			Content:  t.ResultText,
			Error:    t.ErrorText,
		})
	}
	return views
}
