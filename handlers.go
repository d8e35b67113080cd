// handlers.go implements the HTTP endpoints. Request/response shaping only;
// all task semantics live behind the Service.
package main

import (
	"errors"
	"log"
	"net/http"
	"time"
)

// taskListing is the compact per-task view for the listing endpoints.
type taskListing struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	TaskType  string    `json:"task_type"`
	CreatedAt time.Time `json:"created_at"`
}

// handleIndex renders the submit form with the registered task types.
// The mux routes every unknown path here as well, so reject those first.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, "index.html", map[string]any{
		"TaskTypes": s.service.Types(),
	})
}

// handleSubmit accepts a form submission and creates a pending task. The
// task type is not checked against the registry: an unknown type is accepted
// here and fails at execution time. Execution is handed to the background
// runner immediately.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	taskType := r.FormValue("task_type")
	inputText := r.FormValue("input_text")
	if taskType == "" || inputText == "" {
		http.Error(w, "task_type and input_text are required", http.StatusBadRequest)
		return
	}

	task, err := s.service.Submit(taskType, inputText)
	if err != nil {
		log.Printf("submit failed: %v", err)
		http.Error(w, "could not create task", http.StatusInternalServerError)
		return
	}
	s.runner.Enqueue(task.ID)

	writeJSON(w, http.StatusOK, map[string]string{
		"task_id": task.ID,
		"message": "Task submitted successfully",
	})
}

// handleTask shows a single task, as JSON (?format=json) or HTML.
func (s *Server) handleTask(w http.ResponseWriter, r *http.Request) {
	task, err := s.service.Get(r.URL.Query().Get("id"))
	if errors.Is(err, ErrTaskNotFound) {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("get task: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "json" {
		writeJSON(w, http.StatusOK, task)
		return
	}

	s.render(w, "task_detail.html", map[string]any{
		"Task":       task,
		"RawContent": rawContent(task),
	})
}

// rawContent renders the status-dependent body shown on the detail page.
func rawContent(t *Task) string {
	switch t.Status {
	case StatusCompleted:
		return t.ResultText
	case StatusFailed:
		return "Error:\n" + t.ErrorText
	case StatusProcessing:
		return "Task is still processing..."
	case StatusPending:
		return "Task is pending execution..."
	}
	return "No result available yet."
}

// handleTasks returns a JSON listing of all tasks, newest first.
func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	listings, err := s.listings()
	if err != nil {
		log.Printf("list tasks: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tasks": listings})
}

// handleTasksView renders the HTML listing, newest first.
func (s *Server) handleTasksView(w http.ResponseWriter, r *http.Request) {
	listings, err := s.listings()
	if err != nil {
		log.Printf("list tasks: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render(w, "tasks.html", map[string]any{"Tasks": listings})
}

func (s *Server) listings() ([]taskListing, error) {
	tasks, err := s.service.List()
	if err != nil {
		return nil, err
	}
	listings := make([]taskListing, 0, len(tasks))
	for i := len(tasks) - 1; i >= 0; i-- {
		t := tasks[i]
		listings = append(listings, taskListing{
			ID:        t.ID,
			Status:    t.Status,
			TaskType:  t.TaskType,
			CreatedAt: t.CreatedAt,
		})
	}
	return listings, nil
}

// handleResult returns the raw outcome text for a task: the result when
// completed, the error message when failed, empty otherwise.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	task, err := s.service.Get(r.URL.Query().Get("id"))
	if errors.Is(err, ErrTaskNotFound) {
		http.Error(w, "Task not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("get task: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	switch task.Status {
	case StatusCompleted:
		_, _ = w.Write([]byte(task.ResultText))
	case StatusFailed:
		_, _ = w.Write([]byte(task.ErrorText))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
