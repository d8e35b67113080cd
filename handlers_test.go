package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

// newTestServer wires a full server over a throwaway store with one account
// (admin/pw) and the echo and boom processors registered.
func newTestServer(t *testing.T) (*Server, *Service) {
	t.Helper()
	store := newTestStore(t)
	if _, err := store.CreateAccount("admin", "pw", ""); err != nil {
		t.Fatalf("create account: %v", err)
	}

	registry := NewRegistry()
	registry.Register("echo", echoProcessor)
	registry.Register("boom", func(_ context.Context, _ string) (string, error) {
		return "", errors.New("bad input")
	})

	service := NewService(store, registry)
	runner := NewRunner(service, 1, 4)
	t.Cleanup(runner.Stop)

	cfg := Config{Host: "127.0.0.1", Port: 0, Workers: 1, QueueSize: 4}
	return NewServer(cfg, store, service, runner), service
}

func doRequest(s *Server, req *http.Request, withAuth bool) *httptest.ResponseRecorder {
	if withAuth {
		req.SetBasicAuth("admin", "pw")
	}
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

// waitForTerminal polls until the task reaches a terminal state.
func waitForTerminal(t *testing.T, svc *Service, id string) *Task {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		task, err := svc.Get(id)
		if err != nil {
			t.Fatalf("get task: %v", err)
		}
		if task.Status.Terminal() {
			return task
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("task %s did not reach a terminal state", id)
	return nil
}

// ---------------------------------------------------------------------------
// Auth gating
// ---------------------------------------------------------------------------

func TestHealthzIsOpen(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/healthz", nil), false)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	s, _ := newTestServer(t)
	for _, path := range []string{"/", "/tasks", "/tasks/view", "/task?id=x", "/result?id=x"} {
		rec := doRequest(s, httptest.NewRequest(http.MethodGet, path, nil), false)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401 without credentials, got %d", path, rec.Code)
		}
		if rec.Header().Get("WWW-Authenticate") == "" {
			t.Fatalf("%s: expected WWW-Authenticate challenge", path)
		}
	}
}

func TestAuthWrongPassword(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.SetBasicAuth("admin", "nope")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad password, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Submit -> background execution -> fetch
// ---------------------------------------------------------------------------

func submitForm(s *Server, taskType, inputText string) *httptest.ResponseRecorder {
	form := url.Values{"task_type": {taskType}, "input_text": {inputText}}
	req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return doRequest(s, req, false)
}

func TestSubmitAndFetchJSON(t *testing.T) {
	s, svc := newTestServer(t)

	rec := submitForm(s, "echo", "hello")
	if rec.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var submitted struct {
		TaskID  string `json:"task_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&submitted); err != nil {
		t.Fatalf("decode submit response: %v", err)
	}
	if submitted.TaskID == "" {
		t.Fatal("expected a task_id")
	}

	waitForTerminal(t, svc, submitted.TaskID)

	req := httptest.NewRequest(http.MethodGet, "/task?id="+submitted.TaskID+"&format=json", nil)
	rec = doRequest(s, req, true)
	if rec.Code != http.StatusOK {
		t.Fatalf("get task: expected 200, got %d", rec.Code)
	}
	var task Task
	if err := json.NewDecoder(rec.Body).Decode(&task); err != nil {
		t.Fatalf("decode task: %v", err)
	}
	if task.Status != StatusCompleted || task.ResultText != "hello" {
		t.Fatalf("unexpected task: %+v", task)
	}
}

func TestSubmitUnknownTypeFailsLate(t *testing.T) {
	s, svc := newTestServer(t)

	rec := submitForm(s, "unregistered", "x")
	if rec.Code != http.StatusOK {
		t.Fatalf("submission must accept unknown types, got %d", rec.Code)
	}
	var submitted struct {
		TaskID string `json:"task_id"`
	}
	json.NewDecoder(rec.Body).Decode(&submitted)

	task := waitForTerminal(t, svc, submitted.TaskID)
	if task.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", task.Status)
	}
	if !strings.Contains(task.ErrorText, "unregistered") {
		t.Fatalf("error should name the type, got %q", task.ErrorText)
	}
}

func TestSubmitMissingFields(t *testing.T) {
	s, _ := newTestServer(t)
	rec := submitForm(s, "echo", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitMethodNotAllowed(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/submit", nil), false)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Task views
// ---------------------------------------------------------------------------

func TestTaskNotFoundHTTP(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/task?id=nope", nil), true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestResultPlainText(t *testing.T) {
	s, svc := newTestServer(t)
	task, _ := svc.Submit("echo", "raw output")
	if err := svc.Execute(context.Background(), task.ID); err != nil {
		t.Fatalf("execute: %v", err)
	}

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/result?id="+task.ID, nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if string(body) != "raw output" {
		t.Fatalf("expected raw result, got %q", string(body))
	}
}

func TestResultForFailedTask(t *testing.T) {
	s, svc := newTestServer(t)
	task, _ := svc.Submit("boom", "x")
	svc.Execute(context.Background(), task.ID)

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/result?id="+task.ID, nil), true)
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "bad input") {
		t.Fatalf("expected error text, got %q", string(body))
	}
}

func TestTasksListingNewestFirst(t *testing.T) {
	s, svc := newTestServer(t)
	first, _ := svc.Submit("echo", "1")
	second, _ := svc.Submit("echo", "2")

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/tasks", nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload struct {
		Tasks []taskListing `json:"tasks"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode listing: %v", err)
	}
	if len(payload.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(payload.Tasks))
	}
	if payload.Tasks[0].ID != second.ID || payload.Tasks[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", payload.Tasks[0].ID, payload.Tasks[1].ID)
	}
}

func TestIndexListsTaskTypes(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/", nil), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "echo") {
		t.Fatal("index should list registered task types")
	}
}

func TestUnknownPathIs404(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/no/such/page", nil), true)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
