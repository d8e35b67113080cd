// server.go wires the HTTP surface: routing, basic auth, JSON/HTML shaping.
// Everything of substance happens behind the Service boundary.
package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server serves the HTTP endpoints.
type Server struct {
	cfg        Config
	store      *Store
	service    *Service
	runner     *Runner
	templates  *template.Template
	httpServer *http.Server
}

// NewServer constructs a server over the service and its runner.
func NewServer(cfg Config, store *Store, service *Service, runner *Runner) *Server {
	s := &Server{
		cfg:       cfg,
		store:     store,
		service:   service,
		runner:    runner,
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.requireAuth(s.handleIndex))
	mux.HandleFunc("/submit", s.handleSubmit)
	mux.HandleFunc("/task", s.requireAuth(s.handleTask))
	mux.HandleFunc("/tasks", s.requireAuth(s.handleTasks))
	mux.HandleFunc("/tasks/view", s.requireAuth(s.handleTasksView))
	mux.HandleFunc("/result", s.requireAuth(s.handleResult))
	mux.HandleFunc("/healthz", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe blocks serving HTTP until Shutdown.
func (s *Server) ListenAndServe() error {
	log.Printf("listening on %s (workers=%d, queue=%d)", s.httpServer.Addr, s.cfg.Workers, s.cfg.QueueSize)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP listener and then the background runner.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	s.runner.Stop()
	return err
}

// requireAuth gates a handler behind HTTP basic auth checked against the
// accounts table.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || !authorize(s.store, user, pass) {
			w.Header().Set("WWW-Authenticate", `Basic realm="boomerang"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write json: %v", err)
	}
}
