// Package server provides the HTTP server for the GymTrace exercise tracking system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/anirudhs/gymtrace/internal/app"
	"github.com/anirudhs/gymtrace/internal/server/api"
	"github.com/anirudhs/gymtrace/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	App       *app.App
}

// Server represents the HTTP server for the GymTrace application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register tracking endpoints if the App is configured
	if s.config.App != nil {
		exerciseHandler := api.NewExerciseHandler(s.config.App)
		s.mux.HandleFunc("/api/exercises", exerciseHandler.List)
		s.mux.HandleFunc("/api/exercise/start/", exerciseHandler.Start)
		s.mux.HandleFunc("/api/exercise/stop", exerciseHandler.Stop)
		s.mux.HandleFunc("/api/reps", exerciseHandler.Reps)

		s.mux.Handle("/api/stream", NewStreamHandler(s.config.App.Frames()))
		s.mux.Handle("/api/status", NewStatusHandler(s.config.App.Tracker()))
		s.mux.Handle("/metrics", s.config.App.Metrics().Handler())
	}

	// Register workout history handler if Store is configured
	if s.config.Store != nil {
		workoutHandler := api.NewWorkoutHandler(s.config.Store)
		s.mux.Handle("/api/workouts", workoutHandler)
		s.mux.Handle("/api/workouts/", workoutHandler)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
