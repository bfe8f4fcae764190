// Package api provides HTTP API handlers for the GymTrace exercise tracking system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/anirudhs/gymtrace/internal/app"
	"github.com/anirudhs/gymtrace/internal/exercise"
)

// ExerciseHandler handles HTTP requests for exercise tracking.
type ExerciseHandler struct {
	app *app.App
}

// NewExerciseHandler creates a new ExerciseHandler backed by the given app.
func NewExerciseHandler(a *app.App) *ExerciseHandler {
	return &ExerciseHandler{app: a}
}

// Response types

type listExercisesResponse struct {
	Exercises    []string `json:"exercises"`
	LastExercise string   `json:"last_exercise,omitempty"`
}

type startResponse struct {
	Status   string `json:"status"`
	Exercise string `json:"exercise"`
}

type workoutResponse struct {
	ID        string `json:"id"`
	Exercise  string `json:"exercise"`
	Reps      int    `json:"reps"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// List handles GET /api/exercises and returns the supported exercise names
// plus the most recently tracked one.
func (h *ExerciseHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, listExercisesResponse{
		Exercises:    exercise.Names(),
		LastExercise: h.app.LastExercise(),
	})
}

// Start handles POST /api/exercise/start/{name} and begins a tracking
// session for the named exercise.
func (h *ExerciseHandler) Start(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/exercise/start/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, http.StatusBadRequest, "Exercise name is required")
		return
	}

	if err := h.app.StartExercise(name); err != nil {
		if errors.Is(err, exercise.ErrUnknownExercise) {
			writeError(w, http.StatusBadRequest, "Unknown exercise: "+name)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to start exercise")
		return
	}

	writeJSON(w, http.StatusOK, startResponse{Status: "started", Exercise: name})
}

// Stop handles POST /api/exercise/stop, ends the active session, and
// returns the saved workout.
func (h *ExerciseHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	workout, err := h.app.StopExercise()
	if err != nil {
		if errors.Is(err, exercise.ErrNoSession) {
			writeError(w, http.StatusBadRequest, "No active session")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to stop exercise")
		return
	}

	writeJSON(w, http.StatusOK, workoutResponse{
		ID:        workout.ID,
		Exercise:  workout.Exercise,
		Reps:      workout.Reps,
		StartedAt: workout.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		EndedAt:   workout.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Reps handles GET /api/reps and returns the live tracking snapshot.
func (h *ExerciseHandler) Reps(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, h.app.Tracker().Status())
}
