package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anirudhs/gymtrace/internal/store"
)

// WorkoutHandler handles HTTP requests for workout history.
type WorkoutHandler struct {
	store *store.Store
}

// NewWorkoutHandler creates a new WorkoutHandler with the given store.
func NewWorkoutHandler(s *store.Store) *WorkoutHandler {
	return &WorkoutHandler{store: s}
}

type listWorkoutsResponse struct {
	Workouts []workoutResponse `json:"workouts"`
}

type totalsResponse struct {
	Totals map[string]int `json:"totals"`
}

// toWorkoutResponse converts a store.Workout to its API shape.
func toWorkoutResponse(w *store.Workout) workoutResponse {
	return workoutResponse{
		ID:        w.ID,
		Exercise:  w.Exercise,
		Reps:      w.Reps,
		StartedAt: w.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		EndedAt:   w.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *WorkoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/workouts, /api/workouts/totals, /api/workouts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/workouts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/workouts
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
		return
	}

	if path == "totals" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h.totals(w, r)
		return
	}

	// Item endpoint: /api/workouts/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// list handles GET /api/workouts and returns workout history, optionally
// filtered with ?exercise={name}.
func (h *WorkoutHandler) list(w http.ResponseWriter, r *http.Request) {
	var (
		workouts []*store.Workout
		err      error
	)

	if exercise := r.URL.Query().Get("exercise"); exercise != "" {
		workouts, err = h.store.Workouts().ListByExercise(exercise)
	} else {
		workouts, err = h.store.Workouts().List()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workouts")
		return
	}

	response := listWorkoutsResponse{
		Workouts: make([]workoutResponse, 0, len(workouts)),
	}
	for _, workout := range workouts {
		response.Workouts = append(response.Workouts, toWorkoutResponse(workout))
	}

	writeJSON(w, http.StatusOK, response)
}

// totals handles GET /api/workouts/totals and returns lifetime rep counts
// per exercise.
func (h *WorkoutHandler) totals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.store.Workouts().TotalReps()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute totals")
		return
	}

	writeJSON(w, http.StatusOK, totalsResponse{Totals: totals})
}

// get handles GET /api/workouts/{id} and returns a single workout.
func (h *WorkoutHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	workout, err := h.store.Workouts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get workout")
		return
	}

	writeJSON(w, http.StatusOK, toWorkoutResponse(workout))
}

// delete handles DELETE /api/workouts/{id} and removes a workout.
func (h *WorkoutHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Workouts().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete workout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
