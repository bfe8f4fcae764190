package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/anirudhs/gymtrace/internal/app"
	"github.com/anirudhs/gymtrace/internal/pose"
	"github.com/anirudhs/gymtrace/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *app.App) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	a := app.New(app.Config{Store: s})
	a.SetDetector(pose.NewMockDetector())

	ts := httptest.NewServer(New(Config{Store: s, App: a}))
	t.Cleanup(ts.Close)
	return ts, a
}

func TestAPI_TrackingWorkflow(t *testing.T) {
	ts, _ := newTestServer(t)
	client := ts.Client()

	// 1. List supported exercises
	resp, err := client.Get(ts.URL + "/api/exercises")
	if err != nil {
		t.Fatalf("GET /api/exercises error = %v", err)
	}
	var listed struct {
		Exercises []string `json:"exercises"`
	}
	json.NewDecoder(resp.Body).Decode(&listed)
	resp.Body.Close()
	if len(listed.Exercises) == 0 {
		t.Fatal("expected at least one supported exercise")
	}

	// 2. Start tracking
	resp, err = client.Post(ts.URL+"/api/exercise/start/squats", "application/json", nil)
	if err != nil {
		t.Fatalf("POST start error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST start status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	resp.Body.Close()

	// 3. Live snapshot reports the active session
	resp, _ = client.Get(ts.URL + "/api/reps")
	var status struct {
		Active   bool   `json:"active"`
		Exercise string `json:"exercise"`
	}
	json.NewDecoder(resp.Body).Decode(&status)
	resp.Body.Close()
	if !status.Active || status.Exercise != "squats" {
		t.Fatalf("snapshot = %+v, want active squats session", status)
	}

	// 4. Stop tracking and get the saved workout back
	resp, err = client.Post(ts.URL+"/api/exercise/stop", "application/json", nil)
	if err != nil {
		t.Fatalf("POST stop error = %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST stop status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	var stopped struct {
		ID       string `json:"id"`
		Exercise string `json:"exercise"`
	}
	json.NewDecoder(resp.Body).Decode(&stopped)
	resp.Body.Close()
	if stopped.ID == "" || stopped.Exercise != "squats" {
		t.Fatalf("stopped workout = %+v", stopped)
	}

	// 5. The workout shows up in history
	resp, _ = client.Get(ts.URL + "/api/workouts")
	var history struct {
		Workouts []struct {
			ID string `json:"id"`
		} `json:"workouts"`
	}
	json.NewDecoder(resp.Body).Decode(&history)
	resp.Body.Close()
	if len(history.Workouts) != 1 || history.Workouts[0].ID != stopped.ID {
		t.Fatalf("history = %+v, want the stopped workout", history.Workouts)
	}

	// 6. Delete it
	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/api/workouts/"+stopped.ID, nil)
	resp, _ = client.Do(req)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want %d", resp.StatusCode, http.StatusNoContent)
	}
	resp.Body.Close()

	resp, _ = client.Get(ts.URL + "/api/workouts/" + stopped.ID)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("GET after delete status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
	resp.Body.Close()
}

func TestAPI_StartUnknownExercise(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Post(ts.URL+"/api/exercise/start/handstand", "application/json", nil)
	if err != nil {
		t.Fatalf("POST start error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestAPI_MetricsEndpoint(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestAPI_HealthCheck(t *testing.T) {
	srv := New(Config{})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var health struct {
		Status string `json:"status"`
		Uptime string `json:"uptime"`
	}
	json.NewDecoder(resp.Body).Decode(&health)

	if health.Status != "ok" {
		t.Errorf("status = %s, want ok", health.Status)
	}
}
