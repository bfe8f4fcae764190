package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/anirudhs/gymtrace/internal/exercise"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// statusInterval is the broadcast cadence for tracking snapshots.
const statusInterval = 100 * time.Millisecond

// StatusHandler broadcasts real-time tracking snapshots via WebSocket.
type StatusHandler struct {
	tracker *exercise.Tracker
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewStatusHandler creates a new StatusHandler for the given tracker.
func NewStatusHandler(tracker *exercise.Tracker) *StatusHandler {
	h := &StatusHandler{
		tracker: tracker,
		clients: make(map[*websocket.Conn]bool),
	}
	go h.broadcast()
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends the tracking snapshot to all connected clients. Repeat
// snapshots are skipped so idle sessions stay quiet on the wire.
func (h *StatusHandler) broadcast() {
	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	var last exercise.Status
	sent := false

	for range ticker.C {
		h.mu.RLock()
		empty := len(h.clients) == 0
		h.mu.RUnlock()
		if empty {
			continue
		}

		st := h.tracker.Status()
		if sent && st == last {
			continue
		}
		last = st
		sent = true

		h.mu.RLock()
		for conn := range h.clients {
			conn.WriteJSON(st)
		}
		h.mu.RUnlock()
	}
}
