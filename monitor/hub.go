// SPDX-License-Identifier: MIT

package monitor

import (
	"errors"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types.
const (
	TypeProgress = "progress"
	TypeDone     = "done"
)

// writeTimeout bounds a single client write so a stalled reader cannot hold
// up the solver goroutine that publishes.
const writeTimeout = 5 * time.Second

// ErrHubClosed is returned by Publish after Close.
var ErrHubClosed = errors.New("monitor: hub closed")

// Event is one progress notification.
type Event struct {
	Type      string
	Iteration int
	Error     float64
	Status    string
}

type wireEvent struct {
	Type      string   `json:"type"`
	Iteration int      `json:"iteration"`
	Error     *float64 `json:"error,omitempty"`
	Status    string   `json:"status"`
}

func (e Event) wire() wireEvent {
	w := wireEvent{Type: e.Type, Iteration: e.Iteration, Status: e.Status}
	if !math.IsInf(e.Error, 0) && !math.IsNaN(e.Error) {
		v := e.Error
		w.Error = &v
	}

	return w
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans events out to connected WebSocket clients. Safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*sync.Mutex // per-conn write lock
	last    *wireEvent
	closed  bool
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

// Clients reports the number of registered connections.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// ServeHTTP upgrades the request and keeps the client registered until it
// disconnects or the hub is closed. Incoming messages are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	closed := h.closed
	h.mu.RUnlock()
	if closed {
		http.Error(w, ErrHubClosed.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("monitor: websocket upgrade:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.clients[conn] = connMutex
	last := h.last
	// Hold connMutex until the replay is out so a concurrent Publish cannot
	// overtake it.
	connMutex.Lock()
	h.mu.Unlock()
	if last != nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		_ = conn.WriteJSON(last)
	}
	connMutex.Unlock()

	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Publish sends ev to every client and returns how many received it.
// Clients whose write fails are closed and dropped. Publish waits for every
// write, up to writeTimeout per stalled client; callers on a hot path go
// through a Feed instead.
func (h *Hub) Publish(ev Event) (int, error) {
	msg := ev.wire()

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return 0, ErrHubClosed
	}
	h.last = &msg
	h.mu.Unlock()

	h.mu.RLock()
	var failed []*websocket.Conn
	sent := 0
	for client, mutex := range h.clients {
		mutex.Lock()
		_ = client.SetWriteDeadline(time.Now().Add(writeTimeout))
		err := client.WriteJSON(msg)
		mutex.Unlock()
		if err != nil {
			log.Println("monitor: websocket write:", err)
			client.Close()
			failed = append(failed, client)
			continue
		}
		sent++
	}
	h.mu.RUnlock()

	if len(failed) > 0 {
		h.mu.Lock()
		for _, client := range failed {
			delete(h.clients, client)
		}
		h.mu.Unlock()
	}

	return sent, nil
}

// Close sends a close frame to every client, disconnects them and rejects
// further Publish and ServeHTTP calls. Close is idempotent.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	deadline := time.Now().Add(time.Second)
	for client, mutex := range h.clients {
		mutex.Lock()
		_ = client.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "solve finished"), deadline)
		client.Close()
		mutex.Unlock()
		delete(h.clients, client)
	}

	return nil
}
