package realtime

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks the live websocket connections so the panel can show how many
// viewers are attached and so shutdown can close them all.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]string // conn -> member id
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]string)}
}

// Register adds a connection for the given member.
func (h *Hub) Register(conn *websocket.Conn, memberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = memberID
}

// Unregister removes a connection. Safe to call twice.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Count returns the number of attached connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// CloseAll closes every connection; used on shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
}
