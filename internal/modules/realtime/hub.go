package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ChangeEvent tells connected clients that a table changed; clients
// re-fetch. Delivery is fire-and-forget, at-most-once, no replay.
type ChangeEvent struct {
	Table  string    `json:"table"`
	Action string    `json:"action"`
	ID     int64     `json:"id,omitempty"`
	At     time.Time `json:"at"`
}

type Hub struct {
	connections map[int64]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(userID int64, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[userID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[userID] = conn
}

func (h *Hub) Unregister(userID int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[userID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, userID)
	}
}

// Publish broadcasts a change event to every open session. Dead
// connections are dropped on write failure.
func (h *Hub) Publish(table, action string, id int64) {
	event := ChangeEvent{
		Table:  table,
		Action: action,
		ID:     id,
		At:     time.Now(),
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn == nil {
			delete(h.connections, userID)
			continue
		}
		if err := conn.WriteJSON(event); err != nil {
			_ = conn.Close()
			delete(h.connections, userID)
		}
	}
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, userID)
	}
}
