package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans attempt events (countdown ticks, submission) out to the browser
// sessions watching that attempt.
type Hub struct {
	mu       sync.RWMutex
	attempts map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		attempts: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(attemptID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.attempts[attemptID] == nil {
		h.attempts[attemptID] = make(map[*websocket.Conn]bool)
	}
	h.attempts[attemptID][conn] = true
	log.Printf("ws: client connected to attempt %d (total: %d)", attemptID, len(h.attempts[attemptID]))
}

func (h *Hub) RemoveConnection(attemptID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.attempts[attemptID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.attempts, attemptID)
		}
		log.Printf("ws: client disconnected from attempt %d", attemptID)
	}
}

func (h *Hub) Broadcast(attemptID uint, message Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.attempts[attemptID]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
