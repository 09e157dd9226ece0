package utility

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const wsWriteTimeout = 5 * time.Second

// Event is pushed to every open dashboard socket of a user when their
// tracked data changes.
type Event struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// client serializes writes to one socket; gorilla allows a single writer.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Hub holds active connections: user id -> set of sockets (one per tab).
// mu guards the map only; socket writes happen outside it.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]*client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*websocket.Conn]*client)}
}

var (
	// Dashboards is the process-wide hub used by the HTTP handlers.
	Dashboards = NewHub()

	Upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

// Register a new client connection
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]*client)
	}
	h.clients[userID][conn] = &client{conn: conn}
	log.Info().Str("user_id", userID).Msg("WebSocket client connected")
}

// Unregister a client (when they close the tab)
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(userID, conn)
}

func (h *Hub) remove(userID string, conn *websocket.Conn) {
	conns, ok := h.clients[userID]
	if !ok {
		return
	}
	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
		log.Info().Str("user_id", userID).Msg("WebSocket client disconnected")
	}
	if len(conns) == 0 {
		delete(h.clients, userID)
	}
}

// Connections reports how many sockets the user has open.
func (h *Hub) Connections(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userID])
}

// snapshot copies the user's current sockets.
func (h *Hub) snapshot(userID string) []*client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*client, 0, len(h.clients[userID]))
	for _, c := range h.clients[userID] {
		out = append(out, c)
	}
	return out
}

// Notify sends an event to all of the user's sockets, dropping any that fail.
// A slow socket only delays its own user's notifications.
func (h *Hub) Notify(userID, eventType string) {
	event := Event{Type: eventType, At: time.Now().UTC()}
	for _, c := range h.snapshot(userID) {
		c.mu.Lock()
		c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		err := c.conn.WriteJSON(event)
		c.mu.Unlock()
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Failed to send WS message, removing client")
			h.Unregister(userID, c.conn)
		}
	}
}
