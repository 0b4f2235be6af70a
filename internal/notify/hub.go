package notify

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Broadcaster is what handlers depend on; the concrete Hub satisfies it.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// Event is a single change notification pushed to connected clients.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

type client struct {
	id     string
	events chan []byte
}

// Hub fans change notifications out to all connected stream clients. Sends
// are non-blocking; a client that cannot keep up loses events rather than
// stalling the broadcast.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

// Register adds a new client and returns its id and event channel.
func (h *Hub) Register() (string, <-chan []byte) {
	c := &client{
		id:     uuid.NewString(),
		events: make(chan []byte, 64),
	}

	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()

	h.logger.Debug("Notification client connected", zap.String("client_id", c.id))
	return c.id, c.events
}

// Unregister removes a client and closes its channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	c, ok := h.clients[id]
	if ok {
		delete(h.clients, id)
	}
	h.mu.Unlock()

	if ok {
		close(c.events)
		h.logger.Debug("Notification client disconnected", zap.String("client_id", id))
	}
}

// Broadcast sends the event to every connected client.
func (h *Hub) Broadcast(event string, data any) {
	payload, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		h.logger.Error("Failed to marshal notification event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.events <- payload:
		default:
			h.logger.Warn("Dropping notification for slow client", zap.String("client_id", c.id))
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
