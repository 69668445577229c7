// Package websocket keeps the set of connected realtime clients and fans
// envelopes out to them.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Envelope is the frame exchanged with clients in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func NewEnvelope(event string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err //nolint:wrapcheck
	}

	return Envelope{Event: event, Data: data}, nil
}

// Client is one connection. Send is closed by the hub on Unregister.
type Client struct {
	ID   string
	Send chan []byte
	conn Conn
}

func (c *Client) deliver(frame []byte) bool {
	select {
	case c.Send <- frame:
		return true
	default:
		return false
	}
}

func NewClient(conn Conn, sendBuffer int) *Client {
	return &Client{
		ID:   uuid.NewString(),
		Send: make(chan []byte, sendBuffer),
		conn: conn,
	}
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client.ID] = client

	log.Debug().Str("client", client.ID).Int("clients", len(h.clients)).Msg("websocket client registered")
}

// Unregister is safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.ID]; !ok {
		return
	}

	delete(h.clients, client.ID)
	close(client.Send)

	log.Debug().Str("client", client.ID).Int("clients", len(h.clients)).Msg("websocket client unregistered")
}

// Broadcast delivers env to every client except the one with id exceptID.
// A client whose buffer is full misses the frame.
func (h *Hub) Broadcast(env Envelope, exceptID string) {
	frame, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Str("event", env.Event).Msg("failed to marshal websocket envelope")

		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, client := range h.clients {
		if id == exceptID {
			continue
		}

		if !client.deliver(frame) {
			log.Warn().Str("client", id).Str("event", env.Event).Msg("websocket client buffer full, frame dropped")
		}
	}
}

// SendTo delivers env to a single registered client. It reports false when
// the client is gone or its buffer is full.
func (h *Hub) SendTo(client *Client, env Envelope) bool {
	frame, err := json.Marshal(env)
	if err != nil {
		return false
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if _, ok := h.clients[client.ID]; !ok {
		return false
	}

	return client.deliver(frame)
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
