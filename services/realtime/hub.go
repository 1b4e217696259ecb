// Package realtime fans out marketplace state changes to WebSocket clients
// subscribed to named rooms. Delivery is best effort: there is no ack, no
// persistence and no replay; a disconnected subscriber misses events.
package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"localserve/models"
)

// Room name builders. Rooms are scoped per provider, per consumer and per
// booking-request chat thread.
func ProviderRoom(providerID int) string    { return fmt.Sprintf("provider_%d", providerID) }
func ConsumerRoom(consumerID string) string { return fmt.Sprintf("consumer_%s", consumerID) }
func ChatRoom(requestID int) string         { return fmt.Sprintf("chat_%d", requestID) }

// ChatService persists chat messages arriving over the socket. Satisfied by
// the booking store.
type ChatService interface {
	SendMessage(requestID int, sender, text string) models.ChatMessage
}

// Event is the wire envelope for both directions.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Hub tracks connected clients and their room subscriptions.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client

	Chat   ChatService
	logger *zap.Logger
}

// NewHub creates a hub. Run must be started on its own goroutine.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run processes client registration and teardown.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.drop(client)
			h.mu.Unlock()
		}
	}
}

// drop disconnects a client: closes its send channel (once) and removes it
// from every room it joined, not just the one being broadcast to. Leaving a
// closed channel behind in another room would panic the next Emit there.
// Callers must hold the write lock.
func (h *Hub) drop(client *Client) {
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	for room, members := range h.rooms {
		if members[client] {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

// JoinRoom subscribes a client to a named room.
func (h *Hub) JoinRoom(room string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]bool)
		h.rooms[room] = members
	}
	members[client] = true
}

// Emit broadcasts a named event to every member of a room. Clients whose
// send buffer is full are dropped rather than blocked on.
func (h *Hub) Emit(room, event string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("Failed to marshal event payload",
			zap.String("event", event), zap.Error(err))
		return
	}
	msg, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.rooms[room] {
		select {
		case client.send <- msg:
		default:
			h.drop(client)
		}
	}
}

// NotifyProvider emits an event to the provider's room.
func (h *Hub) NotifyProvider(providerID int, event string, payload any) {
	h.Emit(ProviderRoom(providerID), event, payload)
}

// NotifyConsumer emits an event to the consumer's room.
func (h *Hub) NotifyConsumer(consumerID string, event string, payload any) {
	h.Emit(ConsumerRoom(consumerID), event, payload)
}

// NotifyChat emits an event to the booking request's chat room.
func (h *Hub) NotifyChat(requestID int, event string, payload any) {
	h.Emit(ChatRoom(requestID), event, payload)
}
