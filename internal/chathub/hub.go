package chathub

import (
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

// ChatTopic is the single global topic every chat session subscribes to.
const ChatTopic = "chat_channel"

// sendBuffer is the per-client delivery queue depth. A client whose queue
// is full when a broadcast arrives is dropped rather than stalling the
// fan-out for everyone else.
const sendBuffer = 256

type subscription struct {
	Topic  string
	Client Client
}

type broadcast struct {
	Topic   string
	Payload models.ChatMessagePayload
}

// Hub is an explicit pub/sub registry: topic key -> session id -> client.
// It owns no message state; a payload published while a session is not
// subscribed is simply never seen by that session. All registry mutations
// and fan-outs go through the single Run loop, so subscribe, unsubscribe
// and broadcast are individually atomic and successive broadcasts reach
// each subscriber in publish order.
type Hub struct {
	topics map[string]map[string]Client

	registerCh   chan subscription
	unregisterCh chan subscription
	broadcastCh  chan broadcast
}

// NewHub creates an empty registry. Call Run in its own goroutine before
// using it.
func NewHub() *Hub {
	return &Hub{
		topics:       make(map[string]map[string]Client),
		registerCh:   make(chan subscription),
		unregisterCh: make(chan subscription),
		broadcastCh:  make(chan broadcast),
	}
}

// Subscribe registers a client on a topic. Subscribing the same session id
// again replaces the previous client and closes it.
func (h *Hub) Subscribe(topic string, c Client) {
	h.registerCh <- subscription{Topic: topic, Client: c}
}

// Unsubscribe removes a client from a topic and closes it. Removing a
// client that is not registered is a no-op.
func (h *Hub) Unsubscribe(topic string, c Client) {
	h.unregisterCh <- subscription{Topic: topic, Client: c}
}

// Broadcast delivers a payload to every client currently subscribed to
// the topic.
func (h *Hub) Broadcast(topic string, payload models.ChatMessagePayload) {
	h.broadcastCh <- broadcast{Topic: topic, Payload: payload}
}

// Run is the hub's dispatch loop.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.registerCh:
			h.handleRegister(sub)
		case sub := <-h.unregisterCh:
			h.handleUnregister(sub)
		case b := <-h.broadcastCh:
			h.handleBroadcast(b)
		}
	}
}

func (h *Hub) handleRegister(sub subscription) {
	clients, ok := h.topics[sub.Topic]
	if !ok {
		clients = make(map[string]Client)
		h.topics[sub.Topic] = clients
	}

	id := sub.Client.GetSessionID()
	if old, ok := clients[id]; ok && old != sub.Client {
		old.Close()
	}
	clients[id] = sub.Client
	logging.Logger.Info("session subscribed",
		zap.String("topic", sub.Topic), zap.String("session_id", id))
}

func (h *Hub) handleUnregister(sub subscription) {
	clients, ok := h.topics[sub.Topic]
	if !ok {
		return
	}

	id := sub.Client.GetSessionID()
	// Only drop the client that is actually registered; a stale
	// unsubscribe from a replaced client must not evict its successor.
	if current, ok := clients[id]; ok && current == sub.Client {
		delete(clients, id)
		sub.Client.Close()
		logging.Logger.Info("session unsubscribed",
			zap.String("topic", sub.Topic), zap.String("session_id", id))
	}
}

func (h *Hub) handleBroadcast(b broadcast) {
	for id, client := range h.topics[b.Topic] {
		select {
		case client.GetSendChannel() <- b.Payload:
		default:
			// The client's queue is full. Drop it so one stalled
			// connection cannot hold up delivery to the rest.
			delete(h.topics[b.Topic], id)
			client.Close()
			logging.Logger.Warn("dropped slow subscriber",
				zap.String("topic", b.Topic), zap.String("session_id", id))
		}
	}
}
