package chathub

import (
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

// MessageStore is the slice of the storage layer the chat pipeline needs.
type MessageStore interface {
	SaveChatMessage(msg *models.ChatMessage) error
}

// Broadcaster is the publish side of the hub.
type Broadcaster interface {
	Broadcast(topic string, payload models.ChatMessagePayload)
}

// ChatService is the chat orchestrator: it validates an inbound post,
// persists it, and only after the durable commit publishes the stored
// message exactly once.
//
// The whole path is fire-and-forget. A post that fails validation or
// persistence is logged server-side and dropped; the sender gets no error
// back on the transport and must notice the missing broadcast echo.
type ChatService struct {
	store  MessageStore
	hub    Broadcaster
	bridge *Bridge
}

func NewChatService(store MessageStore, hub Broadcaster) *ChatService {
	return &ChatService{store: store, hub: hub}
}

// SetBridge attaches the optional Redis bridge so committed messages also
// reach subscribers on other nodes.
func (s *ChatService) SetBridge(b *Bridge) {
	s.bridge = b
}

// Post runs the two-stage pipeline: validate + persist, then publish.
func (s *ChatService) Post(userName, message string) {
	msg := &models.ChatMessage{UserName: userName, Message: message}
	msg.Normalize()

	if err := msg.Validate(); err != nil {
		logging.Logger.Warn("chat message rejected",
			zap.String("user_name", msg.UserName), zap.Error(err))
		return
	}

	if err := s.store.SaveChatMessage(msg); err != nil {
		logging.Logger.Error("failed to save chat message",
			zap.String("user_name", msg.UserName), zap.Error(err))
		return
	}

	// The row is committed; everything from here is delivery.
	payload := msg.Payload()
	s.hub.Broadcast(ChatTopic, payload)

	if s.bridge != nil {
		if err := s.bridge.Publish(payload); err != nil {
			logging.Logger.Error("failed to publish chat message to bridge",
				zap.Uint("id", payload.ID), zap.Error(err))
		}
	}
}
