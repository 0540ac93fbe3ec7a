package chathub_test

import (
	"github.com/stretchr/testify/mock"

	"workbench/backend/internal/models"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(topic string, payload models.ChatMessagePayload) {
	m.Called(topic, payload)
}
