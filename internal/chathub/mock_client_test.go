package chathub_test

import (
	"sync/atomic"

	"workbench/backend/internal/models"
)

// MockClient is an in-memory Client. RecvChannel exposes what the hub
// delivered so tests can assert on it.
type MockClient struct {
	sessionID   string
	RecvChannel chan models.ChatMessagePayload
	closed      atomic.Bool
}

func newMockClient(sessionID string) *MockClient {
	return &MockClient{
		sessionID:   sessionID,
		RecvChannel: make(chan models.ChatMessagePayload, 10),
	}
}

// newSlowMockClient has no delivery buffer at all, so any broadcast
// finds its queue full.
func newSlowMockClient(sessionID string) *MockClient {
	return &MockClient{
		sessionID:   sessionID,
		RecvChannel: make(chan models.ChatMessagePayload),
	}
}

func (c *MockClient) GetSessionID() string {
	return c.sessionID
}

func (c *MockClient) GetSendChannel() chan<- models.ChatMessagePayload {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed.Store(true)
}

func (c *MockClient) Closed() bool {
	return c.closed.Load()
}
