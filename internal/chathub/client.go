package chathub

import "workbench/backend/internal/models"

// Client is the interface for any type of connection attached to a hub
// topic (WebSocket, Telegram bridge, test doubles). It abstracts the
// underlying transport so the hub can fan out to all of them uniformly.
type Client interface {
	// GetSessionID returns the unique identifier of this connection.
	GetSessionID() string

	// GetSendChannel returns the channel the hub delivers broadcasts on.
	// Delivery order on this channel is the per-subscriber FIFO guarantee.
	GetSendChannel() chan<- models.ChatMessagePayload

	// Run starts the client's pumps, which move data between the send
	// channel and the underlying transport.
	Run()

	// Close releases the client. It must be safe to call more than once;
	// the hub calls it when a client is unsubscribed or dropped.
	Close()
}

// SessionState tracks a connection session's lifecycle.
type SessionState int32

const (
	// StateConnecting means the transport handshake is in progress and
	// the session has no topic membership yet.
	StateConnecting SessionState = iota
	// StateSubscribed means the session receives broadcasts and accepts
	// speak commands.
	StateSubscribed
	// StateTerminated is terminal: the session is off the topic and all
	// further inbound commands are ignored.
	StateTerminated
)
