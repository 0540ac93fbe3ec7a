package chathub

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize bounds an inbound frame: a speak command with a
	// maximal name and body plus JSON framing fits comfortably.
	maxMessageSize = 4096
)

// speakCommand is the inbound wire shape. Action is accepted both as
// "speak" and empty for clients that send the bare payload.
type speakCommand struct {
	Action   string `json:"action"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

// WebSocketClient is one browser connection: a hub subscription plus the
// read/write pumps moving frames over the socket. All lifecycle state is
// owned by the client's own goroutines; the hub only touches Send.
type WebSocketClient struct {
	SessionID string
	Conn      *websocket.Conn
	Hub       *Hub
	Chat      *ChatService
	Send      chan models.ChatMessagePayload

	state     atomic.Int32
	closeOnce sync.Once
}

// NewWebSocketClient wraps an upgraded connection. The caller subscribes
// it to a topic and then calls Run.
func NewWebSocketClient(sessionID string, conn *websocket.Conn, hub *Hub, chat *ChatService) *WebSocketClient {
	c := &WebSocketClient{
		SessionID: sessionID,
		Conn:      conn,
		Hub:       hub,
		Chat:      chat,
		Send:      make(chan models.ChatMessagePayload, sendBuffer),
	}
	c.state.Store(int32(StateConnecting))
	return c
}

func (c *WebSocketClient) GetSessionID() string { return c.SessionID }

func (c *WebSocketClient) GetSendChannel() chan<- models.ChatMessagePayload { return c.Send }

// State reports the session's lifecycle state.
func (c *WebSocketClient) State() SessionState {
	return SessionState(c.state.Load())
}

// Run marks the session subscribed and starts both pumps.
func (c *WebSocketClient) Run() {
	c.state.Store(int32(StateSubscribed))
	go c.writePump()
	go c.readPump()
}

// Close terminates the session and closes the send channel, which stops
// the write pump. Safe to call multiple times.
func (c *WebSocketClient) Close() {
	c.closeOnce.Do(func() {
		c.state.Store(int32(StateTerminated))
		close(c.Send)
	})
}

// readPump reads speak commands from the socket and hands them to the
// orchestrator. On any read error the session is torn down.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.Unsubscribe(ChatTopic, c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Logger.Warn("websocket read error",
					zap.String("session_id", c.SessionID), zap.Error(err))
			}
			break
		}

		var cmd speakCommand
		if err := json.Unmarshal(message, &cmd); err != nil {
			logging.Logger.Warn("invalid speak command",
				zap.String("session_id", c.SessionID), zap.Error(err))
			continue
		}
		if cmd.Action != "" && cmd.Action != "speak" {
			continue
		}
		if c.State() != StateSubscribed {
			continue
		}

		c.Chat.Post(cmd.UserName, cmd.Message)
	}
}

// writePump forwards hub deliveries to the socket and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel; tell the peer goodbye.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(payload)
			if err != nil {
				logging.Logger.Error("failed to encode payload",
					zap.String("session_id", c.SessionID), zap.Error(err))
				continue
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
