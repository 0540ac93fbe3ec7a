package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"workbench/backend/internal/chathub"
	"workbench/backend/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The API is consumed cross-origin by the SPA dev server.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades the connection and attaches it to the chat topic.
// New subscribers receive broadcasts from this point on; there is no
// replay of earlier messages over the socket.
func (h *Handler) ServeWs(c *gin.Context) {
	sessionID := h.sessionIDFromRequest(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Logger.Warn("websocket upgrade failed",
			zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	client := chathub.NewWebSocketClient(sessionID, conn, h.Hub, h.Chat)
	h.Hub.Subscribe(chathub.ChatTopic, client)
	client.Run()
}
