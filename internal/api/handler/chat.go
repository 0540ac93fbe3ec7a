package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"workbench/backend/internal/config"
	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

// ChatMessages returns the most recent chat log page in ascending
// creation order, the shape a client renders before subscribing.
func (h *Handler) ChatMessages(c *gin.Context) {
	messages, err := h.Store.RecentChatMessages(config.ChatHistoryLimit)
	if err != nil {
		logging.Logger.Error("failed to load chat history", zap.Error(err))
		respondInternalError(c)
		return
	}

	payloads := lo.Map(messages, func(m models.ChatMessage, _ int) models.ChatMessagePayload {
		return m.Payload()
	})
	c.JSON(http.StatusOK, payloads)
}
