package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health answers the load balancer's liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
