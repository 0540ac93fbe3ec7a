// Package handler wires the HTTP and WebSocket surface to the storage,
// chat and gallery services.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"workbench/backend/internal/chathub"
	"workbench/backend/internal/config"
	"workbench/backend/internal/gallery"
	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
)

// Handler carries every dependency the endpoints need.
type Handler struct {
	Store   storage.Storage
	Hub     *chathub.Hub
	Chat    *chathub.ChatService
	Gallery *gallery.Service
	Cfg     config.Config
}

// NewHandler Constructor
func NewHandler(store storage.Storage, hub *chathub.Hub, chat *chathub.ChatService, gal *gallery.Service, cfg config.Config) *Handler {
	return &Handler{Store: store, Hub: hub, Chat: chat, Gallery: gal, Cfg: cfg}
}

// RegisterRoutes attaches every endpoint to the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/up", h.Health)
	r.GET("/ws", h.ServeWs)
	r.GET("/uploads/:filename", h.ServeUpload)

	api := r.Group("/api")
	{
		api.GET("/session", h.CreateSession)
		api.GET("/chat_messages", h.ChatMessages)

		api.GET("/projects", h.ListProjects)
		api.POST("/projects", h.CreateProject)
		api.GET("/projects/:id", h.GetProject)
		api.PATCH("/projects/:id", h.UpdateProject)
		api.PUT("/projects/:id", h.UpdateProject)
		api.DELETE("/projects/:id", h.DeleteProject)
		api.GET("/projects/:id/tasks", h.ListProjectTasks)
		api.POST("/projects/:id/tasks", h.CreateProjectTask)
		api.GET("/projects/:id/tasks/:task_id", h.GetProjectTask)
		api.PATCH("/projects/:id/tasks/:task_id", h.UpdateProjectTask)
		api.PUT("/projects/:id/tasks/:task_id", h.UpdateProjectTask)
		api.DELETE("/projects/:id/tasks/:task_id", h.DeleteProjectTask)

		api.GET("/campaigns", h.ListCampaigns)
		api.POST("/campaigns", h.CreateCampaign)
		api.GET("/campaigns/:id", h.GetCampaign)
		api.PATCH("/campaigns/:id", h.UpdateCampaign)
		api.PUT("/campaigns/:id", h.UpdateCampaign)
		api.DELETE("/campaigns/:id", h.DeleteCampaign)
		api.GET("/campaigns/:id/tasks", h.ListCampaignTasks)
		api.POST("/campaigns/:id/tasks", h.CreateCampaignTask)
		api.GET("/campaigns/:id/tasks/:task_id", h.GetCampaignTask)
		api.PATCH("/campaigns/:id/tasks/:task_id", h.UpdateCampaignTask)
		api.PUT("/campaigns/:id/tasks/:task_id", h.UpdateCampaignTask)
		api.DELETE("/campaigns/:id/tasks/:task_id", h.DeleteCampaignTask)

		api.GET("/tasks", h.ListTasks)
		api.POST("/tasks", h.CreateTask)
		api.GET("/tasks/:id", h.GetTask)
		api.PATCH("/tasks/:id", h.UpdateTask)
		api.PUT("/tasks/:id", h.UpdateTask)
		api.DELETE("/tasks/:id", h.DeleteTask)

		api.GET("/products", h.ListProducts)
		api.POST("/products", h.CreateProduct)
		api.GET("/products/:id", h.GetProduct)
		api.PATCH("/products/:id", h.UpdateProduct)
		api.PUT("/products/:id", h.UpdateProduct)
		api.DELETE("/products/:id", h.DeleteProduct)
		api.GET("/products/:id/items", h.ListItems)
		api.POST("/products/:id/items", h.CreateItem)
		api.GET("/products/:id/items/:item_id", h.GetItem)
		api.PATCH("/products/:id/items/:item_id", h.UpdateItem)
		api.PUT("/products/:id/items/:item_id", h.UpdateItem)
		api.DELETE("/products/:id/items/:item_id", h.DeleteItem)

		api.GET("/gallery_images", h.ListGalleryImages)
		api.POST("/gallery_images", h.CreateGalleryImage)
		api.DELETE("/gallery_images/:id", h.DeleteGalleryImage)
	}
}

// parseID reads a positive integer path parameter. On failure it writes
// the 404 itself and reports false.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondNotFound(c)
		return 0, false
	}
	return uint(id), true
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func respondInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// respondValidationError renders a model constraint failure as
// 422 {"errors": {"field": ["reason"]}}.
func respondValidationError(c *gin.Context, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": gin.H{ve.Field: []string{ve.Reason}},
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"errors": gin.H{"base": []string{err.Error()}},
	})
}
