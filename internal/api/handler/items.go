package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

type itemParams struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type itemRequest struct {
	Item itemParams `json:"item"`
}

func (p itemParams) apply(item *models.Item) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
}

// Item endpoints are always nested under their product; every handler
// resolves the parent first and 404s when it is missing or the item
// belongs to a different product.

func (h *Handler) ListItems(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.productExists(c, productID) {
		return
	}

	items, err := h.Store.ListItems(productID)
	if err != nil {
		logging.Logger.Error("failed to list items", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) GetItem(c *gin.Context) {
	_, item, ok := h.resolveItem(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) CreateItem(c *gin.Context) {
	productID, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.productExists(c, productID) {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item := models.Item{ProductID: productID}
	req.Item.apply(&item)
	if err := item.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.CreateItem(&item); err != nil {
		logging.Logger.Error("failed to create item", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) UpdateItem(c *gin.Context) {
	_, item, ok := h.resolveItem(c)
	if !ok {
		return
	}

	var req itemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Item.apply(item)
	if err := item.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.UpdateItem(item); err != nil {
		logging.Logger.Error("failed to update item", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	_, item, ok := h.resolveItem(c)
	if !ok {
		return
	}

	if err := h.Store.DeleteItem(item.ID); err != nil {
		logging.Logger.Error("failed to delete item", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) resolveItem(c *gin.Context) (uint, *models.Item, bool) {
	productID, ok := parseID(c, "id")
	if !ok {
		return 0, nil, false
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return 0, nil, false
	}
	if !h.productExists(c, productID) {
		return 0, nil, false
	}

	item, err := h.Store.GetItem(itemID)
	if err != nil {
		respondInternalError(c)
		return 0, nil, false
	}
	if item == nil || item.ProductID != productID {
		respondNotFound(c)
		return 0, nil, false
	}
	return productID, item, true
}

func (h *Handler) productExists(c *gin.Context, id uint) bool {
	product, err := h.Store.GetProduct(id)
	if err != nil {
		respondInternalError(c)
		return false
	}
	if product == nil {
		respondNotFound(c)
		return false
	}
	return true
}
