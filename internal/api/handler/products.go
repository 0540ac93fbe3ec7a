package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

type productParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type productRequest struct {
	Product productParams `json:"product"`
}

func (p productParams) apply(product *models.Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Status != nil {
		product.Status = *p.Status
	}
}

type productResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	ItemsCount          int       `json:"items_count"`
	CompletedItemsCount int       `json:"completed_items_count"`
}

func newProductResponse(p models.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ItemsCount:  len(p.Items),
		CompletedItemsCount: lo.CountBy(p.Items, func(i models.Item) bool {
			return i.Completed
		}),
	}
}

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Store.ListProducts()
	if err != nil {
		logging.Logger.Error("failed to list products", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, lo.Map(products, func(p models.Product, _ int) productResponse {
		return newProductResponse(p)
	}))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(*product))
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var product models.Product
	req.Product.apply(&product)
	if err := product.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.CreateProduct(&product); err != nil {
		logging.Logger.Error("failed to create product", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, newProductResponse(product))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Product.apply(product)
	if err := product.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.UpdateProduct(product); err != nil {
		logging.Logger.Error("failed to update product", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, newProductResponse(*product))
}

// DeleteProduct removes the product and, via the FK cascade, its items.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.Store.GetProduct(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if product == nil {
		respondNotFound(c)
		return
	}

	if err := h.Store.DeleteProduct(id); err != nil {
		logging.Logger.Error("failed to delete product", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
