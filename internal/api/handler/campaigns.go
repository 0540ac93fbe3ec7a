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

type campaignParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type campaignRequest struct {
	Campaign campaignParams `json:"campaign"`
}

func (p campaignParams) apply(campaign *models.Campaign) {
	if p.Name != nil {
		campaign.Name = *p.Name
	}
	if p.Description != nil {
		campaign.Description = *p.Description
	}
	if p.Status != nil {
		campaign.Status = *p.Status
	}
}

type campaignResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	TasksCount          int       `json:"tasks_count"`
	CompletedTasksCount int       `json:"completed_tasks_count"`
}

func newCampaignResponse(cp models.Campaign) campaignResponse {
	return campaignResponse{
		ID:          cp.ID,
		Name:        cp.Name,
		Description: cp.Description,
		Status:      cp.Status,
		CreatedAt:   cp.CreatedAt,
		UpdatedAt:   cp.UpdatedAt,
		TasksCount:  len(cp.Tasks),
		CompletedTasksCount: lo.CountBy(cp.Tasks, func(t models.Task) bool {
			return t.Completed
		}),
	}
}

func (h *Handler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.Store.ListCampaigns()
	if err != nil {
		logging.Logger.Error("failed to list campaigns", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, lo.Map(campaigns, func(cp models.Campaign, _ int) campaignResponse {
		return newCampaignResponse(cp)
	}))
}

func (h *Handler) GetCampaign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.Store.GetCampaign(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if campaign == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, newCampaignResponse(*campaign))
}

func (h *Handler) CreateCampaign(c *gin.Context) {
	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var campaign models.Campaign
	req.Campaign.apply(&campaign)
	if err := campaign.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.CreateCampaign(&campaign); err != nil {
		logging.Logger.Error("failed to create campaign", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, newCampaignResponse(campaign))
}

func (h *Handler) UpdateCampaign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.Store.GetCampaign(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if campaign == nil {
		respondNotFound(c)
		return
	}

	var req campaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Campaign.apply(campaign)
	if err := campaign.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.UpdateCampaign(campaign); err != nil {
		logging.Logger.Error("failed to update campaign", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, newCampaignResponse(*campaign))
}

func (h *Handler) DeleteCampaign(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.Store.GetCampaign(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if campaign == nil {
		respondNotFound(c)
		return
	}

	if err := h.Store.DeleteCampaign(id); err != nil {
		logging.Logger.Error("failed to delete campaign", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
