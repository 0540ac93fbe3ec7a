package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"workbench/backend/internal/config"
	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
)

// projectParams is the writable subset of a project. Pointer fields let
// a partial update leave omitted attributes untouched.
type projectParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type projectRequest struct {
	Project projectParams `json:"project"`
}

func (p projectParams) apply(project *models.Project) {
	if p.Name != nil {
		project.Name = *p.Name
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
}

type projectResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
	TasksCount          int       `json:"tasks_count"`
	CompletedTasksCount int       `json:"completed_tasks_count"`
}

func newProjectResponse(p models.Project) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		TasksCount:  len(p.Tasks),
		CompletedTasksCount: lo.CountBy(p.Tasks, func(t models.Task) bool {
			return t.Completed
		}),
	}
}

// ListProjects supports filtering by status, case-insensitive name
// search, whitelisted sorting and pagination with a meta block.
func (h *Handler) ListProjects(c *gin.Context) {
	q := storage.ProjectQuery{
		Status:  c.Query("status"),
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Order:   c.Query("order"),
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", config.DefaultPageSize),
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = config.DefaultPageSize
	}
	if q.PerPage > config.MaxPageSize {
		q.PerPage = config.MaxPageSize
	}

	projects, total, err := h.Store.ListProjects(q)
	if err != nil {
		logging.Logger.Error("failed to list projects", zap.Error(err))
		respondInternalError(c)
		return
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	c.JSON(http.StatusOK, gin.H{
		"data": lo.Map(projects, func(p models.Project, _ int) projectResponse {
			return newProjectResponse(p)
		}),
		"meta": gin.H{
			"page":          q.Page,
			"per_page":      q.PerPage,
			"total_count":   total,
			"total_pages":   totalPages,
			"has_next_page": q.Page < totalPages,
			"has_prev_page": q.Page > 1,
		},
	})
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if project == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, newProjectResponse(*project))
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var project models.Project
	req.Project.apply(&project)
	if err := project.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.CreateProject(&project); err != nil {
		logging.Logger.Error("failed to create project", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, newProjectResponse(project))
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if project == nil {
		respondNotFound(c)
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Project.apply(project)
	if err := project.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.UpdateProject(project); err != nil {
		logging.Logger.Error("failed to update project", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, newProjectResponse(*project))
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	project, err := h.Store.GetProject(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if project == nil {
		respondNotFound(c)
		return
	}

	if err := h.Store.DeleteProject(id); err != nil {
		logging.Logger.Error("failed to delete project", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
