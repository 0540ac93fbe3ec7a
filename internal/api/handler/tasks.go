package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
)

type taskParams struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type taskRequest struct {
	Task taskParams `json:"task"`
}

func (p taskParams) apply(task *models.Task) {
	if p.Title != nil {
		task.Title = *p.Title
	}
	if p.Completed != nil {
		task.Completed = *p.Completed
	}
}

// ListTasks is the standalone index: every task regardless of parent, in
// creation order.
func (h *Handler) ListTasks(c *gin.Context) {
	tasks, err := h.Store.ListTasks(storage.TaskScope{})
	if err != nil {
		logging.Logger.Error("failed to list tasks", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.Store.GetTask(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if task == nil {
		respondNotFound(c)
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a standalone task with no parent.
func (h *Handler) CreateTask(c *gin.Context) {
	h.createTask(c, nil, nil)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.Store.GetTask(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if task == nil {
		respondNotFound(c)
		return
	}
	h.updateTask(c, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.Store.GetTask(id)
	if err != nil {
		respondInternalError(c)
		return
	}
	if task == nil {
		respondNotFound(c)
		return
	}
	h.deleteTask(c, task)
}

// ListProjectTasks lists the tasks of one project, 404 when the project
// does not exist.
func (h *Handler) ListProjectTasks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.projectExists(c, id) {
		return
	}

	tasks, err := h.Store.ListTasks(storage.TaskScope{ProjectID: &id})
	if err != nil {
		logging.Logger.Error("failed to list project tasks", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateProjectTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.projectExists(c, id) {
		return
	}
	h.createTask(c, &id, nil)
}

func (h *Handler) ListCampaignTasks(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.campaignExists(c, id) {
		return
	}

	tasks, err := h.Store.ListTasks(storage.TaskScope{CampaignID: &id})
	if err != nil {
		logging.Logger.Error("failed to list campaign tasks", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateCampaignTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.campaignExists(c, id) {
		return
	}
	h.createTask(c, nil, &id)
}

// Nested member routes scope a task to its parent first; a task that
// belongs to a different parent is treated as missing, the way the
// original scoped lookups behave.

func (h *Handler) GetProjectTask(c *gin.Context) {
	task, ok := h.resolveProjectTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateProjectTask(c *gin.Context) {
	task, ok := h.resolveProjectTask(c)
	if !ok {
		return
	}
	h.updateTask(c, task)
}

func (h *Handler) DeleteProjectTask(c *gin.Context) {
	task, ok := h.resolveProjectTask(c)
	if !ok {
		return
	}
	h.deleteTask(c, task)
}

func (h *Handler) GetCampaignTask(c *gin.Context) {
	task, ok := h.resolveCampaignTask(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateCampaignTask(c *gin.Context) {
	task, ok := h.resolveCampaignTask(c)
	if !ok {
		return
	}
	h.updateTask(c, task)
}

func (h *Handler) DeleteCampaignTask(c *gin.Context) {
	task, ok := h.resolveCampaignTask(c)
	if !ok {
		return
	}
	h.deleteTask(c, task)
}

func (h *Handler) resolveProjectTask(c *gin.Context) (*models.Task, bool) {
	projectID, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	taskID, ok := parseID(c, "task_id")
	if !ok {
		return nil, false
	}
	if !h.projectExists(c, projectID) {
		return nil, false
	}

	task, err := h.Store.GetTask(taskID)
	if err != nil {
		respondInternalError(c)
		return nil, false
	}
	if task == nil || task.ProjectID == nil || *task.ProjectID != projectID {
		respondNotFound(c)
		return nil, false
	}
	return task, true
}

func (h *Handler) resolveCampaignTask(c *gin.Context) (*models.Task, bool) {
	campaignID, ok := parseID(c, "id")
	if !ok {
		return nil, false
	}
	taskID, ok := parseID(c, "task_id")
	if !ok {
		return nil, false
	}
	if !h.campaignExists(c, campaignID) {
		return nil, false
	}

	task, err := h.Store.GetTask(taskID)
	if err != nil {
		respondInternalError(c)
		return nil, false
	}
	if task == nil || task.CampaignID == nil || *task.CampaignID != campaignID {
		respondNotFound(c)
		return nil, false
	}
	return task, true
}

func (h *Handler) createTask(c *gin.Context, projectID, campaignID *uint) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	task := models.Task{ProjectID: projectID, CampaignID: campaignID}
	req.Task.apply(&task)
	if err := task.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.CreateTask(&task); err != nil {
		logging.Logger.Error("failed to create task", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) updateTask(c *gin.Context, task *models.Task) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Task.apply(task)
	if err := task.Validate(); err != nil {
		respondValidationError(c, err)
		return
	}

	if err := h.Store.UpdateTask(task); err != nil {
		logging.Logger.Error("failed to update task", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) deleteTask(c *gin.Context, task *models.Task) {
	if err := h.Store.DeleteTask(task.ID); err != nil {
		logging.Logger.Error("failed to delete task", zap.Error(err))
		respondInternalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) projectExists(c *gin.Context, id uint) bool {
	project, err := h.Store.GetProject(id)
	if err != nil {
		respondInternalError(c)
		return false
	}
	if project == nil {
		respondNotFound(c)
		return false
	}
	return true
}

func (h *Handler) campaignExists(c *gin.Context, id uint) bool {
	campaign, err := h.Store.GetCampaign(id)
	if err != nil {
		respondInternalError(c)
		return false
	}
	if campaign == nil {
		respondNotFound(c)
		return false
	}
	return true
}
