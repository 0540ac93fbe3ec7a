package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"workbench/backend/internal/config"
	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
)

func TestCreateProject(t *testing.T) {
	// Arrange
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("CreateProject", mock.AnythingOfType("*models.Project")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.Project).ID = 1
		}).
		Return(nil)

	// Act
	w := doJSON(t, router, http.MethodPost, "/api/projects", map[string]any{
		"project": map[string]any{"name": "Website Redesign", "description": "New brand"},
	})

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, "Website Redesign", body["name"])
	assert.Equal(t, float64(0), body["tasks_count"])
}

func TestCreateProject_BlankName(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/projects", map[string]any{
		"project": map[string]any{"description": "no name"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	errs := body["errors"].(map[string]any)
	assert.Equal(t, []any{"can't be blank"}, errs["name"])
	store.AssertNotCalled(t, "CreateProject", mock.Anything)
}

func TestCreateProject_InvalidStatus(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	w := doJSON(t, router, http.MethodPost, "/api/projects", map[string]any{
		"project": map[string]any{"name": "Website", "status": "archived"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeBody(t, w)
	errs := body["errors"].(map[string]any)
	assert.Contains(t, errs, "status")
}

func TestListProjects_PaginationMeta(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("ListProjects", storage.ProjectQuery{
		Status: "active", Sort: "name", Order: "asc", Page: 2, PerPage: 2,
	}).Return([]models.Project{
		{Model: gorm.Model{ID: 3}, Name: "C", Status: "active"},
		{Model: gorm.Model{ID: 4}, Name: "D", Status: "active"},
	}, int64(5), nil)

	w := doJSON(t, router, http.MethodGet,
		"/api/projects?status=active&sort=name&order=asc&page=2&per_page=2", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	meta := body["meta"].(map[string]any)
	assert.Equal(t, float64(2), meta["page"])
	assert.Equal(t, float64(2), meta["per_page"])
	assert.Equal(t, float64(5), meta["total_count"])
	assert.Equal(t, float64(3), meta["total_pages"])
	assert.Equal(t, true, meta["has_next_page"])
	assert.Equal(t, true, meta["has_prev_page"])
	assert.Len(t, body["data"], 2)
}

func TestListProjects_ClampsPerPage(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("ListProjects", storage.ProjectQuery{Page: 1, PerPage: config.MaxPageSize}).
		Return([]models.Project{}, int64(0), nil)

	w := doJSON(t, router, http.MethodGet, "/api/projects?per_page=9999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	store.AssertExpectations(t)
}

func TestGetProject_CountsCompletedTasks(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("GetProject", uint(1)).Return(&models.Project{
		Model: gorm.Model{ID: 1}, Name: "Website", Status: "active",
		Tasks: []models.Task{
			{Title: "a", Completed: true},
			{Title: "b", Completed: false},
			{Title: "c", Completed: true},
		},
	}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/projects/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["tasks_count"])
	assert.Equal(t, float64(2), body["completed_tasks_count"])
}

func TestGetProject_NotFound(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("GetProject", uint(99)).Return(nil, nil)

	w := doJSON(t, router, http.MethodGet, "/api/projects/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProject_PartialUpdate(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("GetProject", uint(1)).Return(&models.Project{
		Model: gorm.Model{ID: 1}, Name: "Website", Description: "keep me", Status: "planning",
	}, nil)
	store.On("UpdateProject", mock.AnythingOfType("*models.Project")).Return(nil)

	// Only status in the body; name and description stay untouched.
	w := doJSON(t, router, http.MethodPatch, "/api/projects/1", map[string]any{
		"project": map[string]any{"status": "active"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	updated := store.Calls[1].Arguments.Get(0).(*models.Project)
	assert.Equal(t, "Website", updated.Name)
	assert.Equal(t, "keep me", updated.Description)
	assert.Equal(t, "active", updated.Status)
}

func TestDeleteProject(t *testing.T) {
	store := new(MockStorage)
	router := newTestRouter(store)

	store.On("GetProject", uint(1)).Return(&models.Project{Model: gorm.Model{ID: 1}, Name: "Website"}, nil)
	store.On("DeleteProject", uint(1)).Return(nil)

	w := doJSON(t, router, http.MethodDelete, "/api/projects/1", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}
