package storage

import (
	"errors"

	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

// TaskScope narrows a task listing to one parent. Both nil lists every
// task, the original standalone index behavior.
type TaskScope struct {
	ProjectID  *uint
	CampaignID *uint
}

func (s *Service) ListTasks(scope TaskScope) ([]models.Task, error) {
	tx := s.DB.Order("created_at ASC")
	if scope.ProjectID != nil {
		tx = tx.Where("project_id = ?", *scope.ProjectID)
	}
	if scope.CampaignID != nil {
		tx = tx.Where("campaign_id = ?", *scope.CampaignID)
	}

	var tasks []models.Task
	if err := tx.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Service) GetTask(id uint) (*models.Task, error) {
	var task models.Task
	err := s.DB.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Service) CreateTask(t *models.Task) error {
	return s.DB.Create(t).Error
}

func (s *Service) UpdateTask(t *models.Task) error {
	return s.DB.Save(t).Error
}

func (s *Service) DeleteTask(id uint) error {
	return s.DB.Delete(&models.Task{}, id).Error
}
