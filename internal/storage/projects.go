package storage

import (
	"errors"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

// ProjectQuery carries the index endpoint's filter, sort and pagination
// parameters. Zero values mean "no filter" and the defaults below.
type ProjectQuery struct {
	Status  string
	Search  string
	Sort    string
	Order   string
	Page    int
	PerPage int
}

var projectSortColumns = []string{"created_at", "updated_at", "name", "status"}

// ListProjects returns one page of projects plus the total count of the
// filtered set. Sort column and direction are whitelisted; anything else
// falls back to created_at desc.
func (s *Service) ListProjects(q ProjectQuery) ([]models.Project, int64, error) {
	sort := q.Sort
	if !lo.Contains(projectSortColumns, sort) {
		sort = "created_at"
	}
	order := q.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	tx := s.DB.Model(&models.Project{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Search != "" {
		tx = tx.Where("name ILIKE ?", "%"+q.Search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := tx.Preload("Tasks").
		Order(sort + " " + order).
		Limit(q.PerPage).
		Offset((q.Page - 1) * q.PerPage).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (s *Service) GetProject(id uint) (*models.Project, error) {
	var project models.Project
	err := s.DB.Preload("Tasks").First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Service) CreateProject(p *models.Project) error {
	return s.DB.Create(p).Error
}

func (s *Service) UpdateProject(p *models.Project) error {
	return s.DB.Save(p).Error
}

func (s *Service) DeleteProject(id uint) error {
	return s.DB.Delete(&models.Project{}, id).Error
}
