package storage

import (
	"errors"

	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

func (s *Service) ListCampaigns() ([]models.Campaign, error) {
	var campaigns []models.Campaign
	if err := s.DB.Preload("Tasks").Order("created_at ASC").Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (s *Service) GetCampaign(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	err := s.DB.Preload("Tasks").First(&campaign, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *Service) CreateCampaign(c *models.Campaign) error {
	return s.DB.Create(c).Error
}

func (s *Service) UpdateCampaign(c *models.Campaign) error {
	return s.DB.Save(c).Error
}

func (s *Service) DeleteCampaign(id uint) error {
	return s.DB.Delete(&models.Campaign{}, id).Error
}
