package storage

import (
	"errors"

	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

func (s *Service) ListGalleryImages() ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := s.DB.Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (s *Service) GetGalleryImage(id uint) (*models.GalleryImage, error) {
	var img models.GalleryImage
	err := s.DB.First(&img, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (s *Service) CreateGalleryImage(img *models.GalleryImage) error {
	return s.DB.Create(img).Error
}

func (s *Service) DeleteGalleryImage(id uint) error {
	return s.DB.Delete(&models.GalleryImage{}, id).Error
}
