package storage

import (
	"errors"

	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

func (s *Service) ListProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.DB.Preload("Items").Order("created_at ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := s.DB.Preload("Items").First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) CreateProduct(p *models.Product) error {
	return s.DB.Create(p).Error
}

func (s *Service) UpdateProduct(p *models.Product) error {
	return s.DB.Save(p).Error
}

func (s *Service) DeleteProduct(id uint) error {
	return s.DB.Delete(&models.Product{}, id).Error
}

func (s *Service) ListItems(productID uint) ([]models.Item, error) {
	var items []models.Item
	err := s.DB.Where("product_id = ?", productID).Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) GetItem(id uint) (*models.Item, error) {
	var item models.Item
	err := s.DB.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) CreateItem(i *models.Item) error {
	return s.DB.Create(i).Error
}

func (s *Service) UpdateItem(i *models.Item) error {
	return s.DB.Save(i).Error
}

func (s *Service) DeleteItem(id uint) error {
	return s.DB.Delete(&models.Item{}, id).Error
}
