package handler_test

import (
	"github.com/stretchr/testify/mock"

	"workbench/backend/internal/models"
	"workbench/backend/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

var _ storage.Storage = (*MockStorage)(nil)

func (m *MockStorage) SaveChatMessage(msg *models.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockStorage) RecentChatMessages(limit int) ([]models.ChatMessage, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockStorage) ListProjects(q storage.ProjectQuery) ([]models.Project, int64, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockStorage) GetProject(id uint) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockStorage) CreateProject(p *models.Project) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStorage) UpdateProject(p *models.Project) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStorage) DeleteProject(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListCampaigns() ([]models.Campaign, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Campaign), args.Error(1)
}

func (m *MockStorage) GetCampaign(id uint) (*models.Campaign, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockStorage) CreateCampaign(c *models.Campaign) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) UpdateCampaign(c *models.Campaign) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) DeleteCampaign(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListTasks(scope storage.TaskScope) ([]models.Task, error) {
	args := m.Called(scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Task), args.Error(1)
}

func (m *MockStorage) GetTask(id uint) (*models.Task, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockStorage) CreateTask(t *models.Task) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockStorage) UpdateTask(t *models.Task) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockStorage) DeleteTask(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListProducts() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockStorage) GetProduct(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockStorage) CreateProduct(p *models.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStorage) UpdateProduct(p *models.Product) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockStorage) DeleteProduct(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListItems(productID uint) ([]models.Item, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Item), args.Error(1)
}

func (m *MockStorage) GetItem(id uint) (*models.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Item), args.Error(1)
}

func (m *MockStorage) CreateItem(i *models.Item) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockStorage) UpdateItem(i *models.Item) error {
	args := m.Called(i)
	return args.Error(0)
}

func (m *MockStorage) DeleteItem(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) ListGalleryImages() ([]models.GalleryImage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryImage), args.Error(1)
}

func (m *MockStorage) GetGalleryImage(id uint) (*models.GalleryImage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryImage), args.Error(1)
}

func (m *MockStorage) CreateGalleryImage(img *models.GalleryImage) error {
	args := m.Called(img)
	return args.Error(0)
}

func (m *MockStorage) DeleteGalleryImage(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
