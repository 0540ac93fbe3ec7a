package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"workbench/backend/internal/models"
)

// Storage is the persistence surface the handlers and the chat pipeline
// depend on. Lookup methods return (nil, nil) for a missing record so
// callers can distinguish "not found" from a database failure.
type Storage interface {
	// Chat
	SaveChatMessage(msg *models.ChatMessage) error
	RecentChatMessages(limit int) ([]models.ChatMessage, error)

	// Projects
	ListProjects(q ProjectQuery) ([]models.Project, int64, error)
	GetProject(id uint) (*models.Project, error)
	CreateProject(p *models.Project) error
	UpdateProject(p *models.Project) error
	DeleteProject(id uint) error

	// Campaigns
	ListCampaigns() ([]models.Campaign, error)
	GetCampaign(id uint) (*models.Campaign, error)
	CreateCampaign(c *models.Campaign) error
	UpdateCampaign(c *models.Campaign) error
	DeleteCampaign(id uint) error

	// Tasks
	ListTasks(scope TaskScope) ([]models.Task, error)
	GetTask(id uint) (*models.Task, error)
	CreateTask(t *models.Task) error
	UpdateTask(t *models.Task) error
	DeleteTask(id uint) error

	// Products and their items
	ListProducts() ([]models.Product, error)
	GetProduct(id uint) (*models.Product, error)
	CreateProduct(p *models.Product) error
	UpdateProduct(p *models.Product) error
	DeleteProduct(id uint) error
	ListItems(productID uint) ([]models.Item, error)
	GetItem(id uint) (*models.Item, error)
	CreateItem(i *models.Item) error
	UpdateItem(i *models.Item) error
	DeleteItem(id uint) error

	// Gallery
	ListGalleryImages() ([]models.GalleryImage, error)
	GetGalleryImage(id uint) (*models.GalleryImage, error)
	CreateGalleryImage(img *models.GalleryImage) error
	DeleteGalleryImage(id uint) error
}

// Service implements Storage over Postgres via gorm. Redis is optional and
// only used by the broadcast bridge; it may be nil.
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

var _ Storage = (*Service)(nil)

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
