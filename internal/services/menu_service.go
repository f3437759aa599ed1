package services

import (
	"log"
	"time"

	"pos_manager/internal/models"
	"pos_manager/internal/redis"
	"pos_manager/internal/repository"
)

// MenuService resolves menu items for order building. Reads go through the
// Redis cache when one is configured; the database stays authoritative.
type MenuService interface {
	GetMenuItem(id uint) (*models.MenuItem, error)
	GetAllMenuItems() ([]models.MenuItem, error)
	CreateMenuItem(item *models.MenuItem) error
}

type menuService struct {
	menuRepo repository.MenuRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewMenuService(menuRepo repository.MenuRepository, cache *redis.Client, cacheTTL time.Duration) MenuService {
	return &menuService{menuRepo: menuRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *menuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	if s.cache != nil {
		if item, err := s.cache.GetMenuItem(id); err == nil {
			return item, nil
		}
	}

	item, err := s.menuRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetMenuItem(item, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache menu item %d: %v", id, err)
		}
	}
	return item, nil
}

func (s *menuService) GetAllMenuItems() ([]models.MenuItem, error) {
	return s.menuRepo.GetAll()
}

func (s *menuService) CreateMenuItem(item *models.MenuItem) error {
	if item.Name == "" || item.Price <= 0 {
		return models.NewValidationError("menu item requires a name and a positive price")
	}
	if err := s.menuRepo.Create(item); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.SetMenuItem(item, s.cacheTTL); err != nil {
			log.Printf("Warning: failed to cache menu item %d: %v", item.ID, err)
		}
	}
	return nil
}
