package repository

import (
	"pos_manager/internal/models"

	"gorm.io/gorm"
)

type CompensationRepository interface {
	Create(entry *models.CompensationEntry) error
	GetAll() ([]models.CompensationEntry, error)
	GetByOrder(orderID uint) ([]models.CompensationEntry, error)
}

type compensationRepository struct {
	db *gorm.DB
}

func NewCompensationRepository(db *gorm.DB) CompensationRepository {
	return &compensationRepository{db: db}
}

func (r *compensationRepository) Create(entry *models.CompensationEntry) error {
	return r.db.Create(entry).Error
}

func (r *compensationRepository) GetAll() ([]models.CompensationEntry, error) {
	var entries []models.CompensationEntry
	err := r.db.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *compensationRepository) GetByOrder(orderID uint) ([]models.CompensationEntry, error) {
	var entries []models.CompensationEntry
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}
