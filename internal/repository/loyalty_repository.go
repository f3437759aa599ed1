package repository

import (
	"errors"

	"pos_manager/internal/models"

	"gorm.io/gorm"
)

type LoyaltyRepository interface {
	GetByCustomer(customerID uint) (*models.LoyaltyAccount, error)
	Create(account *models.LoyaltyAccount) error
	Save(account *models.LoyaltyAccount) error
	GetAll() ([]models.LoyaltyAccount, error)
	GetTop(limit int) ([]models.LoyaltyAccount, error)
}

type loyaltyRepository struct {
	db *gorm.DB
}

func NewLoyaltyRepository(db *gorm.DB) LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

func (r *loyaltyRepository) GetByCustomer(customerID uint) (*models.LoyaltyAccount, error) {
	var account models.LoyaltyAccount
	err := r.db.Where("customer_id = ?", customerID).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.NotFoundError{Entity: "loyalty account", ID: customerID}
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *loyaltyRepository) Create(account *models.LoyaltyAccount) error {
	return r.db.Create(account).Error
}

func (r *loyaltyRepository) Save(account *models.LoyaltyAccount) error {
	return r.db.Save(account).Error
}

func (r *loyaltyRepository) GetAll() ([]models.LoyaltyAccount, error) {
	var accounts []models.LoyaltyAccount
	err := r.db.Order("points DESC").Find(&accounts).Error
	return accounts, err
}

func (r *loyaltyRepository) GetTop(limit int) ([]models.LoyaltyAccount, error) {
	var accounts []models.LoyaltyAccount
	err := r.db.Order("points DESC").Limit(limit).Find(&accounts).Error
	return accounts, err
}
