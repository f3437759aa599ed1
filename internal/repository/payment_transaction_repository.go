package repository

import (
	"errors"

	"pos_manager/internal/models"

	"gorm.io/gorm"
)

type PaymentTransactionRepository interface {
	Create(tx *models.PaymentTransaction) error
	GetByID(id uint) (*models.PaymentTransaction, error)
	GetByOrder(orderID uint) ([]models.PaymentTransaction, error)
	GetStatistics() (*models.PaymentStatistics, error)
}

type paymentTransactionRepository struct {
	db *gorm.DB
}

func NewPaymentTransactionRepository(db *gorm.DB) PaymentTransactionRepository {
	return &paymentTransactionRepository{db: db}
}

func (r *paymentTransactionRepository) Create(tx *models.PaymentTransaction) error {
	return r.db.Create(tx).Error
}

func (r *paymentTransactionRepository) GetByID(id uint) (*models.PaymentTransaction, error) {
	var tx models.PaymentTransaction
	err := r.db.First(&tx, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.NotFoundError{Entity: "payment transaction", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *paymentTransactionRepository) GetByOrder(orderID uint) ([]models.PaymentTransaction, error) {
	var txs []models.PaymentTransaction
	err := r.db.Where("order_id = ?", orderID).Order("created_at DESC").Find(&txs).Error
	return txs, err
}

func (r *paymentTransactionRepository) GetStatistics() (*models.PaymentStatistics, error) {
	var stats models.PaymentStatistics
	err := r.db.Model(&models.PaymentTransaction{}).Select(
		"COUNT(*) AS total_transactions, " +
			"SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) AS successful_transactions, " +
			"SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END) AS failed_transactions, " +
			"COALESCE(SUM(CASE WHEN status = 'completed' THEN amount ELSE 0 END), 0) AS total_revenue, " +
			"COALESCE(AVG(CASE WHEN status = 'completed' THEN amount END), 0) AS average_transaction").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.PaymentTransaction{}).
		Select("payment_type, COUNT(*) AS count, COALESCE(SUM(CASE WHEN status = 'completed' THEN amount ELSE 0 END), 0) AS revenue").
		Group("payment_type").
		Scan(&stats.TypeBreakdown).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
