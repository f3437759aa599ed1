package repository

import (
	"errors"

	"pos_manager/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetAll() ([]models.Order, error)
	GetByCustomer(customerID uint) ([]models.Order, error)
	GetByBranch(branchID uint) ([]models.Order, error)
	UpdateStatuses(id uint, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error
	UpdateOrderStatus(id uint, orderStatus models.OrderStatus) error
	GetStatistics() (*models.OrderStatistics, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order together with its items in one insert.
func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.NotFoundError{Entity: "order", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("customer_id = ?", customerID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByBranch(branchID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Where("branch_id = ?", branchID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatuses(id uint, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"payment_status": string(paymentStatus),
		"order_status":   string(orderStatus),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "order", ID: id}
	}
	return nil
}

func (r *orderRepository) UpdateOrderStatus(id uint, orderStatus models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Update("order_status", string(orderStatus))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "order", ID: id}
	}
	return nil
}

func (r *orderRepository) GetStatistics() (*models.OrderStatistics, error) {
	var stats models.OrderStatistics
	err := r.db.Model(&models.Order{}).Select(
		"COUNT(*) AS total_orders, " +
			"SUM(CASE WHEN order_status = 'completed' THEN 1 ELSE 0 END) AS completed_orders, " +
			"SUM(CASE WHEN order_status = 'cancelled' THEN 1 ELSE 0 END) AS cancelled_orders, " +
			"COALESCE(SUM(CASE WHEN payment_status = 'completed' THEN total_amount ELSE 0 END), 0) AS total_revenue, " +
			"COALESCE(AVG(CASE WHEN payment_status = 'completed' THEN total_amount END), 0) AS average_order_value").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
