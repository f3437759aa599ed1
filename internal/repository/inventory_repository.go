package repository

import (
	"errors"

	"pos_manager/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Get(menuItemID, branchID uint) (*models.InventoryRecord, error)
	// DeductStock atomically decrements quantity by qty, guarded so the row
	// is only touched if the result stays non-negative. Returns false when
	// the guard rejected the decrement (or no row matched).
	DeductStock(menuItemID, branchID uint, qty int) (bool, error)
	Restock(menuItemID, branchID uint, qty int) error
	UpdateThreshold(menuItemID, branchID uint, threshold int) error
	ListByBranch(branchID uint) ([]models.InventoryView, error)
	ListAll() ([]models.InventoryView, error)
	ListLowStock() ([]models.InventoryView, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Get(menuItemID, branchID uint) (*models.InventoryRecord, error) {
	var record models.InventoryRecord
	err := r.db.Where("menu_item_id = ? AND branch_id = ?", menuItemID, branchID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeductStock relies on the quantity guard in the WHERE clause: two
// concurrent deductions cannot both pass it, so stock can never go negative
// regardless of what an earlier advisory check reported.
func (r *inventoryRepository) DeductStock(menuItemID, branchID uint, qty int) (bool, error) {
	result := r.db.Model(&models.InventoryRecord{}).
		Where("menu_item_id = ? AND branch_id = ? AND quantity >= ?", menuItemID, branchID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *inventoryRepository) Restock(menuItemID, branchID uint, qty int) error {
	result := r.db.Model(&models.InventoryRecord{}).
		Where("menu_item_id = ? AND branch_id = ?", menuItemID, branchID).
		Update("quantity", gorm.Expr("quantity + ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	return nil
}

func (r *inventoryRepository) UpdateThreshold(menuItemID, branchID uint, threshold int) error {
	result := r.db.Model(&models.InventoryRecord{}).
		Where("menu_item_id = ? AND branch_id = ?", menuItemID, branchID).
		Update("low_stock_threshold", threshold)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	return nil
}

const inventoryViewSelect = "inventory_records.id, inventory_records.menu_item_id, inventory_records.branch_id, " +
	"menu_items.name AS menu_item_name, branches.name AS branch_name, menu_items.price, menu_items.category, " +
	"inventory_records.quantity, inventory_records.low_stock_threshold"

func (r *inventoryRepository) viewQuery() *gorm.DB {
	return r.db.Model(&models.InventoryRecord{}).
		Select(inventoryViewSelect).
		Joins("JOIN menu_items ON menu_items.id = inventory_records.menu_item_id").
		Joins("JOIN branches ON branches.id = inventory_records.branch_id")
}

func (r *inventoryRepository) ListByBranch(branchID uint) ([]models.InventoryView, error) {
	var views []models.InventoryView
	err := r.viewQuery().Where("inventory_records.branch_id = ?", branchID).
		Order("menu_items.category, menu_items.name").Scan(&views).Error
	return views, err
}

func (r *inventoryRepository) ListAll() ([]models.InventoryView, error) {
	var views []models.InventoryView
	err := r.viewQuery().Order("branches.name, menu_items.category, menu_items.name").Scan(&views).Error
	return views, err
}

func (r *inventoryRepository) ListLowStock() ([]models.InventoryView, error) {
	var views []models.InventoryView
	err := r.viewQuery().Where("inventory_records.quantity <= inventory_records.low_stock_threshold").
		Order("inventory_records.quantity ASC").Scan(&views).Error
	return views, err
}
