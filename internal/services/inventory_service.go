package services

import (
	"pos_manager/internal/models"
	"pos_manager/internal/repository"
)

type InventoryService interface {
	CheckStock(menuItemID, branchID uint, quantity int) (*models.StockCheck, error)
	UpdateStock(items []models.OrderItem, branchID uint) error
	Restock(menuItemID, branchID uint, quantity int) (*models.InventoryRecord, error)
	UpdateThreshold(menuItemID, branchID uint, threshold int) error
	GetByBranch(branchID uint) ([]models.InventoryView, error)
	GetAll() ([]models.InventoryView, error)
	GetLowStock() ([]models.InventoryView, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	branchRepo    repository.BranchRepository
	notifications NotificationService
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, branchRepo repository.BranchRepository, notifications NotificationService) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, branchRepo: branchRepo, notifications: notifications}
}

// CheckStock is an advisory availability probe. A missing inventory row
// reads as unavailable with zero stock, not as an error.
func (s *inventoryService) CheckStock(menuItemID, branchID uint, quantity int) (*models.StockCheck, error) {
	record, err := s.inventoryRepo.Get(menuItemID, branchID)
	if err != nil {
		if isNotFound(err) {
			return &models.StockCheck{Available: false, CurrentStock: 0}, nil
		}
		return nil, err
	}
	return &models.StockCheck{
		Available:    record.Quantity >= quantity,
		CurrentStock: record.Quantity,
	}, nil
}

// UpdateStock deducts stock for each item through a guarded decrement. The
// first item the guard rejects aborts the call with InsufficientStockError;
// items already deducted in the same call are not rolled back.
func (s *inventoryService) UpdateStock(items []models.OrderItem, branchID uint) error {
	branchName := s.branchName(branchID)

	for _, item := range items {
		ok, err := s.inventoryRepo.DeductStock(item.MenuItemID, branchID, item.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			check, checkErr := s.CheckStock(item.MenuItemID, branchID, item.Quantity)
			available := 0
			if checkErr == nil {
				available = check.CurrentStock
			}
			return &models.InsufficientStockError{
				MenuItemID:   item.MenuItemID,
				MenuItemName: item.MenuItemName,
				Available:    available,
				Requested:    item.Quantity,
			}
		}

		record, err := s.inventoryRepo.Get(item.MenuItemID, branchID)
		if err != nil {
			return err
		}
		s.notifications.InventoryUpdate(item.MenuItemName, branchName, item.Quantity, record.Quantity)
		if record.Quantity <= record.LowStockThreshold {
			s.notifications.LowStockAlert(item.MenuItemName, branchName, record.Quantity, record.LowStockThreshold)
		}
	}
	return nil
}

func (s *inventoryService) Restock(menuItemID, branchID uint, quantity int) (*models.InventoryRecord, error) {
	if quantity <= 0 {
		return nil, models.NewValidationError("restock quantity must be greater than 0")
	}
	if err := s.inventoryRepo.Restock(menuItemID, branchID, quantity); err != nil {
		return nil, err
	}
	return s.inventoryRepo.Get(menuItemID, branchID)
}

func (s *inventoryService) UpdateThreshold(menuItemID, branchID uint, threshold int) error {
	if threshold < 0 {
		return models.NewValidationError("low stock threshold must not be negative")
	}
	return s.inventoryRepo.UpdateThreshold(menuItemID, branchID, threshold)
}

func (s *inventoryService) GetByBranch(branchID uint) ([]models.InventoryView, error) {
	return s.inventoryRepo.ListByBranch(branchID)
}

func (s *inventoryService) GetAll() ([]models.InventoryView, error) {
	return s.inventoryRepo.ListAll()
}

func (s *inventoryService) GetLowStock() ([]models.InventoryView, error) {
	return s.inventoryRepo.ListLowStock()
}

func (s *inventoryService) branchName(branchID uint) string {
	branch, err := s.branchRepo.GetByID(branchID)
	if err != nil {
		return "unknown branch"
	}
	return branch.Name
}
