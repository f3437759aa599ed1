package models

import (
	"time"
)

// InventoryRecord tracks the stock of one menu item at one branch.
// Quantity must never go below zero; the repository enforces this with a
// guarded decrement rather than a read-then-write.
type InventoryRecord struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	MenuItemID        uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_item_branch"`
	BranchID          uint      `json:"branch_id" gorm:"not null;uniqueIndex:idx_item_branch"`
	Quantity          int       `json:"quantity" gorm:"not null;default:0"`
	LowStockThreshold int       `json:"low_stock_threshold" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StockCheck is the result of an availability probe. It is advisory only:
// stock can change between the check and the deduction.
type StockCheck struct {
	Available    bool `json:"available"`
	CurrentStock int  `json:"current_stock"`
}

// InventoryView joins an inventory row with its menu item and branch names
// for listing endpoints.
type InventoryView struct {
	ID                uint    `json:"id"`
	MenuItemID        uint    `json:"menu_item_id"`
	BranchID          uint    `json:"branch_id"`
	MenuItemName      string  `json:"menu_item_name"`
	BranchName        string  `json:"branch_name"`
	Price             float64 `json:"price"`
	Category          string  `json:"category"`
	Quantity          int     `json:"quantity"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}
