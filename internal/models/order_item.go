package models

import (
	"time"
)

// OrderItem snapshots the menu item's name and price at order time.
// Rows are written once when the order is created and never updated.
type OrderItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	OrderID      uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID   uint      `json:"menu_item_id" gorm:"not null"`
	MenuItemName string    `json:"menu_item_name" gorm:"not null"`
	Quantity     int       `json:"quantity" gorm:"not null"`
	UnitPrice    float64   `json:"unit_price" gorm:"not null"`
	Subtotal     float64   `json:"subtotal" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewOrderItem(menuItem *MenuItem, quantity int) OrderItem {
	return OrderItem{
		MenuItemID:   menuItem.ID,
		MenuItemName: menuItem.Name,
		Quantity:     quantity,
		UnitPrice:    menuItem.Price,
		Subtotal:     float64(quantity) * menuItem.Price,
	}
}
