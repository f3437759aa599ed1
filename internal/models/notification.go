package models

import (
	"time"
)

// Notification event types.
const (
	NotifyOrderConfirmation   = "order_confirmation"
	NotifyPaymentConfirmation = "payment_confirmation"
	NotifyLoyaltyUpdate       = "loyalty_update"
	NotifyLowStockAlert       = "low_stock_alert"
	NotifyInventoryUpdate     = "inventory_update"
	NotifyError               = "error"
)

// Notification is an in-process event record. There is no delivery
// guarantee and no retry; producers treat the log as fire-and-forget.
type Notification struct {
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
