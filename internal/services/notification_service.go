package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"pos_manager/internal/models"
	"pos_manager/internal/payment"
	"pos_manager/pkg/webhook"
)

// NotificationService is an append-only, best-effort event log. None of the
// publish methods return an error: a failed or dropped notification must
// never abort the workflow that produced it.
type NotificationService interface {
	OrderConfirmation(order *models.Order, customerName, branchName string)
	PaymentConfirmation(result *payment.Result, orderID uint, amount float64)
	LoyaltyUpdate(customerID uint, pointsAdded, newBalance int)
	LowStockAlert(menuItemName, branchName string, currentStock, threshold int)
	InventoryUpdate(menuItemName, branchName string, quantityDeducted, newStock int)
	Error(errorType, message string)
	Recent(limit int) []models.Notification
}

type notificationService struct {
	mu      sync.Mutex
	events  []models.Notification
	maxSize int
	alerts  *webhook.Client
}

// NewNotificationService builds a sink holding at most maxSize events; the
// oldest are dropped first. alerts may be nil; when set, low-stock alerts
// are also forwarded to the webhook on a best-effort basis.
func NewNotificationService(maxSize int, alerts *webhook.Client) NotificationService {
	if maxSize <= 0 {
		maxSize = 100
	}
	return &notificationService{maxSize: maxSize, alerts: alerts}
}

func (s *notificationService) publish(eventType, title, message string) {
	s.mu.Lock()
	s.events = append(s.events, models.Notification{
		Type:      eventType,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
	})
	if len(s.events) > s.maxSize {
		s.events = s.events[len(s.events)-s.maxSize:]
	}
	s.mu.Unlock()

	log.Printf("[NOTIFICATION] %s: %s", eventType, message)
}

func (s *notificationService) OrderConfirmation(order *models.Order, customerName, branchName string) {
	s.publish(models.NotifyOrderConfirmation, "Order Confirmed",
		fmt.Sprintf("Order #%d has been confirmed for %s at %s. Total: %.0f", order.ID, customerName, branchName, order.TotalAmount))
}

func (s *notificationService) PaymentConfirmation(result *payment.Result, orderID uint, amount float64) {
	ref := result.TransactionID
	if ref == "" {
		ref = "cash"
	}
	s.publish(models.NotifyPaymentConfirmation, "Payment Successful",
		fmt.Sprintf("Payment of %.0f for order #%d was successful via %s", amount, orderID, ref))
}

func (s *notificationService) LoyaltyUpdate(customerID uint, pointsAdded, newBalance int) {
	s.publish(models.NotifyLoyaltyUpdate, "Loyalty Points Updated",
		fmt.Sprintf("Customer %d earned %d points, new balance: %d", customerID, pointsAdded, newBalance))
}

func (s *notificationService) LowStockAlert(menuItemName, branchName string, currentStock, threshold int) {
	message := fmt.Sprintf("Low stock: %s at %s has %d units left (threshold: %d)", menuItemName, branchName, currentStock, threshold)
	s.publish(models.NotifyLowStockAlert, "Low Stock Alert", message)

	if s.alerts != nil {
		go func() {
			if err := s.alerts.Send("Low Stock Alert", message); err != nil {
				log.Printf("Warning: low stock webhook failed: %v", err)
			}
		}()
	}
}

func (s *notificationService) InventoryUpdate(menuItemName, branchName string, quantityDeducted, newStock int) {
	s.publish(models.NotifyInventoryUpdate, "Inventory Updated",
		fmt.Sprintf("%s at %s: %d units deducted, new stock: %d", menuItemName, branchName, quantityDeducted, newStock))
}

func (s *notificationService) Error(errorType, message string) {
	s.publish(models.NotifyError, "Error", fmt.Sprintf("%s: %s", errorType, message))
}

// Recent returns up to limit events, newest first.
func (s *notificationService) Recent(limit int) []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	out := make([]models.Notification, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		out = append(out, s.events[i])
	}
	return out
}
