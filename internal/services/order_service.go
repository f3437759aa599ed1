package services

import (
	"pos_manager/internal/models"
	"pos_manager/internal/payment"
	"pos_manager/internal/repository"
)

// CreateOrderRequest is the cart submitted by a client.
type CreateOrderRequest struct {
	CustomerID            uint               `json:"customer_id"`
	BranchID              uint               `json:"branch_id"`
	Items                 []OrderItemRequest `json:"items"`
	PaymentType           string             `json:"payment_type"`
	PaymentDetails        payment.Request    `json:"payment_details"`
	LoyaltyPointsToRedeem int                `json:"loyalty_points_to_redeem"`
}

type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

// CreateOrderResult is returned for a successfully confirmed order.
type CreateOrderResult struct {
	Order           *models.Order         `json:"order"`
	Payment         *payment.Result       `json:"payment"`
	Loyalty         *models.LoyaltyResult `json:"loyalty"`
	LoyaltyDiscount float64               `json:"loyalty_discount"`
}

// OrderService orchestrates the order fulfillment workflow: it turns a cart
// into a priced, paid, stock-adjusted, loyalty-updated order, and owns the
// order lifecycle queries.
type OrderService interface {
	CreateOrder(req CreateOrderRequest) (*CreateOrderResult, error)
	GetOrderByID(id uint) (*models.Order, error)
	GetAllOrders() ([]models.Order, error)
	GetOrdersByCustomer(customerID uint) ([]models.Order, error)
	GetOrdersByBranch(branchID uint) ([]models.Order, error)
	UpdateOrderStatus(id uint, newStatus string) error
	CancelOrder(id uint) error
	GetStatistics() (*models.OrderStatistics, error)
	GetCompensations() ([]models.CompensationEntry, error)
}

type orderService struct {
	orderRepo        repository.OrderRepository
	customerRepo     repository.CustomerRepository
	branchRepo       repository.BranchRepository
	compensationRepo repository.CompensationRepository
	menu             MenuService
	inventory        InventoryService
	loyalty          LoyaltyService
	payments         PaymentService
	notifications    NotificationService
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	branchRepo repository.BranchRepository,
	compensationRepo repository.CompensationRepository,
	menu MenuService,
	inventory InventoryService,
	loyalty LoyaltyService,
	payments PaymentService,
	notifications NotificationService,
) OrderService {
	return &orderService{
		orderRepo:        orderRepo,
		customerRepo:     customerRepo,
		branchRepo:       branchRepo,
		compensationRepo: compensationRepo,
		menu:             menu,
		inventory:        inventory,
		loyalty:          loyalty,
		payments:         payments,
		notifications:    notifications,
	}
}

// CreateOrder executes the fulfillment sequence. Each step is an abort
// point; the workflow stops at the first error and returns it after a
// best-effort error notification. Side effects already applied before the
// failing step are not compensated automatically.
func (s *orderService) CreateOrder(req CreateOrderRequest) (*CreateOrderResult, error) {
	result, err := s.createOrder(req)
	if err != nil {
		s.notifications.Error("order_creation", err.Error())
	}
	return result, err
}

func (s *orderService) createOrder(req CreateOrderRequest) (*CreateOrderResult, error) {
	if err := validateCreateOrder(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(req.CustomerID)
	if err != nil {
		return nil, err
	}
	branch, err := s.branchRepo.GetByID(req.BranchID)
	if err != nil {
		return nil, err
	}

	// Build the items, snapshotting the current menu price and name. The
	// stock check here is advisory; the authoritative guard runs at
	// deduction time.
	var subtotal float64
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		menuItem, err := s.menu.GetMenuItem(line.MenuItemID)
		if err != nil {
			return nil, err
		}

		check, err := s.inventory.CheckStock(line.MenuItemID, req.BranchID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if !check.Available {
			return nil, &models.InsufficientStockError{
				MenuItemID:   line.MenuItemID,
				MenuItemName: menuItem.Name,
				Available:    check.CurrentStock,
				Requested:    line.Quantity,
			}
		}

		item := models.NewOrderItem(menuItem, line.Quantity)
		items = append(items, item)
		subtotal += item.Subtotal
	}

	// Redemption commits to the ledger now. If the payment below fails the
	// points are not restored; callers can observe this.
	totalAmount := subtotal
	var loyaltyDiscount float64
	if req.LoyaltyPointsToRedeem > 0 {
		redemption, err := s.loyalty.RedeemPoints(req.CustomerID, req.LoyaltyPointsToRedeem)
		if err != nil {
			return nil, err
		}
		loyaltyDiscount = redemption.DiscountAmount
		totalAmount = subtotal - loyaltyDiscount
		if totalAmount < 0 {
			totalAmount = 0
		}
	}

	order := &models.Order{
		CustomerID:    req.CustomerID,
		BranchID:      req.BranchID,
		TotalAmount:   totalAmount,
		PaymentType:   req.PaymentType,
		PaymentStatus: string(models.PaymentPending),
		OrderStatus:   string(models.OrderPending),
		Items:         items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	paymentResult, err := s.payments.Process(order, req.PaymentType, req.PaymentDetails)
	if err != nil {
		return nil, err
	}
	if !paymentResult.Success {
		if err := s.orderRepo.UpdateStatuses(order.ID, models.PaymentFailed, models.OrderCancelled); err != nil {
			return nil, err
		}
		return nil, &models.PaymentFailedError{Reason: paymentResult.Message}
	}

	// Payment has succeeded; any failure from here on leaves money taken
	// and the order unconfirmed, so it is recorded for manual review and
	// surfaced as fatal.
	if err := s.inventory.UpdateStock(order.Items, req.BranchID); err != nil {
		s.recordCompensation(order.ID, "stock_deduction", err)
		return nil, err
	}

	loyaltyResult, err := s.loyalty.AddPoints(req.CustomerID, totalAmount)
	if err != nil {
		s.recordCompensation(order.ID, "loyalty_accrual", err)
		return nil, err
	}

	if err := s.orderRepo.UpdateStatuses(order.ID, models.PaymentCompleted, models.OrderConfirmed); err != nil {
		s.recordCompensation(order.ID, "status_update", err)
		return nil, err
	}
	order.PaymentStatus = string(models.PaymentCompleted)
	order.OrderStatus = string(models.OrderConfirmed)

	s.notifications.OrderConfirmation(order, customer.Name, branch.Name)
	s.notifications.PaymentConfirmation(paymentResult, order.ID, totalAmount)
	s.notifications.LoyaltyUpdate(req.CustomerID, loyaltyResult.PointsAdded, loyaltyResult.NewBalance)

	return &CreateOrderResult{
		Order:           order,
		Payment:         paymentResult,
		Loyalty:         loyaltyResult,
		LoyaltyDiscount: loyaltyDiscount,
	}, nil
}

func validateCreateOrder(req CreateOrderRequest) error {
	if req.CustomerID == 0 || req.BranchID == 0 {
		return models.NewValidationError("customer_id and branch_id are required")
	}
	if len(req.Items) == 0 {
		return models.NewValidationError("order must contain at least one item")
	}
	if req.PaymentType == "" {
		return models.NewValidationError("payment_type is required")
	}
	if req.LoyaltyPointsToRedeem < 0 {
		return models.NewValidationError("loyalty_points_to_redeem must not be negative")
	}
	for _, line := range req.Items {
		if line.MenuItemID == 0 || line.Quantity <= 0 {
			return models.NewValidationError("each item requires a menu_item_id and a positive quantity")
		}
	}
	return nil
}

func (s *orderService) recordCompensation(orderID uint, step string, cause error) {
	entry := &models.CompensationEntry{OrderID: orderID, Step: step, Reason: cause.Error()}
	if err := s.compensationRepo.Create(entry); err != nil {
		s.notifications.Error("compensation_log", err.Error())
	}
}

func (s *orderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

func (s *orderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

func (s *orderService) GetOrdersByCustomer(customerID uint) ([]models.Order, error) {
	return s.orderRepo.GetByCustomer(customerID)
}

func (s *orderService) GetOrdersByBranch(branchID uint) ([]models.Order, error) {
	return s.orderRepo.GetByBranch(branchID)
}

// UpdateOrderStatus checks set membership only: any valid status may follow
// any other.
func (s *orderService) UpdateOrderStatus(id uint, newStatus string) error {
	if !models.ValidOrderStatus(newStatus) {
		return models.NewValidationError("invalid order status: %s", newStatus)
	}
	return s.orderRepo.UpdateOrderStatus(id, models.OrderStatus(newStatus))
}

// CancelOrder refuses completed orders. Stock deducted for a confirmed
// order is not restored on cancellation.
func (s *orderService) CancelOrder(id uint) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return err
	}
	if order.OrderStatus == string(models.OrderCompleted) {
		return &models.BusinessError{Message: "cannot cancel a completed order"}
	}
	return s.orderRepo.UpdateStatuses(id, models.PaymentRefunded, models.OrderCancelled)
}

func (s *orderService) GetStatistics() (*models.OrderStatistics, error) {
	return s.orderRepo.GetStatistics()
}

func (s *orderService) GetCompensations() ([]models.CompensationEntry, error) {
	return s.compensationRepo.GetAll()
}
