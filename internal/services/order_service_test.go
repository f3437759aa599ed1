package services

import (
	"errors"
	"testing"

	"pos_manager/internal/models"
	"pos_manager/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderTestEnv struct {
	orderRepo     *mockOrderRepo
	inventoryRepo *mockInventoryRepo
	loyaltyRepo   *mockLoyaltyRepo
	txRepo        *mockTransactionRepo
	compRepo      *mockCompensationRepo
	menuRepo      *mockMenuRepo
	branchRepo    *mockBranchRepo
	customerRepo  *mockCustomerRepo
	notifications NotificationService
	orders        OrderService
}

func newOrderTestEnv() *orderTestEnv {
	env := &orderTestEnv{
		orderRepo:     newMockOrderRepo(),
		inventoryRepo: newMockInventoryRepo(),
		loyaltyRepo:   newMockLoyaltyRepo(),
		txRepo:        newMockTransactionRepo(),
		compRepo:      newMockCompensationRepo(),
		menuRepo:      newMockMenuRepo(),
		branchRepo:    newMockBranchRepo(),
		customerRepo:  newMockCustomerRepo(),
	}
	env.notifications = NewNotificationService(100, nil)
	menu := NewMenuService(env.menuRepo, nil, 0)
	inventory := NewInventoryService(env.inventoryRepo, env.branchRepo, env.notifications)
	loyalty := NewLoyaltyService(env.loyaltyRepo)
	payments := NewPaymentService(env.txRepo)
	env.orders = NewOrderService(
		env.orderRepo, env.customerRepo, env.branchRepo, env.compRepo,
		menu, inventory, loyalty, payments, env.notifications,
	)
	return env
}

// seed installs one customer, one branch, and one 45000-priced menu item
// stocked at 100 units with a threshold of 10.
func (env *orderTestEnv) seed() {
	env.customerRepo.put(models.Customer{ID: 1, Name: "Nguyen Van A"})
	env.branchRepo.put(models.Branch{ID: 1, Name: "District 1"})
	env.menuRepo.put(models.MenuItem{ID: 1, Name: "Phin Sua Da", Price: 45000, Category: "coffee", Available: true})
	env.inventoryRepo.put(1, 1, 100, 10)
}

func (env *orderTestEnv) notificationCount(eventType string) int {
	count := 0
	for _, n := range env.notifications.Recent(0) {
		if n.Type == eventType {
			count++
		}
	}
	return count
}

func baseRequest() CreateOrderRequest {
	return CreateOrderRequest{
		CustomerID:  1,
		BranchID:    1,
		Items:       []OrderItemRequest{{MenuItemID: 1, Quantity: 2}},
		PaymentType: payment.TypeCash,
	}
}

func TestCreateOrderCashSuccess(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	result, err := env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 90000.0, result.Order.TotalAmount)
	assert.Equal(t, string(models.OrderConfirmed), result.Order.OrderStatus)
	assert.Equal(t, string(models.PaymentCompleted), result.Order.PaymentStatus)
	assert.True(t, result.Payment.Success)
	assert.Equal(t, 0.0, result.Payment.Change)

	stored, err := env.orderRepo.GetByID(result.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderConfirmed), stored.OrderStatus)
	assert.Equal(t, string(models.PaymentCompleted), stored.PaymentStatus)

	record, err := env.inventoryRepo.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 98, record.Quantity)

	assert.Equal(t, 9, result.Loyalty.PointsAdded)
	account, err := env.loyaltyRepo.GetByCustomer(1)
	require.NoError(t, err)
	assert.Equal(t, 9, account.Points)

	txs, err := env.txRepo.GetByOrder(result.Order.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxCompleted, txs[0].Status)

	assert.Equal(t, 1, env.notificationCount(models.NotifyOrderConfirmation))
	assert.Equal(t, 1, env.notificationCount(models.NotifyPaymentConfirmation))
	assert.Equal(t, 1, env.notificationCount(models.NotifyLoyaltyUpdate))
}

func TestCreateOrderCashWithChange(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	req := baseRequest()
	req.PaymentDetails = payment.Request{ReceivedAmount: 100000}

	result, err := env.orders.CreateOrder(req)
	require.NoError(t, err)
	assert.Equal(t, 10000.0, result.Payment.Change)
}

func TestCreateOrderRedeemDiscount(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()
	env.loyaltyRepo.put(1, 50)

	req := baseRequest()
	req.LoyaltyPointsToRedeem = 20

	result, err := env.orders.CreateOrder(req)
	require.NoError(t, err)

	// 90000 subtotal, 20 points worth 20000 off, 7 points back on 70000.
	assert.Equal(t, 20000.0, result.LoyaltyDiscount)
	assert.Equal(t, 70000.0, result.Order.TotalAmount)
	assert.Equal(t, result.Order.Subtotal()-result.LoyaltyDiscount, result.Order.TotalAmount)
	assert.Equal(t, 7, result.Loyalty.PointsAdded)

	account, err := env.loyaltyRepo.GetByCustomer(1)
	require.NoError(t, err)
	assert.Equal(t, 37, account.Points)
}

func TestCreateOrderInsufficientPoints(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()
	env.loyaltyRepo.put(1, 50)

	req := baseRequest()
	req.LoyaltyPointsToRedeem = 100

	result, err := env.orders.CreateOrder(req)
	assert.Nil(t, result)

	var pointsErr *models.InsufficientPointsError
	require.True(t, errors.As(err, &pointsErr))
	assert.Equal(t, 50, pointsErr.Available)
	assert.Equal(t, 100, pointsErr.Requested)

	// Rejected before the order or any payment existed.
	orders, _ := env.orderRepo.GetAll()
	assert.Empty(t, orders)
	stats, _ := env.txRepo.GetStatistics()
	assert.Zero(t, stats.TotalTransactions)

	account, _ := env.loyaltyRepo.GetByCustomer(1)
	assert.Equal(t, 50, account.Points)
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()
	env.inventoryRepo.put(1, 1, 5, 10)

	req := baseRequest()
	req.Items = []OrderItemRequest{{MenuItemID: 1, Quantity: 10}}

	result, err := env.orders.CreateOrder(req)
	assert.Nil(t, result)

	var stockErr *models.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)

	orders, _ := env.orderRepo.GetAll()
	assert.Empty(t, orders)
	stats, _ := env.txRepo.GetStatistics()
	assert.Zero(t, stats.TotalTransactions)

	record, _ := env.inventoryRepo.Get(1, 1)
	assert.Equal(t, 5, record.Quantity)
}

func TestCreateOrderCardDeclined(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	req := baseRequest()
	req.PaymentType = payment.TypeCard
	req.PaymentDetails = payment.Request{CardNumber: "12345678", CardHolder: "Nguyen Van A", CVV: "123"}

	result, err := env.orders.CreateOrder(req)
	assert.Nil(t, result)

	var payErr *models.PaymentFailedError
	require.True(t, errors.As(err, &payErr))

	// The order exists but is cancelled with a failed payment, the decline
	// is logged, and no stock or points moved.
	orders, _ := env.orderRepo.GetAll()
	require.Len(t, orders, 1)
	assert.Equal(t, string(models.OrderCancelled), orders[0].OrderStatus)
	assert.Equal(t, string(models.PaymentFailed), orders[0].PaymentStatus)

	txs, _ := env.txRepo.GetByOrder(orders[0].ID)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxFailed, txs[0].Status)

	record, _ := env.inventoryRepo.Get(1, 1)
	assert.Equal(t, 100, record.Quantity)
	_, err = env.loyaltyRepo.GetByCustomer(1)
	assert.Error(t, err)
}

func TestCreateOrderUnknownPaymentType(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	req := baseRequest()
	req.PaymentType = "bitcoin"

	result, err := env.orders.CreateOrder(req)
	assert.Nil(t, result)

	var validationErr *models.ValidationError
	require.True(t, errors.As(err, &validationErr))

	// The dispatch failure is still logged, as an error row.
	orders, _ := env.orderRepo.GetAll()
	require.Len(t, orders, 1)
	txs, _ := env.txRepo.GetByOrder(orders[0].ID)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxError, txs[0].Status)
}

func TestCreateOrderValidation(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	cases := []struct {
		name   string
		mutate func(*CreateOrderRequest)
	}{
		{"missing customer", func(r *CreateOrderRequest) { r.CustomerID = 0 }},
		{"missing branch", func(r *CreateOrderRequest) { r.BranchID = 0 }},
		{"no items", func(r *CreateOrderRequest) { r.Items = nil }},
		{"missing payment type", func(r *CreateOrderRequest) { r.PaymentType = "" }},
		{"negative redemption", func(r *CreateOrderRequest) { r.LoyaltyPointsToRedeem = -1 }},
		{"zero quantity", func(r *CreateOrderRequest) { r.Items[0].Quantity = 0 }},
		{"missing menu item", func(r *CreateOrderRequest) { r.Items[0].MenuItemID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(&req)

			result, err := env.orders.CreateOrder(req)
			assert.Nil(t, result)
			var validationErr *models.ValidationError
			assert.True(t, errors.As(err, &validationErr))
		})
	}
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	req := baseRequest()
	req.CustomerID = 99

	result, err := env.orders.CreateOrder(req)
	assert.Nil(t, result)
	var notFound *models.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "customer", notFound.Entity)
}

func TestCreateOrderStockDeductionFailureLogsCompensation(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()
	env.inventoryRepo.deductErr = errors.New("connection reset")

	result, err := env.orders.CreateOrder(baseRequest())
	assert.Nil(t, result)
	require.Error(t, err)

	// Payment succeeded before the deduction failed; the gap is recorded.
	entries, _ := env.compRepo.GetAll()
	require.Len(t, entries, 1)
	assert.Equal(t, "stock_deduction", entries[0].Step)
	assert.Equal(t, uint(1), entries[0].OrderID)

	txs, _ := env.txRepo.GetByOrder(1)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxCompleted, txs[0].Status)
}

func TestUpdateOrderStatus(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	result, err := env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	orderID := result.Order.ID

	// Any member of the status set is accepted, in any sequence.
	for _, status := range []string{"preparing", "ready", "completed", "pending"} {
		require.NoError(t, env.orders.UpdateOrderStatus(orderID, status))
		stored, _ := env.orderRepo.GetByID(orderID)
		assert.Equal(t, status, stored.OrderStatus)
	}

	err = env.orders.UpdateOrderStatus(orderID, "shipped")
	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))

	err = env.orders.UpdateOrderStatus(99, "ready")
	var notFound *models.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestCancelOrder(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	result, err := env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	orderID := result.Order.ID

	require.NoError(t, env.orders.CancelOrder(orderID))
	stored, _ := env.orderRepo.GetByID(orderID)
	assert.Equal(t, string(models.OrderCancelled), stored.OrderStatus)
	assert.Equal(t, string(models.PaymentRefunded), stored.PaymentStatus)

	// Cancellation does not put the deducted stock back.
	record, _ := env.inventoryRepo.Get(1, 1)
	assert.Equal(t, 98, record.Quantity)
}

func TestCancelOrderCompletedRejected(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	result, err := env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	require.NoError(t, env.orders.UpdateOrderStatus(result.Order.ID, "completed"))

	err = env.orders.CancelOrder(result.Order.ID)
	var businessErr *models.BusinessError
	require.True(t, errors.As(err, &businessErr))
}

func TestGetStatistics(t *testing.T) {
	env := newOrderTestEnv()
	env.seed()

	first, err := env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	_, err = env.orders.CreateOrder(baseRequest())
	require.NoError(t, err)
	require.NoError(t, env.orders.UpdateOrderStatus(first.Order.ID, "completed"))

	stats, err := env.orders.GetStatistics()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.CompletedOrders)
	assert.Equal(t, 180000.0, stats.TotalRevenue)
	assert.Equal(t, 90000.0, stats.AverageOrderValue)
}
