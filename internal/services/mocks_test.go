package services

import (
	"sync"

	"pos_manager/internal/models"
)

// In-memory repository doubles. They keep just enough state to let the
// services run end to end; error fields force failures for the unhappy paths.

type mockOrderRepo struct {
	mu        sync.Mutex
	orders    map[uint]*models.Order
	nextID    uint
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[uint]*models.Order), nextID: 1}
}

func (m *mockOrderRepo) Create(order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.nextID
	m.nextID++
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	m.orders[order.ID] = &stored
	return nil
}

func (m *mockOrderRepo) GetByID(id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "order", ID: id}
	}
	copy := *order
	return &copy, nil
}

func (m *mockOrderRepo) GetAll() ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []models.Order
	for _, order := range m.orders {
		orders = append(orders, *order)
	}
	return orders, nil
}

func (m *mockOrderRepo) GetByCustomer(customerID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []models.Order
	for _, order := range m.orders {
		if order.CustomerID == customerID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) GetByBranch(branchID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var orders []models.Order
	for _, order := range m.orders {
		if order.BranchID == branchID {
			orders = append(orders, *order)
		}
	}
	return orders, nil
}

func (m *mockOrderRepo) UpdateStatuses(id uint, paymentStatus models.PaymentStatus, orderStatus models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return &models.NotFoundError{Entity: "order", ID: id}
	}
	order.PaymentStatus = string(paymentStatus)
	order.OrderStatus = string(orderStatus)
	return nil
}

func (m *mockOrderRepo) UpdateOrderStatus(id uint, orderStatus models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return &models.NotFoundError{Entity: "order", ID: id}
	}
	order.OrderStatus = string(orderStatus)
	return nil
}

func (m *mockOrderRepo) GetStatistics() (*models.OrderStatistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &models.OrderStatistics{}
	var revenue float64
	var paid int64
	for _, order := range m.orders {
		stats.TotalOrders++
		if order.OrderStatus == string(models.OrderCompleted) {
			stats.CompletedOrders++
		}
		if order.OrderStatus == string(models.OrderCancelled) {
			stats.CancelledOrders++
		}
		if order.PaymentStatus == string(models.PaymentCompleted) {
			revenue += order.TotalAmount
			paid++
		}
	}
	stats.TotalRevenue = revenue
	if paid > 0 {
		stats.AverageOrderValue = revenue / float64(paid)
	}
	return stats, nil
}

type invKey struct {
	menuItemID uint
	branchID   uint
}

type mockInventoryRepo struct {
	mu        sync.Mutex
	records   map[invKey]*models.InventoryRecord
	deductErr error
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{records: make(map[invKey]*models.InventoryRecord)}
}

func (m *mockInventoryRepo) put(menuItemID, branchID uint, quantity, threshold int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[invKey{menuItemID, branchID}] = &models.InventoryRecord{
		MenuItemID:        menuItemID,
		BranchID:          branchID,
		Quantity:          quantity,
		LowStockThreshold: threshold,
	}
}

func (m *mockInventoryRepo) Get(menuItemID, branchID uint) (*models.InventoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[invKey{menuItemID, branchID}]
	if !ok {
		return nil, &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	copy := *record
	return &copy, nil
}

// DeductStock mirrors the guarded decrement: check and mutate under one lock,
// refuse rather than go negative.
func (m *mockInventoryRepo) DeductStock(menuItemID, branchID uint, qty int) (bool, error) {
	if m.deductErr != nil {
		return false, m.deductErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[invKey{menuItemID, branchID}]
	if !ok || record.Quantity < qty {
		return false, nil
	}
	record.Quantity -= qty
	return true, nil
}

func (m *mockInventoryRepo) Restock(menuItemID, branchID uint, qty int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[invKey{menuItemID, branchID}]
	if !ok {
		return &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	record.Quantity += qty
	return nil
}

func (m *mockInventoryRepo) UpdateThreshold(menuItemID, branchID uint, threshold int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[invKey{menuItemID, branchID}]
	if !ok {
		return &models.NotFoundError{Entity: "inventory record", ID: menuItemID}
	}
	record.LowStockThreshold = threshold
	return nil
}

func (m *mockInventoryRepo) ListByBranch(branchID uint) ([]models.InventoryView, error) {
	return nil, nil
}

func (m *mockInventoryRepo) ListAll() ([]models.InventoryView, error) {
	return nil, nil
}

func (m *mockInventoryRepo) ListLowStock() ([]models.InventoryView, error) {
	return nil, nil
}

type mockLoyaltyRepo struct {
	mu       sync.Mutex
	accounts map[uint]*models.LoyaltyAccount
	nextID   uint
	saveErr  error
}

func newMockLoyaltyRepo() *mockLoyaltyRepo {
	return &mockLoyaltyRepo{accounts: make(map[uint]*models.LoyaltyAccount), nextID: 1}
}

func (m *mockLoyaltyRepo) put(customerID uint, points int) {
	account := &models.LoyaltyAccount{CustomerID: customerID, Points: points}
	account.RecalculateTier()
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	m.accounts[customerID] = account
}

func (m *mockLoyaltyRepo) GetByCustomer(customerID uint) (*models.LoyaltyAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[customerID]
	if !ok {
		return nil, &models.NotFoundError{Entity: "loyalty account", ID: customerID}
	}
	copy := *account
	return &copy, nil
}

func (m *mockLoyaltyRepo) Create(account *models.LoyaltyAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	account.ID = m.nextID
	m.nextID++
	stored := *account
	m.accounts[account.CustomerID] = &stored
	return nil
}

func (m *mockLoyaltyRepo) Save(account *models.LoyaltyAccount) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *account
	m.accounts[account.CustomerID] = &stored
	return nil
}

func (m *mockLoyaltyRepo) GetAll() ([]models.LoyaltyAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var accounts []models.LoyaltyAccount
	for _, account := range m.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

func (m *mockLoyaltyRepo) GetTop(limit int) ([]models.LoyaltyAccount, error) {
	accounts, _ := m.GetAll()
	if len(accounts) > limit {
		accounts = accounts[:limit]
	}
	return accounts, nil
}

type mockTransactionRepo struct {
	mu        sync.Mutex
	txs       []models.PaymentTransaction
	createErr error
}

func newMockTransactionRepo() *mockTransactionRepo {
	return &mockTransactionRepo{}
}

func (m *mockTransactionRepo) Create(tx *models.PaymentTransaction) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx.ID = uint(len(m.txs) + 1)
	m.txs = append(m.txs, *tx)
	return nil
}

func (m *mockTransactionRepo) GetByID(id uint) (*models.PaymentTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, tx := range m.txs {
		if tx.ID == id {
			copy := tx
			return &copy, nil
		}
	}
	return nil, &models.NotFoundError{Entity: "payment transaction", ID: id}
}

func (m *mockTransactionRepo) GetByOrder(orderID uint) ([]models.PaymentTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var txs []models.PaymentTransaction
	for _, tx := range m.txs {
		if tx.OrderID == orderID {
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (m *mockTransactionRepo) GetStatistics() (*models.PaymentStatistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := &models.PaymentStatistics{}
	for _, tx := range m.txs {
		stats.TotalTransactions++
		switch tx.Status {
		case models.TxCompleted:
			stats.SuccessfulTransactions++
			stats.TotalRevenue += tx.Amount
		case models.TxFailed:
			stats.FailedTransactions++
		}
	}
	if stats.SuccessfulTransactions > 0 {
		stats.AverageTransaction = stats.TotalRevenue / float64(stats.SuccessfulTransactions)
	}
	return stats, nil
}

type mockCompensationRepo struct {
	mu      sync.Mutex
	entries []models.CompensationEntry
}

func newMockCompensationRepo() *mockCompensationRepo {
	return &mockCompensationRepo{}
}

func (m *mockCompensationRepo) Create(entry *models.CompensationEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockCompensationRepo) GetAll() ([]models.CompensationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.CompensationEntry(nil), m.entries...), nil
}

func (m *mockCompensationRepo) GetByOrder(orderID uint) ([]models.CompensationEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []models.CompensationEntry
	for _, entry := range m.entries {
		if entry.OrderID == orderID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

type mockMenuRepo struct {
	items map[uint]*models.MenuItem
}

func newMockMenuRepo() *mockMenuRepo {
	return &mockMenuRepo{items: make(map[uint]*models.MenuItem)}
}

func (m *mockMenuRepo) put(item models.MenuItem) {
	m.items[item.ID] = &item
}

func (m *mockMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "menu item", ID: id}
	}
	copy := *item
	return &copy, nil
}

func (m *mockMenuRepo) GetAll() ([]models.MenuItem, error) {
	var items []models.MenuItem
	for _, item := range m.items {
		items = append(items, *item)
	}
	return items, nil
}

func (m *mockMenuRepo) Create(item *models.MenuItem) error {
	item.ID = uint(len(m.items) + 1)
	stored := *item
	m.items[item.ID] = &stored
	return nil
}

type mockBranchRepo struct {
	branches map[uint]*models.Branch
}

func newMockBranchRepo() *mockBranchRepo {
	return &mockBranchRepo{branches: make(map[uint]*models.Branch)}
}

func (m *mockBranchRepo) put(branch models.Branch) {
	m.branches[branch.ID] = &branch
}

func (m *mockBranchRepo) GetByID(id uint) (*models.Branch, error) {
	branch, ok := m.branches[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "branch", ID: id}
	}
	copy := *branch
	return &copy, nil
}

func (m *mockBranchRepo) GetAll() ([]models.Branch, error) {
	var branches []models.Branch
	for _, branch := range m.branches {
		branches = append(branches, *branch)
	}
	return branches, nil
}

func (m *mockBranchRepo) Create(branch *models.Branch) error {
	branch.ID = uint(len(m.branches) + 1)
	stored := *branch
	m.branches[branch.ID] = &stored
	return nil
}

type mockCustomerRepo struct {
	customers map[uint]*models.Customer
}

func newMockCustomerRepo() *mockCustomerRepo {
	return &mockCustomerRepo{customers: make(map[uint]*models.Customer)}
}

func (m *mockCustomerRepo) put(customer models.Customer) {
	m.customers[customer.ID] = &customer
}

func (m *mockCustomerRepo) GetByID(id uint) (*models.Customer, error) {
	customer, ok := m.customers[id]
	if !ok {
		return nil, &models.NotFoundError{Entity: "customer", ID: id}
	}
	copy := *customer
	return &copy, nil
}

func (m *mockCustomerRepo) GetAll() ([]models.Customer, error) {
	var customers []models.Customer
	for _, customer := range m.customers {
		customers = append(customers, *customer)
	}
	return customers, nil
}

func (m *mockCustomerRepo) Create(customer *models.Customer) error {
	customer.ID = uint(len(m.customers) + 1)
	stored := *customer
	m.customers[customer.ID] = &stored
	return nil
}
