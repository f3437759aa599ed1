package services

import (
	"encoding/json"
	"log"

	"pos_manager/internal/models"
	"pos_manager/internal/payment"
	"pos_manager/internal/repository"
)

// PaymentService dispatches an order's payment to the matching method and
// appends exactly one transaction log row per invocation, whether the
// payment succeeded, was declined, or could not even be dispatched.
type PaymentService interface {
	Process(order *models.Order, paymentType string, req payment.Request) (*payment.Result, error)
	GetTransaction(id uint) (*models.PaymentTransaction, error)
	GetTransactionsByOrder(orderID uint) ([]models.PaymentTransaction, error)
	GetStatistics() (*models.PaymentStatistics, error)
}

type paymentService struct {
	transactionRepo repository.PaymentTransactionRepository
}

func NewPaymentService(transactionRepo repository.PaymentTransactionRepository) PaymentService {
	return &paymentService{transactionRepo: transactionRepo}
}

// Process never returns an error for a declined payment; the decline is the
// Result. The only error is an unrecognized payment type.
func (s *paymentService) Process(order *models.Order, paymentType string, req payment.Request) (*payment.Result, error) {
	method, err := payment.New(paymentType, order.TotalAmount, req)
	if err != nil {
		s.logTransaction(order.ID, paymentType, order.TotalAmount, models.TxError, map[string]string{"error": err.Error()})
		return nil, err
	}

	result := method.Process()

	status := models.TxCompleted
	if !result.Success {
		status = models.TxFailed
	}
	s.logTransaction(order.ID, method.Type(), order.TotalAmount, status, result.Details)

	return &result, nil
}

// logTransaction marshals the detail blob and appends the log row. Failures
// here are logged and swallowed: losing a log row must not break the
// payment flow.
func (s *paymentService) logTransaction(orderID uint, paymentType string, amount float64, status string, details interface{}) {
	blob, err := json.Marshal(details)
	if err != nil {
		log.Printf("Warning: failed to marshal payment details for order %d: %v", orderID, err)
		blob = nil
	}

	tx := &models.PaymentTransaction{
		OrderID:     orderID,
		PaymentType: paymentType,
		Amount:      amount,
		Status:      status,
		Details:     blob,
	}
	if err := s.transactionRepo.Create(tx); err != nil {
		log.Printf("Warning: failed to log payment transaction for order %d: %v", orderID, err)
	}
}

func (s *paymentService) GetTransaction(id uint) (*models.PaymentTransaction, error) {
	return s.transactionRepo.GetByID(id)
}

func (s *paymentService) GetTransactionsByOrder(orderID uint) ([]models.PaymentTransaction, error) {
	return s.transactionRepo.GetByOrder(orderID)
}

func (s *paymentService) GetStatistics() (*models.PaymentStatistics, error) {
	return s.transactionRepo.GetStatistics()
}
