package models

import (
	"fmt"
)

// ValidationError marks malformed or missing client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// InsufficientStockError carries the available quantity against the request.
type InsufficientStockError struct {
	MenuItemID   uint
	MenuItemName string
	Available    int
	Requested    int
}

func (e *InsufficientStockError) Error() string {
	name := e.MenuItemName
	if name == "" {
		name = fmt.Sprintf("item ID %d", e.MenuItemID)
	}
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d", name, e.Available, e.Requested)
}

// InsufficientPointsError carries the point balance against the request.
type InsufficientPointsError struct {
	Available int
	Requested int
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points: available %d, requested %d", e.Available, e.Requested)
}

// PaymentFailedError is a business outcome, not a systemic fault. The
// workflow converts it into an order-abort path; it never crosses the HTTP
// boundary as a 5xx.
type PaymentFailedError struct {
	Reason string
}

func (e *PaymentFailedError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Reason)
}

// BusinessError marks an operation rejected by a business rule, such as
// cancelling a completed order.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string { return e.Message }
