package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction log statuses. "error" marks gateway-level failures such as an
// unknown payment type, as opposed to a declined payment.
const (
	TxCompleted = "completed"
	TxFailed    = "failed"
	TxError     = "error"
)

// PaymentTransaction is an append-only log of every gateway invocation.
// Details holds the per-variant detail struct marshaled to JSON at the
// storage boundary; rows are never updated after insert.
type PaymentTransaction struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	OrderID     uint      `json:"order_id" gorm:"not null;index"`
	PaymentType string    `json:"payment_type" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Status      string    `json:"status" gorm:"not null"`
	Details     []byte    `json:"details" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentStatistics aggregates the transaction log.
type PaymentStatistics struct {
	TotalTransactions      int64                  `json:"total_transactions"`
	SuccessfulTransactions int64                  `json:"successful_transactions"`
	FailedTransactions     int64                  `json:"failed_transactions"`
	TotalRevenue           float64                `json:"total_revenue"`
	AverageTransaction     float64                `json:"average_transaction"`
	TypeBreakdown          []PaymentTypeBreakdown `json:"payment_type_breakdown"`
}

type PaymentTypeBreakdown struct {
	PaymentType string  `json:"payment_type"`
	Count       int64   `json:"count"`
	Revenue     float64 `json:"revenue"`
}

// CompensationEntry records a workflow step that failed after payment had
// already succeeded, leaving the order in a state that needs manual review.
// There is no automatic compensation of applied side effects.
type CompensationEntry struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"not null;index"`
	Step      string         `json:"step" gorm:"not null"`
	Reason    string         `json:"reason" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
