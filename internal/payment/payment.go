// Package payment implements the four interchangeable payment methods used
// at the register. A Method is a transient computation object: it carries no
// persistent identity and is consumed exactly once by the payment service,
// which logs the outcome. Declined payments are results, not errors; the
// only error a caller can see is an unrecognized payment type.
package payment

import (
	"strings"

	"pos_manager/internal/models"
)

const (
	TypeCash    = "cash"
	TypeCard    = "card"
	TypeEWallet = "ewallet"
	TypeQR      = "qr"
)

// Request carries the type-specific inputs supplied by the client. Only the
// fields relevant to the chosen payment type are read.
type Request struct {
	ReceivedAmount float64 `json:"received_amount"`
	CardNumber     string  `json:"card_number"`
	CardHolder     string  `json:"card_holder"`
	CVV            string  `json:"cvv"`
	WalletType     string  `json:"wallet_type"`
	PhoneNumber    string  `json:"phone_number"`
	QRCode         string  `json:"qr_code"`
}

// Result is the outcome of processing a payment. Details holds the
// variant-specific receipt; it is marshaled to bytes only at the storage
// boundary.
type Result struct {
	Success       bool        `json:"success"`
	Message       string      `json:"message"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Change        float64     `json:"change,omitempty"`
	Details       interface{} `json:"details,omitempty"`
}

type Method interface {
	Process() Result
	Type() string
}

// New selects the payment method for paymentType, carrying amount and the
// type-specific fields from req.
func New(paymentType string, amount float64, req Request) (Method, error) {
	switch strings.ToLower(paymentType) {
	case TypeCash:
		received := req.ReceivedAmount
		if received == 0 {
			received = amount
		}
		return &CashPayment{Amount: amount, ReceivedAmount: received}, nil
	case TypeCard:
		return &CardPayment{Amount: amount, CardNumber: req.CardNumber, CardHolder: req.CardHolder, CVV: req.CVV}, nil
	case TypeEWallet:
		walletType := req.WalletType
		if walletType == "" {
			walletType = "Momo"
		}
		return &EWalletPayment{Amount: amount, WalletType: walletType, PhoneNumber: req.PhoneNumber}, nil
	case TypeQR:
		code := req.QRCode
		if code == "" {
			code = GenerateQRCode()
		}
		return &QRPayment{Amount: amount, QRCode: code}, nil
	default:
		return nil, models.NewValidationError("unsupported payment type: %s", paymentType)
	}
}
