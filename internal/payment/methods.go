package payment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CashDetails is the receipt for a completed cash payment.
type CashDetails struct {
	Received  float64 `json:"received"`
	Change    float64 `json:"change"`
	Timestamp string  `json:"timestamp"`
}

// CardDetails is the receipt for a completed card payment. Only the last
// four digits of the card number are retained.
type CardDetails struct {
	TransactionID string `json:"transaction_id"`
	CardLastFour  string `json:"card_last_four"`
	CardHolder    string `json:"card_holder"`
	Timestamp     string `json:"timestamp"`
}

// EWalletDetails is the receipt for a completed e-wallet payment.
type EWalletDetails struct {
	TransactionID string `json:"transaction_id"`
	WalletType    string `json:"wallet_type"`
	PhoneNumber   string `json:"phone_number"`
	Timestamp     string `json:"timestamp"`
}

// QRDetails is the receipt for a completed QR payment. The payload is
// truncated to a preview.
type QRDetails struct {
	TransactionID string `json:"transaction_id"`
	QRPreview     string `json:"qr_preview"`
	Timestamp     string `json:"timestamp"`
}

// DeclineDetails describes a declined payment.
type DeclineDetails struct {
	Error    string  `json:"error"`
	Received float64 `json:"received,omitempty"`
	Required float64 `json:"required,omitempty"`
}

type CashPayment struct {
	Amount         float64
	ReceivedAmount float64
}

func (p *CashPayment) Type() string { return TypeCash }

func (p *CashPayment) Process() Result {
	if p.ReceivedAmount < p.Amount {
		return Result{
			Success: false,
			Message: "insufficient cash provided",
			Details: DeclineDetails{Error: "insufficient cash", Received: p.ReceivedAmount, Required: p.Amount},
		}
	}
	change := p.ReceivedAmount - p.Amount
	return Result{
		Success: true,
		Message: "cash payment successful",
		Change:  change,
		Details: CashDetails{Received: p.ReceivedAmount, Change: change, Timestamp: timestamp()},
	}
}

type CardPayment struct {
	Amount     float64
	CardNumber string
	CardHolder string
	CVV        string
}

func (p *CardPayment) Type() string { return TypeCard }

func (p *CardPayment) Process() Result {
	if len(p.CardNumber) < 13 {
		return Result{Success: false, Message: "invalid card number", Details: DeclineDetails{Error: "invalid card number"}}
	}
	if len(p.CVV) < 3 {
		return Result{Success: false, Message: "invalid CVV", Details: DeclineDetails{Error: "invalid CVV"}}
	}
	txID := newTransactionID("CARD")
	return Result{
		Success:       true,
		Message:       "card payment successful",
		TransactionID: txID,
		Details: CardDetails{
			TransactionID: txID,
			CardLastFour:  p.CardNumber[len(p.CardNumber)-4:],
			CardHolder:    p.CardHolder,
			Timestamp:     timestamp(),
		},
	}
}

type EWalletPayment struct {
	Amount      float64
	WalletType  string
	PhoneNumber string
}

func (p *EWalletPayment) Type() string { return TypeEWallet }

func (p *EWalletPayment) Process() Result {
	if len(p.PhoneNumber) < 10 {
		return Result{Success: false, Message: "invalid phone number for e-wallet", Details: DeclineDetails{Error: "invalid phone number"}}
	}
	txID := newTransactionID(p.WalletType)
	return Result{
		Success:       true,
		Message:       fmt.Sprintf("%s payment successful", p.WalletType),
		TransactionID: txID,
		Details: EWalletDetails{
			TransactionID: txID,
			WalletType:    p.WalletType,
			PhoneNumber:   p.PhoneNumber,
			Timestamp:     timestamp(),
		},
	}
}

type QRPayment struct {
	Amount float64
	QRCode string
}

func (p *QRPayment) Type() string { return TypeQR }

func (p *QRPayment) Process() Result {
	if len(p.QRCode) < 10 {
		return Result{Success: false, Message: "invalid QR code", Details: DeclineDetails{Error: "invalid QR code"}}
	}
	txID := newTransactionID("QR")
	preview := p.QRCode
	if len(preview) > 10 {
		preview = preview[:10] + "..."
	}
	return Result{
		Success:       true,
		Message:       "QR payment successful",
		TransactionID: txID,
		Details:       QRDetails{TransactionID: txID, QRPreview: preview, Timestamp: timestamp()},
	}
}

// GenerateQRCode produces a payment payload for clients that did not supply
// one.
func GenerateQRCode() string {
	return fmt.Sprintf("QR-%d-%s", time.Now().Unix(), uuid.NewString()[:13])
}

func newTransactionID(prefix string) string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(prefix), uuid.NewString())
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
