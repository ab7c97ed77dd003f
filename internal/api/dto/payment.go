package dto

import (
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest represents a request to record a payment
// against an invoice
type CreatePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Method string          `json:"method" binding:"required"`
}

// PaymentResponse represents a payment response
type PaymentResponse struct {
	ID        int             `json:"id"`
	InvoiceID int             `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
	Method    string          `json:"method"`
}

func NewPaymentResponse(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		InvoiceID: p.InvoiceID,
		Amount:    p.Amount,
		PaidAt:    p.PaidAt,
		Method:    p.Method,
	}
}

// ListPaymentsResponse represents an invoice's payment history
type ListPaymentsResponse struct {
	Items     []*PaymentResponse `json:"items"`
	TotalPaid decimal.Decimal    `json:"total_paid"`
}
