package payment

import (
	"strings"
	"time"

	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/shopspring/decimal"
)

// Payment records money received against an invoice. Payments are
// immutable once recorded and live in a single store indexed by ID;
// an invoice's payment list is the query over its invoice ID, so the
// ledger and the invoice can never drift apart.
type Payment struct {
	ID        int             `json:"id"`
	InvoiceID int             `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
	Method    string          `json:"method"`
}

func (p *Payment) Validate() error {
	if p == nil {
		return ierr.NewError("payment cannot be nil").
			WithHint("Payment cannot be nil").
			Mark(ierr.ErrValidation)
	}
	if !p.Amount.IsPositive() {
		return ierr.NewError("payment amount must be positive").
			WithHint("Payment amount must be greater than zero").
			WithReportableDetails(map[string]any{
				"amount": p.Amount,
			}).
			Mark(ierr.ErrValidation)
	}
	if strings.TrimSpace(p.Method) == "" {
		return ierr.NewError("payment method is required").
			WithHint("Payment method is required").
			Mark(ierr.ErrValidation)
	}
	return nil
}
