// Package pdf renders payment receipts. The renderer consumes fully
// computed figures and performs no business calculation of its own.
package pdf

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptGenerator renders a payment receipt document
type ReceiptGenerator interface {
	GenerateReceipt(data *ReceiptData) ([]byte, error)
}

// ReceiptData carries everything a receipt needs, precomputed by the
// caller
type ReceiptData struct {
	ReceiptNumber int
	InvoiceID     int
	ClientName    string
	Region        string
	PaidAt        time.Time
	Method        string

	Items []ReceiptItem

	Subtotal decimal.Decimal
	// TaxPercent is tax as a share of the subtotal for display, already
	// guarded against a zero subtotal by the caller
	TaxPercent decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
	AmountPaid decimal.Decimal
	BalanceDue decimal.Decimal
}

// ReceiptItem is one invoice line on the receipt
type ReceiptItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
}
