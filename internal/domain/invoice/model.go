package invoice

import (
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/tax"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. Monetary quantities
// (subtotal, tax, totals) are never stored; they are recomputed from
// the current items, region and discount on every read so that in-place
// edits can never leave a stale figure behind.
type Invoice struct {
	ID           int                 `json:"id"`
	ClientID     int                 `json:"client_id"`
	ClientName   string              `json:"client_name"`
	ClientEmail  string              `json:"client_email,omitempty"`
	ClientPhone  string              `json:"client_phone,omitempty"`
	Region       string              `json:"region"`
	DiscountKind types.DiscountType  `json:"discount_kind"`
	Discount     decimal.Decimal     `json:"discount"`
	CreatedAt    time.Time           `json:"created_at"`
	DueDate      time.Time           `json:"due_date"`
	Status       types.InvoiceStatus `json:"status"`
	Items        []Item              `json:"items"`
}

// Item is a single invoice line. Items have no identity of their own
// and are owned by exactly one invoice; updates replace the whole list.
type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Amount is the line total, unit price times quantity.
func (it Item) Amount() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Totals carries the full set of derived amounts for an invoice.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

// Subtotal sums the line amounts.
func (i *Invoice) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range i.Items {
		subtotal = subtotal.Add(item.Amount())
	}
	return subtotal
}

// Tax applies the region's VAT rate to the subtotal. A zero subtotal
// yields zero tax.
func (i *Invoice) Tax() decimal.Decimal {
	return i.Subtotal().Mul(tax.RateFor(i.Region))
}

// GrandTotal is the payable amount after tax and discount. A percentage
// discount scales subtotal+tax; a fixed discount is subtracted from it.
func (i *Invoice) GrandTotal() decimal.Decimal {
	taxed := i.Subtotal().Add(i.Tax())
	if i.DiscountKind == types.DiscountTypePercentage {
		factor := decimal.NewFromInt(1).Sub(i.Discount.Div(decimal.NewFromInt(100)))
		return taxed.Mul(factor)
	}
	return taxed.Sub(i.Discount)
}

// ComputeTotals derives all amounts given the invoice's recorded
// payments. TotalDue may be negative when the invoice is overpaid.
func (i *Invoice) ComputeTotals(payments []*payment.Payment) Totals {
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	grandTotal := i.GrandTotal()
	return Totals{
		Subtotal:   i.Subtotal(),
		Tax:        i.Tax(),
		GrandTotal: grandTotal,
		TotalPaid:  totalPaid,
		TotalDue:   grandTotal.Sub(totalPaid),
	}
}

// Validate enforces the structural invariants required before an
// invoice may be persisted or mutated.
func (i *Invoice) Validate() error {
	if len(i.Items) == 0 {
		return ierr.NewError("invoice must have at least one item").
			WithHint("Invoice must have at least one item").
			Mark(ierr.ErrValidation)
	}

	for _, item := range i.Items {
		if item.Name == "" {
			return ierr.NewError("item name is required").
				WithHint("Invoice item name is required").
				Mark(ierr.ErrValidation)
		}
		if item.UnitPrice.IsNegative() {
			return ierr.NewError("item unit price must be non negative").
				WithHint("Invoice item unit price must be non negative").
				WithReportableDetails(map[string]any{
					"item":       item.Name,
					"unit_price": item.UnitPrice,
				}).
				Mark(ierr.ErrValidation)
		}
		if item.Quantity < 1 {
			return ierr.NewError("item quantity must be at least 1").
				WithHint("Invoice item quantity must be at least 1").
				WithReportableDetails(map[string]any{
					"item":     item.Name,
					"quantity": item.Quantity,
				}).
				Mark(ierr.ErrValidation)
		}
	}

	if err := i.DiscountKind.Validate(); err != nil {
		return err
	}

	if i.DiscountKind == types.DiscountTypePercentage {
		if i.Discount.IsNegative() || i.Discount.GreaterThan(decimal.NewFromInt(100)) {
			return ierr.NewError("percentage discount must be between 0 and 100").
				WithHint("Percentage discount must be between 0 and 100").
				WithReportableDetails(map[string]any{
					"discount": i.Discount,
				}).
				Mark(ierr.ErrValidation)
		}
	} else if i.Discount.IsNegative() {
		return ierr.NewError("fixed discount must be non negative").
			WithHint("Fixed discount must be non negative").
			WithReportableDetails(map[string]any{
				"discount": i.Discount,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}
