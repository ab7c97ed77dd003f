package invoice

import (
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
)

// DeriveStatus recomputes the lifecycle status of an invoice from its
// current amounts, due date and payment history. The whole status is
// re-derived on every call rather than transitioned incrementally.
//
// Rules are evaluated in a fixed order and the first match wins:
//
//  1. nothing due               -> Paid
//  2. payments, partially paid  -> Partial
//  3. past due with balance     -> Overdue
//  4. Draft with no payments    -> stays Draft
//  5. payments exist            -> Partial
//  6. otherwise                 -> Sent
//
// Rule 2 can never fire after rule 1 has been checked without rule 5
// also covering it; the ordering is kept because behavior depends on it.
func DeriveStatus(inv *Invoice, payments []*payment.Payment, now time.Time) types.InvoiceStatus {
	totals := inv.ComputeTotals(payments)
	hasPayments := len(payments) > 0

	switch {
	case totals.TotalDue.LessThanOrEqual(decimal.Zero):
		return types.InvoiceStatusPaid
	case hasPayments && totals.TotalDue.LessThan(totals.GrandTotal):
		return types.InvoiceStatusPartial
	case now.After(inv.DueDate) && totals.TotalDue.IsPositive():
		return types.InvoiceStatusOverdue
	case inv.Status == types.InvoiceStatusDraft && !hasPayments:
		return types.InvoiceStatusDraft
	case hasPayments:
		return types.InvoiceStatusPartial
	default:
		return types.InvoiceStatusSent
	}
}
