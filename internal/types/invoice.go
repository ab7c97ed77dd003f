package types

import (
	"strings"
	"time"

	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus is the derived lifecycle label of an invoice.
// It is never set directly by callers except for the initial Draft;
// every other value is recomputed from the invoice's amounts, due date
// and payment history.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "Draft"
	InvoiceStatusSent    InvoiceStatus = "Sent"
	InvoiceStatusPartial InvoiceStatus = "Partial"
	InvoiceStatusOverdue InvoiceStatus = "Overdue"
	InvoiceStatusPaid    InvoiceStatus = "Paid"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPartial,
		InvoiceStatusOverdue,
		InvoiceStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ParseInvoiceStatus matches a status label case-insensitively
func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	for _, status := range []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusPartial,
		InvoiceStatusOverdue,
		InvoiceStatusPaid,
	} {
		if strings.EqualFold(s, string(status)) {
			return status, nil
		}
	}
	return "", ierr.NewError("invalid invoice status").
		WithHintf("Unknown invoice status %q", s).
		Mark(ierr.ErrValidation)
}

// DiscountType selects how the invoice discount value is applied
// after tax: an absolute currency subtraction or a percentage reduction.
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

func (d DiscountType) String() string {
	return string(d)
}

func (d DiscountType) Validate() error {
	allowed := []DiscountType{
		DiscountTypeFixed,
		DiscountTypePercentage,
	}
	if !lo.Contains(allowed, d) {
		return ierr.NewError("invalid discount type").
			WithHint("Please provide a valid discount type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceFilter narrows invoice list queries. All fields are optional.
type InvoiceFilter struct {
	Status         *InvoiceStatus
	ClientContains string
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
}
