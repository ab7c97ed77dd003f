package invoice

import (
	"testing"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pay(amount int64) *payment.Payment {
	return &payment.Payment{Amount: decimal.NewFromInt(amount), Method: "Cash"}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 7)
	past := now.AddDate(0, 0, -7)

	// testInvoice grand total is 647.28
	tests := []struct {
		name     string
		stored   types.InvoiceStatus
		dueDate  time.Time
		payments []*payment.Payment
		want     types.InvoiceStatus
	}{
		{
			name:    "fully paid",
			stored:  types.InvoiceStatusSent,
			dueDate: future,
			payments: []*payment.Payment{
				pay(600), pay(48),
			},
			want: types.InvoiceStatusPaid,
		},
		{
			name:     "overpaid is still paid",
			stored:   types.InvoiceStatusSent,
			dueDate:  past,
			payments: []*payment.Payment{pay(1000)},
			want:     types.InvoiceStatusPaid,
		},
		{
			name:     "partial payment before due date",
			stored:   types.InvoiceStatusSent,
			dueDate:  future,
			payments: []*payment.Payment{pay(300)},
			want:     types.InvoiceStatusPartial,
		},
		{
			name:     "partial payment wins over overdue",
			stored:   types.InvoiceStatusSent,
			dueDate:  past,
			payments: []*payment.Payment{pay(300)},
			want:     types.InvoiceStatusPartial,
		},
		{
			name:    "past due with no payments",
			stored:  types.InvoiceStatusSent,
			dueDate: past,
			want:    types.InvoiceStatusOverdue,
		},
		{
			name:    "draft past due is overdue",
			stored:  types.InvoiceStatusDraft,
			dueDate: past,
			want:    types.InvoiceStatusOverdue,
		},
		{
			name:    "untouched draft stays draft",
			stored:  types.InvoiceStatusDraft,
			dueDate: future,
			want:    types.InvoiceStatusDraft,
		},
		{
			name:    "sent invoice with no payments stays sent",
			stored:  types.InvoiceStatusSent,
			dueDate: future,
			want:    types.InvoiceStatusSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := testInvoice()
			inv.Status = tt.stored
			inv.DueDate = tt.dueDate
			assert.Equal(t, tt.want, DeriveStatus(inv, tt.payments, now))
		})
	}
}

func TestDeriveStatusZeroTotal(t *testing.T) {
	now := time.Now().UTC()
	inv := testInvoice()
	inv.Items = []Item{{Name: "Freebie", UnitPrice: decimal.Zero, Quantity: 1}}
	inv.Discount = decimal.Zero

	// Nothing due at all; paid regardless of payment history.
	assert.Equal(t, types.InvoiceStatusPaid, DeriveStatus(inv, nil, now))
}
