package dto

import (
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is a single line of a create/update request
type InvoiceItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	ClientID     int                  `json:"client_id" binding:"required"`
	ClientName   string               `json:"client_name" binding:"required"`
	ClientEmail  string               `json:"client_email"`
	ClientPhone  string               `json:"client_phone"`
	Region       string               `json:"region"`
	DiscountKind types.DiscountType   `json:"discount_kind"`
	Discount     decimal.Decimal      `json:"discount"`
	DueInDays    int                  `json:"due_in_days" binding:"required,min=1"`
	Items        []InvoiceItemRequest `json:"items" binding:"required"`
}

// ToInvoice builds the domain invoice. New invoices always start in
// Draft with CreatedAt set to now and DueDate now+DueInDays.
func (r *CreateInvoiceRequest) ToInvoice(now time.Time) *invoice.Invoice {
	kind := r.DiscountKind
	if kind == "" {
		kind = types.DiscountTypeFixed
	}
	return &invoice.Invoice{
		ClientID:     r.ClientID,
		ClientName:   r.ClientName,
		ClientEmail:  r.ClientEmail,
		ClientPhone:  r.ClientPhone,
		Region:       r.Region,
		DiscountKind: kind,
		Discount:     r.Discount,
		CreatedAt:    now,
		DueDate:      now.AddDate(0, 0, r.DueInDays),
		Status:       types.InvoiceStatusDraft,
		Items: lo.Map(r.Items, func(it InvoiceItemRequest, _ int) invoice.Item {
			return invoice.Item{
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			}
		}),
	}
}

// UpdateInvoiceRequest represents a partial invoice update. Nil fields
// are left unchanged; a non-nil item list replaces the whole list.
type UpdateInvoiceRequest struct {
	ClientName   *string              `json:"client_name,omitempty"`
	Region       *string              `json:"region,omitempty"`
	DiscountKind *types.DiscountType  `json:"discount_kind,omitempty"`
	Discount     *decimal.Decimal     `json:"discount,omitempty"`
	DueInDays    *int                 `json:"due_in_days,omitempty"`
	Items        []InvoiceItemRequest `json:"items,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if r.DiscountKind != nil {
		if err := r.DiscountKind.Validate(); err != nil {
			return err
		}
	}
	if r.DueInDays != nil && *r.DueInDays < 1 {
		return ierr.NewError("due_in_days must be at least 1").
			WithHint("Due in days must be at least 1").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// InvoiceItemResponse is a single line of an invoice response
type InvoiceItemResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// InvoiceResponse represents an invoice with its computed amounts,
// derived status and payment history.
type InvoiceResponse struct {
	ID           int                    `json:"id"`
	ClientID     int                    `json:"client_id"`
	ClientName   string                 `json:"client_name"`
	ClientEmail  string                 `json:"client_email,omitempty"`
	ClientPhone  string                 `json:"client_phone,omitempty"`
	Region       string                 `json:"region"`
	DiscountKind types.DiscountType     `json:"discount_kind"`
	Discount     decimal.Decimal        `json:"discount"`
	Status       types.InvoiceStatus    `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	DueDate      time.Time              `json:"due_date"`
	Subtotal     decimal.Decimal        `json:"subtotal"`
	Tax          decimal.Decimal        `json:"tax"`
	GrandTotal   decimal.Decimal        `json:"grand_total"`
	TotalPaid    decimal.Decimal        `json:"total_paid"`
	TotalDue     decimal.Decimal        `json:"total_due"`
	Items        []*InvoiceItemResponse `json:"items"`
	Payments     []*PaymentResponse     `json:"payments"`
}

// NewInvoiceResponse builds a response from an invoice and its
// recorded payments. Totals and status are derived here, never read
// from stored state.
func NewInvoiceResponse(inv *invoice.Invoice, payments []*payment.Payment, status types.InvoiceStatus) *InvoiceResponse {
	totals := inv.ComputeTotals(payments)
	return &InvoiceResponse{
		ID:           inv.ID,
		ClientID:     inv.ClientID,
		ClientName:   inv.ClientName,
		ClientEmail:  inv.ClientEmail,
		ClientPhone:  inv.ClientPhone,
		Region:       inv.Region,
		DiscountKind: inv.DiscountKind,
		Discount:     inv.Discount,
		Status:       status,
		CreatedAt:    inv.CreatedAt,
		DueDate:      inv.DueDate,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		GrandTotal:   totals.GrandTotal,
		TotalPaid:    totals.TotalPaid,
		TotalDue:     totals.TotalDue,
		Items: lo.Map(inv.Items, func(it invoice.Item, _ int) *InvoiceItemResponse {
			return &InvoiceItemResponse{
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
				Amount:    it.Amount(),
			}
		}),
		Payments: lo.Map(payments, func(p *payment.Payment, _ int) *PaymentResponse {
			return NewPaymentResponse(p)
		}),
	}
}

// ListInvoicesResponse represents a list of invoices
type ListInvoicesResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int                `json:"total"`
}

// DueReminderResponse flags an invoice approaching or past its due date
type DueReminderResponse struct {
	InvoiceID   int                 `json:"invoice_id"`
	DueDate     time.Time           `json:"due_date"`
	TotalDue    decimal.Decimal     `json:"total_due"`
	Status      types.InvoiceStatus `json:"status"`
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email,omitempty"`
	ClientPhone string              `json:"client_phone,omitempty"`
}
