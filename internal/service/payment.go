package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/pdf"
	"github.com/AbdoTarek2211/Cost-Management/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, invoiceID int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, id int) (*dto.PaymentResponse, error)
	GetPaymentHistory(ctx context.Context, invoiceID int) (*dto.ListPaymentsResponse, error)
	GetTotalPaid(ctx context.Context, invoiceID int) (decimal.Decimal, error)
	GenerateReceipt(ctx context.Context, paymentID int) ([]byte, string, error)
}

type paymentService struct {
	ServiceParams
}

func NewPaymentService(params ServiceParams) PaymentService {
	return &paymentService{ServiceParams: params}
}

// RecordPayment validates and appends a payment to the ledger, then
// recomputes the invoice's status. The two steps belong to one logical
// mutation and run within a single synchronous call.
func (s *paymentService) RecordPayment(ctx context.Context, invoiceID int, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	p := &payment.Payment{
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		PaidAt:    time.Now().UTC(),
		Method:    req.Method,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	if !s.Config.Payments.AllowOverpayment {
		totals := inv.ComputeTotals(payments)
		if p.Amount.GreaterThan(totals.TotalDue) {
			return nil, ierr.NewError("payment exceeds balance due").
				WithHint("Payment amount exceeds the invoice balance due").
				WithReportableDetails(map[string]any{
					"amount":    p.Amount,
					"total_due": totals.TotalDue,
				}).
				Mark(ierr.ErrInvalidOperation)
		}
	}

	if err := s.PaymentRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	payments = append(payments, p)
	inv.Status = invoice.DeriveStatus(inv, payments, time.Now().UTC())
	if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("recorded payment",
		"payment_id", p.ID,
		"invoice_id", invoiceID,
		"amount", p.Amount,
		"method", p.Method,
		"invoice_status", inv.Status,
	)
	return dto.NewPaymentResponse(p), nil
}

func (s *paymentService) GetPayment(ctx context.Context, id int) (*dto.PaymentResponse, error) {
	p, err := s.PaymentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewPaymentResponse(p), nil
}

// GetPaymentHistory returns an invoice's payments ordered by PaidAt
// ascending
func (s *paymentService) GetPaymentHistory(ctx context.Context, invoiceID int) (*dto.ListPaymentsResponse, error) {
	if _, err := s.InvoiceRepo.Get(ctx, invoiceID); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	return &dto.ListPaymentsResponse{
		Items: lo.Map(payments, func(p *payment.Payment, _ int) *dto.PaymentResponse {
			return dto.NewPaymentResponse(p)
		}),
		TotalPaid: totalPaid,
	}, nil
}

func (s *paymentService) GetTotalPaid(ctx context.Context, invoiceID int) (decimal.Decimal, error) {
	payments, err := s.PaymentRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}

	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}
	return totalPaid, nil
}

// GenerateReceipt renders the PDF receipt for a payment and returns the
// document bytes with a suggested file name.
func (s *paymentService) GenerateReceipt(ctx context.Context, paymentID int) ([]byte, string, error) {
	p, err := s.PaymentRepo.Get(ctx, paymentID)
	if err != nil {
		return nil, "", err
	}

	inv, err := s.InvoiceRepo.Get(ctx, p.InvoiceID)
	if err != nil {
		return nil, "", err
	}

	subtotal := inv.Subtotal()
	taxAmount := inv.Tax()

	// Tax as a percentage of the subtotal is display-only and undefined
	// for an empty invoice.
	taxPercent := decimal.Zero
	if subtotal.IsPositive() {
		taxPercent = taxAmount.Div(subtotal).Mul(decimal.NewFromInt(100))
	}

	data := &pdf.ReceiptData{
		ReceiptNumber: p.ID,
		InvoiceID:     inv.ID,
		ClientName:    inv.ClientName,
		Region:        inv.Region,
		PaidAt:        p.PaidAt,
		Method:        p.Method,
		Items: lo.Map(inv.Items, func(it invoice.Item, _ int) pdf.ReceiptItem {
			return pdf.ReceiptItem{
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Amount:    it.Amount(),
			}
		}),
		Subtotal:   subtotal,
		TaxPercent: taxPercent,
		Tax:        taxAmount,
		GrandTotal: inv.GrandTotal(),
		AmountPaid: p.Amount,
		BalanceDue: inv.GrandTotal().Sub(p.Amount),
	}

	doc, err := s.ReceiptGenerator.GenerateReceipt(data)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("Receipt_%d_%s.pdf", inv.ID, p.PaidAt.Format("20060102"))
	return doc, filename, nil
}
