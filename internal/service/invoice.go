package service

import (
	"context"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/AbdoTarek2211/Cost-Management/internal/validator"
	"github.com/samber/lo"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, id int, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetDueReminders(ctx context.Context, daysUntilDue *int) ([]*dto.DueReminderResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{ServiceParams: params}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validator.ValidateRequest(req); err != nil {
		return nil, err
	}

	inv := req.ToInvoice(time.Now().UTC())

	// Validation happens before the store sees the invoice; a failing
	// request persists nothing.
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"client", inv.ClientName,
		"grand_total", inv.GrandTotal(),
	)
	return dto.NewInvoiceResponse(inv, nil, inv.Status), nil
}

func (s *invoiceService) GetInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := s.refreshStatus(ctx, inv, payments)
	if err != nil {
		return nil, err
	}
	return dto.NewInvoiceResponse(inv, payments, status), nil
}

func (s *invoiceService) ListInvoices(ctx context.Context) (*dto.ListInvoicesResponse, error) {
	invoices, err := s.InvoiceRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	paymentsByInvoice, err := s.paymentsByInvoice(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		payments := paymentsByInvoice[inv.ID]
		status, err := s.refreshStatus(ctx, inv, payments)
		if err != nil {
			return nil, err
		}
		items[i] = dto.NewInvoiceResponse(inv, payments, status)
	}
	return &dto.ListInvoicesResponse{Items: items, Total: len(items)}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id int, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the merged result before touching the stored invoice so
	// a failing update leaves prior state unmodified.
	updated := *inv
	if req.ClientName != nil {
		updated.ClientName = *req.ClientName
	}
	if req.Region != nil {
		updated.Region = *req.Region
	}
	if req.DiscountKind != nil {
		updated.DiscountKind = *req.DiscountKind
	}
	if req.Discount != nil {
		updated.Discount = *req.Discount
	}
	if req.DueInDays != nil {
		updated.DueDate = time.Now().UTC().AddDate(0, 0, *req.DueInDays)
	}
	if req.Items != nil {
		// Full replace, never a merge
		updated.Items = lo.Map(req.Items, func(it dto.InvoiceItemRequest, _ int) invoice.Item {
			return invoice.Item{
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  it.Quantity,
			}
		})
	}

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.ListByInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	updated.Status = invoice.DeriveStatus(&updated, payments, time.Now().UTC())

	if err := s.InvoiceRepo.Update(ctx, &updated); err != nil {
		return nil, err
	}

	s.Logger.Infow("updated invoice", "invoice_id", id, "status", updated.Status)
	return dto.NewInvoiceResponse(&updated, payments, updated.Status), nil
}

func (s *invoiceService) GetDueReminders(ctx context.Context, daysUntilDue *int) ([]*dto.DueReminderResponse, error) {
	days := s.Config.Reminders.DaysUntilDue
	if daysUntilDue != nil {
		days = *daysUntilDue
	}

	invoices, err := s.InvoiceRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	paymentsByInvoice, err := s.paymentsByInvoice(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, days)

	reminders := make([]*dto.DueReminderResponse, 0)
	for _, inv := range invoices {
		if inv.DueDate.After(cutoff) {
			continue
		}

		payments := paymentsByInvoice[inv.ID]
		status, err := s.refreshStatus(ctx, inv, payments)
		if err != nil {
			return nil, err
		}
		if status == types.InvoiceStatusPaid {
			continue
		}

		totals := inv.ComputeTotals(payments)
		reminders = append(reminders, &dto.DueReminderResponse{
			InvoiceID:   inv.ID,
			DueDate:     inv.DueDate,
			TotalDue:    totals.TotalDue,
			Status:      status,
			ClientName:  inv.ClientName,
			ClientEmail: inv.ClientEmail,
			ClientPhone: inv.ClientPhone,
		})
	}
	return reminders, nil
}

// refreshStatus derives the invoice's status from current state and
// writes it back when it changed, so the stored field never lags a
// mutation for longer than one read.
func (s *invoiceService) refreshStatus(ctx context.Context, inv *invoice.Invoice, payments []*payment.Payment) (types.InvoiceStatus, error) {
	status := invoice.DeriveStatus(inv, payments, time.Now().UTC())
	if status != inv.Status {
		inv.Status = status
		if err := s.InvoiceRepo.Update(ctx, inv); err != nil {
			return "", err
		}
	}
	return status, nil
}

func (s *invoiceService) paymentsByInvoice(ctx context.Context) (map[int][]*payment.Payment, error) {
	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.GroupBy(payments, func(p *payment.Payment) int {
		return p.InvoiceID
	}), nil
}
