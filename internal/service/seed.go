package service

import (
	"context"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/cost"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
)

// SeedSampleData loads the demo data set: one cost entry and one sent
// invoice with a partial bank-transfer payment against it.
func SeedSampleData(ctx context.Context, params ServiceParams) error {
	now := time.Now().UTC()

	if err := params.CostRepo.Create(ctx, &cost.Cost{
		Description: "Office supplies",
		Amount:      decimal.NewFromFloat(125.50),
		Date:        now.AddDate(0, 0, -10),
		Category:    "Office",
	}); err != nil {
		return err
	}

	inv := &invoice.Invoice{
		ClientID:     1001,
		ClientName:   "Sample Client",
		ClientEmail:  "client@example.com",
		ClientPhone:  "+1234567890",
		Region:       "PS",
		DiscountKind: types.DiscountTypePercentage,
		Discount:     decimal.NewFromInt(10),
		CreatedAt:    now,
		DueDate:      now.AddDate(0, 0, 30),
		Status:       types.InvoiceStatusSent,
		Items: []invoice.Item{
			{Name: "Website Design", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
			{Name: "Hosting (1 year)", UnitPrice: decimal.NewFromInt(120), Quantity: 1},
		},
	}
	if err := params.InvoiceRepo.Create(ctx, inv); err != nil {
		return err
	}

	if err := params.PaymentRepo.Create(ctx, &payment.Payment{
		InvoiceID: inv.ID,
		Amount:    decimal.NewFromInt(300),
		PaidAt:    now.AddDate(0, 0, -5),
		Method:    "Bank Transfer",
	}); err != nil {
		return err
	}

	params.Logger.Infow("seeded sample data", "invoice_id", inv.ID)
	return nil
}
