package service

import (
	"github.com/AbdoTarek2211/Cost-Management/internal/config"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/cost"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/logger"
	"github.com/AbdoTarek2211/Cost-Management/internal/pdf"
)

// ServiceParams holds the dependencies injected into every service
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	CostRepo    cost.Repository
	InvoiceRepo invoice.Repository
	PaymentRepo payment.Repository

	ReceiptGenerator pdf.ReceiptGenerator
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	costRepo cost.Repository,
	invoiceRepo invoice.Repository,
	paymentRepo payment.Repository,
	receiptGenerator pdf.ReceiptGenerator,
) ServiceParams {
	return ServiceParams{
		Logger:           logger,
		Config:           config,
		CostRepo:         costRepo,
		InvoiceRepo:      invoiceRepo,
		PaymentRepo:      paymentRepo,
		ReceiptGenerator: receiptGenerator,
	}
}
