package service

import (
	"testing"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/testutil"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        PaymentService
	invoiceService InvoiceService
	params         ServiceParams
	invoiceID      int
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceSuite))
}

func (s *PaymentServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.params = ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		CostRepo:         s.GetStores().CostRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		PaymentRepo:      s.GetStores().PaymentRepo,
		ReceiptGenerator: s.GetPDFGenerator(),
	}
	s.service = NewPaymentService(s.params)
	s.invoiceService = NewInvoiceService(s.params)

	// One invoice with a 647.28 grand total for the suite to pay against
	created, err := s.invoiceService.CreateInvoice(s.GetContext(), &dto.CreateInvoiceRequest{
		ClientID:     1001,
		ClientName:   "Sample Client",
		Region:       "PS",
		DiscountKind: types.DiscountTypePercentage,
		Discount:     decimal.NewFromInt(10),
		DueInDays:    14,
		Items: []dto.InvoiceItemRequest{
			{Name: "Web Development", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
			{Name: "Hosting Setup", UnitPrice: decimal.NewFromInt(120), Quantity: 1},
		},
	})
	s.Require().NoError(err)
	s.invoiceID = created.ID
}

func (s *PaymentServiceSuite) TestRecordPayment() {
	resp, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(300),
		Method: "Bank Transfer",
	})
	s.NoError(err)
	s.Equal(1, resp.ID)
	s.True(resp.Amount.Equal(decimal.NewFromInt(300)))
	s.Equal("Bank Transfer", resp.Method)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPartial, inv.Status)
	s.True(inv.TotalDue.Equal(decimal.NewFromFloat(347.28)))
}

func (s *PaymentServiceSuite) TestRecordPaymentAccumulatesToPaid() {
	_, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(300),
		Method: "Cash",
	})
	s.NoError(err)

	_, err = s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromFloat(347.28),
		Method: "Cash",
	})
	s.NoError(err)

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.Status)
	s.True(inv.TotalDue.IsZero())
}

func (s *PaymentServiceSuite) TestRecordPaymentRejectsNonPositiveAmounts() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
			Amount: amount,
			Method: "Cash",
		})
		s.Error(err, "amount %s", amount)
		s.True(ierr.IsValidation(err))
	}

	history, err := s.service.GetPaymentHistory(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.Empty(history.Items)
}

func (s *PaymentServiceSuite) TestRecordPaymentRejectsBlankMethod() {
	_, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(10),
		Method: "   ",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *PaymentServiceSuite) TestRecordPaymentAcceptsMinimalPayment() {
	resp, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(1),
		Method: "Cash",
	})
	s.NoError(err)
	s.True(resp.Amount.Equal(decimal.NewFromInt(1)))
}

func (s *PaymentServiceSuite) TestRecordPaymentUnknownInvoice() {
	_, err := s.service.RecordPayment(s.GetContext(), 999, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(10),
		Method: "Cash",
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestOverpaymentAllowedByDefault() {
	resp, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(1000),
		Method: "Cash",
	})
	s.NoError(err)
	s.True(resp.Amount.Equal(decimal.NewFromInt(1000)))

	inv, err := s.invoiceService.GetInvoice(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusPaid, inv.Status)
	s.True(inv.TotalDue.IsNegative())
}

func (s *PaymentServiceSuite) TestOverpaymentRejectedWhenDisabled() {
	params := s.params
	cfg := *s.GetConfig()
	cfg.Payments.AllowOverpayment = false
	params.Config = &cfg
	strict := NewPaymentService(params)

	_, err := strict.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(1000),
		Method: "Cash",
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))

	// Exact settlement still accepted
	_, err = strict.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromFloat(647.28),
		Method: "Cash",
	})
	s.NoError(err)
}

func (s *PaymentServiceSuite) TestGetPaymentHistoryOrdering() {
	amounts := []int64{100, 50, 200}
	for _, amount := range amounts {
		_, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
			Amount: decimal.NewFromInt(amount),
			Method: "Cash",
		})
		s.NoError(err)
	}

	history, err := s.service.GetPaymentHistory(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.Len(history.Items, 3)
	s.True(history.TotalPaid.Equal(decimal.NewFromInt(350)))
	for i := 1; i < len(history.Items); i++ {
		s.False(history.Items[i].PaidAt.Before(history.Items[i-1].PaidAt))
	}
}

func (s *PaymentServiceSuite) TestGetPaymentHistoryUnknownInvoice() {
	_, err := s.service.GetPaymentHistory(s.GetContext(), 999)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *PaymentServiceSuite) TestGetTotalPaid() {
	total, err := s.service.GetTotalPaid(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.True(total.IsZero())

	_, err = s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(150),
		Method: "Cash",
	})
	s.NoError(err)

	total, err = s.service.GetTotalPaid(s.GetContext(), s.invoiceID)
	s.NoError(err)
	s.True(total.Equal(decimal.NewFromInt(150)))
}

func (s *PaymentServiceSuite) TestGenerateReceipt() {
	created, err := s.service.RecordPayment(s.GetContext(), s.invoiceID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(300),
		Method: "Bank Transfer",
	})
	s.NoError(err)

	doc, filename, err := s.service.GenerateReceipt(s.GetContext(), created.ID)
	s.NoError(err)
	s.NotEmpty(doc)
	s.Contains(filename, "Receipt_")
	s.Contains(filename, ".pdf")
	// PDF documents start with the %PDF marker
	s.Equal("%PDF", string(doc[:4]))
}

func (s *PaymentServiceSuite) TestGenerateReceiptUnknownPayment() {
	_, _, err := s.service.GenerateReceipt(s.GetContext(), 999)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
