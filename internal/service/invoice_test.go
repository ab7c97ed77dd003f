package service

import (
	"testing"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/AbdoTarek2211/Cost-Management/internal/testutil"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service        InvoiceService
	paymentService PaymentService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	params := ServiceParams{
		Logger:           s.GetLogger(),
		Config:           s.GetConfig(),
		CostRepo:         s.GetStores().CostRepo,
		InvoiceRepo:      s.GetStores().InvoiceRepo,
		PaymentRepo:      s.GetStores().PaymentRepo,
		ReceiptGenerator: s.GetPDFGenerator(),
	}
	s.service = NewInvoiceService(params)
	s.paymentService = NewPaymentService(params)
}

func (s *InvoiceServiceSuite) createRequest() *dto.CreateInvoiceRequest {
	return &dto.CreateInvoiceRequest{
		ClientID:     1001,
		ClientName:   "Sample Client",
		ClientEmail:  "client@example.com",
		Region:       "PS",
		DiscountKind: types.DiscountTypePercentage,
		Discount:     decimal.NewFromInt(10),
		DueInDays:    14,
		Items: []dto.InvoiceItemRequest{
			{Name: "Web Development", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
			{Name: "Hosting Setup", UnitPrice: decimal.NewFromInt(120), Quantity: 1},
		},
	}
}

func (s *InvoiceServiceSuite) TestCreateInvoice() {
	resp, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(1, resp.ID)
	s.Equal(types.InvoiceStatusDraft, resp.Status)
	s.True(resp.Subtotal.Equal(decimal.NewFromInt(620)))
	s.True(resp.Tax.Equal(decimal.NewFromFloat(99.2)))
	s.True(resp.GrandTotal.Equal(decimal.NewFromFloat(647.28)))
	s.True(resp.TotalDue.Equal(resp.GrandTotal))
	s.Len(resp.Items, 2)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceAssignsSequentialIDs() {
	first, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)
	second, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)
	s.Equal(first.ID+1, second.ID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceRejectsInvalid() {
	req := s.createRequest()
	req.Items = []dto.InvoiceItemRequest{
		{Name: "Bad", UnitPrice: decimal.NewFromInt(-1), Quantity: 1},
	}

	_, err := s.service.CreateInvoice(s.GetContext(), req)
	s.Error(err)
	s.True(ierr.IsValidation(err))

	// Nothing persisted
	list, err := s.service.ListInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(0, list.Total)
}

func (s *InvoiceServiceSuite) TestGetInvoiceNotFound() {
	_, err := s.service.GetInvoice(s.GetContext(), 999)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestUpdateInvoice() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, &dto.UpdateInvoiceRequest{
		ClientName: lo.ToPtr("Renamed Client"),
		Discount:   lo.ToPtr(decimal.NewFromInt(20)),
	})
	s.NoError(err)
	s.Equal("Renamed Client", resp.ClientName)
	// (620 + 99.2) * 0.8
	s.True(resp.GrandTotal.Equal(decimal.NewFromFloat(575.36)), "grand total: %s", resp.GrandTotal)
	// Untouched fields keep their values
	s.Equal("PS", resp.Region)
	s.Len(resp.Items, 2)
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceReplacesItems() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, &dto.UpdateInvoiceRequest{
		Items: []dto.InvoiceItemRequest{
			{Name: "Consulting", UnitPrice: decimal.NewFromInt(200), Quantity: 3},
		},
	})
	s.NoError(err)
	s.Len(resp.Items, 1)
	s.True(resp.Subtotal.Equal(decimal.NewFromInt(600)))
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceFailureLeavesStateUntouched() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.service.UpdateInvoice(s.GetContext(), created.ID, &dto.UpdateInvoiceRequest{
		ClientName: lo.ToPtr("Should Not Stick"),
		Items: []dto.InvoiceItemRequest{
			{Name: "", UnitPrice: decimal.NewFromInt(10), Quantity: 1},
		},
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	current, err := s.service.GetInvoice(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal("Sample Client", current.ClientName)
	s.Len(current.Items, 2)
}

func (s *InvoiceServiceSuite) TestUpdateInvoiceNotFound() {
	_, err := s.service.UpdateInvoice(s.GetContext(), 42, &dto.UpdateInvoiceRequest{
		ClientName: lo.ToPtr("Nobody"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *InvoiceServiceSuite) TestUpdateRecomputesTotalsAfterPayment() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.paymentService.RecordPayment(s.GetContext(), created.ID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromInt(300),
		Method: "Bank Transfer",
	})
	s.NoError(err)

	// Raising the discount shrinks the grand total; the balance due must
	// follow from the new total minus the existing payments.
	resp, err := s.service.UpdateInvoice(s.GetContext(), created.ID, &dto.UpdateInvoiceRequest{
		Discount: lo.ToPtr(decimal.NewFromInt(20)),
	})
	s.NoError(err)
	s.True(resp.TotalPaid.Equal(decimal.NewFromInt(300)))
	s.True(resp.TotalDue.Equal(decimal.NewFromFloat(275.36)), "total due: %s", resp.TotalDue)
	s.Equal(types.InvoiceStatusPartial, resp.Status)
}

func (s *InvoiceServiceSuite) TestGetDueReminders() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	// Due in 14 days; invisible with a 7 day window, visible with 30.
	reminders, err := s.service.GetDueReminders(s.GetContext(), lo.ToPtr(7))
	s.NoError(err)
	s.Empty(reminders)

	reminders, err = s.service.GetDueReminders(s.GetContext(), lo.ToPtr(30))
	s.NoError(err)
	s.Len(reminders, 1)
	s.Equal(created.ID, reminders[0].InvoiceID)
	s.True(reminders[0].TotalDue.Equal(decimal.NewFromFloat(647.28)))
}

func (s *InvoiceServiceSuite) TestGetDueRemindersSkipsPaid() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	_, err = s.paymentService.RecordPayment(s.GetContext(), created.ID, &dto.CreatePaymentRequest{
		Amount: decimal.NewFromFloat(647.28),
		Method: "Cash",
	})
	s.NoError(err)

	reminders, err := s.service.GetDueReminders(s.GetContext(), lo.ToPtr(30))
	s.NoError(err)
	s.Empty(reminders)
}

func (s *InvoiceServiceSuite) TestListInvoicesRefreshesStatus() {
	created, err := s.service.CreateInvoice(s.GetContext(), s.createRequest())
	s.NoError(err)

	// Force the invoice past due directly in the store.
	repo := s.GetStores().InvoiceRepo
	inv, err := repo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	inv.Status = types.InvoiceStatusSent
	inv.DueDate = time.Now().UTC().AddDate(0, 0, -3)
	s.NoError(repo.Update(s.GetContext(), inv))

	list, err := s.service.ListInvoices(s.GetContext())
	s.NoError(err)
	s.Equal(1, list.Total)
	s.Equal(types.InvoiceStatusOverdue, list.Items[0].Status)

	// The refreshed status was written back.
	stored, err := repo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.InvoiceStatusOverdue, stored.Status)
}
