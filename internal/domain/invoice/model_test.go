package invoice

import (
	"testing"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testInvoice() *Invoice {
	return &Invoice{
		ID:           1,
		ClientID:     1001,
		ClientName:   "Sample Client",
		Region:       "PS",
		DiscountKind: types.DiscountTypePercentage,
		Discount:     decimal.NewFromInt(10),
		CreatedAt:    time.Now().UTC(),
		DueDate:      time.Now().UTC().AddDate(0, 0, 14),
		Status:       types.InvoiceStatusDraft,
		Items: []Item{
			{Name: "Web Development", UnitPrice: decimal.NewFromInt(500), Quantity: 1},
			{Name: "Hosting Setup", UnitPrice: decimal.NewFromInt(120), Quantity: 1},
		},
	}
}

func TestComputeTotals(t *testing.T) {
	inv := testInvoice()

	totals := inv.ComputeTotals(nil)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(620)), "subtotal: %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(99.2)), "tax: %s", totals.Tax)
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromFloat(647.28)), "grand total: %s", totals.GrandTotal)
	assert.True(t, totals.TotalPaid.IsZero())
	assert.True(t, totals.TotalDue.Equal(totals.GrandTotal))
}

func TestComputeTotalsWithPayments(t *testing.T) {
	inv := testInvoice()
	payments := []*payment.Payment{
		{InvoiceID: inv.ID, Amount: decimal.NewFromInt(300), Method: "Bank Transfer"},
	}

	totals := inv.ComputeTotals(payments)
	assert.True(t, totals.TotalPaid.Equal(decimal.NewFromInt(300)))
	assert.True(t, totals.TotalDue.Equal(decimal.NewFromFloat(347.28)), "total due: %s", totals.TotalDue)
	assert.True(t, totals.GrandTotal.Sub(totals.TotalPaid).Equal(totals.TotalDue))
}

func TestGrandTotalFixedDiscount(t *testing.T) {
	inv := testInvoice()
	inv.DiscountKind = types.DiscountTypeFixed
	inv.Discount = decimal.NewFromInt(50)

	// (620 + 99.2) - 50
	assert.True(t, inv.GrandTotal().Equal(decimal.NewFromFloat(669.2)), "grand total: %s", inv.GrandTotal())
}

func TestGrandTotalPercentageBounds(t *testing.T) {
	inv := testInvoice()

	inv.Discount = decimal.Zero
	assert.True(t, inv.GrandTotal().Equal(decimal.NewFromFloat(719.2)))

	inv.Discount = decimal.NewFromInt(100)
	assert.True(t, inv.GrandTotal().IsZero())
}

func TestTaxUnknownRegionFallsBack(t *testing.T) {
	inv := testInvoice()
	inv.Region = "ZZ"

	// 620 * 0.05
	assert.True(t, inv.Tax().Equal(decimal.NewFromInt(31)), "tax: %s", inv.Tax())
}

func TestValidate(t *testing.T) {
	t.Run("valid invoice", func(t *testing.T) {
		assert.NoError(t, testInvoice().Validate())
	})

	t.Run("no items", func(t *testing.T) {
		inv := testInvoice()
		inv.Items = nil
		assert.Error(t, inv.Validate())
	})

	t.Run("blank item name", func(t *testing.T) {
		inv := testInvoice()
		inv.Items[0].Name = ""
		assert.Error(t, inv.Validate())
	})

	t.Run("negative unit price", func(t *testing.T) {
		inv := testInvoice()
		inv.Items[0].UnitPrice = decimal.NewFromInt(-1)
		assert.Error(t, inv.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		inv := testInvoice()
		inv.Items[0].Quantity = 0
		assert.Error(t, inv.Validate())
	})

	t.Run("unknown discount kind", func(t *testing.T) {
		inv := testInvoice()
		inv.DiscountKind = "half-off"
		assert.Error(t, inv.Validate())
	})

	t.Run("percentage discount above 100", func(t *testing.T) {
		inv := testInvoice()
		inv.Discount = decimal.NewFromInt(101)
		assert.Error(t, inv.Validate())
	})

	t.Run("negative fixed discount", func(t *testing.T) {
		inv := testInvoice()
		inv.DiscountKind = types.DiscountTypeFixed
		inv.Discount = decimal.NewFromInt(-5)
		assert.Error(t, inv.Validate())
	})
}
