package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type gofpdfGenerator struct{}

// NewReceiptGenerator returns the gofpdf-backed receipt renderer
func NewReceiptGenerator() ReceiptGenerator {
	return &gofpdfGenerator{}
}

func (g *gofpdfGenerator) GenerateReceipt(data *ReceiptData) ([]byte, error) {
	if data == nil {
		return nil, ierr.NewError("receipt data cannot be nil").
			WithHint("Receipt data is required").
			Mark(ierr.ErrValidation)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(20, 20, 20)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(33, 66, 150)
	doc.CellFormat(0, 12, "PAYMENT RECEIPT", "", 1, "C", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	// Receipt and invoice metadata side by side
	doc.SetFont("Helvetica", "", 11)
	left := []string{
		fmt.Sprintf("Receipt #: %d", data.ReceiptNumber),
		fmt.Sprintf("Date: %s", data.PaidAt.Format("2006-01-02 15:04")),
		fmt.Sprintf("Payment Method: %s", data.Method),
	}
	right := []string{
		fmt.Sprintf("Invoice #: %d", data.InvoiceID),
		fmt.Sprintf("Client: %s", data.ClientName),
	}
	for i := 0; i < len(left); i++ {
		doc.CellFormat(85, 6, left[i], "", 0, "L", false, 0, "")
		r := ""
		if i < len(right) {
			r = right[i]
		}
		doc.CellFormat(85, 6, r, "", 1, "L", false, 0, "")
	}

	doc.Ln(6)
	doc.SetDrawColor(200, 200, 200)
	x, y := doc.GetXY()
	doc.Line(x, y, 190, y)
	doc.Ln(4)

	// Items table
	doc.SetFont("Helvetica", "B", 11)
	doc.CellFormat(0, 7, "ITEMS", "", 1, "L", false, 0, "")
	doc.CellFormat(10, 7, "#", "B", 0, "L", false, 0, "")
	doc.CellFormat(75, 7, "Description", "B", 0, "L", false, 0, "")
	doc.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	doc.CellFormat(30, 7, "Unit Price", "B", 0, "R", false, 0, "")
	doc.CellFormat(35, 7, "Amount", "B", 1, "R", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	for i, item := range data.Items {
		doc.CellFormat(10, 7, strconv.Itoa(i+1), "B", 0, "L", false, 0, "")
		doc.CellFormat(75, 7, item.Name, "B", 0, "L", false, 0, "")
		doc.CellFormat(20, 7, strconv.Itoa(item.Quantity), "B", 0, "R", false, 0, "")
		doc.CellFormat(30, 7, money(item.UnitPrice), "B", 0, "R", false, 0, "")
		doc.CellFormat(35, 7, money(item.Amount), "B", 1, "R", false, 0, "")
	}

	// Summary block
	doc.Ln(6)
	taxLabel := fmt.Sprintf("Tax (%s %s%%):", data.Region, data.TaxPercent.Round(0).String())
	summary := []struct {
		label string
		value decimal.Decimal
	}{
		{"Subtotal:", data.Subtotal},
		{taxLabel, data.Tax},
		{"Total:", data.GrandTotal},
		{"Amount Paid:", data.AmountPaid},
		{"Balance Due:", data.BalanceDue},
	}
	for _, row := range summary {
		doc.CellFormat(95, 6, "", "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 11)
		doc.CellFormat(40, 6, row.label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(35, 6, money(row.value), "", 1, "R", false, 0, "")
	}

	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 11)
	doc.CellFormat(0, 8, "Thank you for your business!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render the receipt PDF").
			Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), nil
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
