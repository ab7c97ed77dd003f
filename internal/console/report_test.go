package console

import (
	"strings"
	"testing"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)

	rendered := renderReport(&dto.ReportResponse{
		Title:   "Invoice Status Report",
		Type:    dto.ReportTypeTabular,
		Columns: []string{"ID", "Client", "Created", "Due Date", "Amount Due", "Status"},
		Rows: [][]any{
			{1, "Acme Corp", created, due, decimal.NewFromFloat(647.28), types.InvoiceStatusSent},
		},
	})

	assert.Contains(t, rendered, "Invoice Status Report\n")
	assert.Contains(t, rendered, "ID | Client | Created | Due Date | Amount Due | Status")
	assert.Contains(t, rendered, "1 | Acme Corp | 2026-02-01 | 2026-02-15 | $647.28 | Sent")
	assert.Contains(t, rendered, "Total Invoices: 1")
	// Header is ruled off from the rows
	assert.Contains(t, rendered, strings.Repeat("=", len("ID | Client | Created | Due Date | Amount Due | Status")))
}

func TestRenderReportEmpty(t *testing.T) {
	rendered := renderReport(&dto.ReportResponse{
		Title:   "Client Invoice Report",
		Type:    dto.ReportTypeTabular,
		Columns: []string{"ID", "Client"},
	})
	assert.Contains(t, rendered, "Total Invoices: 0")
}

func TestRenderSummary(t *testing.T) {
	rendered := renderSummary(&dto.SummaryReportResponse{
		Title: "Invoice Summary Statistics",
		Type:  dto.ReportTypeSummary,
		ByStatus: []dto.SummaryGroup{
			{Key: "Paid", Count: 1, TotalValue: decimal.NewFromInt(115), TotalDue: decimal.Zero},
		},
		ByClient: []dto.SummaryGroup{
			{Key: "Acme Corp", Count: 2, TotalValue: decimal.NewFromInt(315), TotalDue: decimal.NewFromInt(215)},
		},
	})

	assert.Contains(t, rendered, "By Status:")
	assert.Contains(t, rendered, "Paid: 1 invoice(s), total $115.00, due $0.00")
	assert.Contains(t, rendered, "By Client:")
	assert.Contains(t, rendered, "Acme Corp: 2 invoice(s), total $315.00, due $215.00")
}
