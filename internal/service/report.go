package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/invoice"
	"github.com/AbdoTarek2211/Cost-Management/internal/domain/payment"
	"github.com/AbdoTarek2211/Cost-Management/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type ReportService interface {
	GetStatusReport(ctx context.Context, statusFilter string) (*dto.ReportResponse, error)
	GetClientReport(ctx context.Context, clientFilter string) (*dto.ReportResponse, error)
	GetDateRangeReport(ctx context.Context, startDate, endDate *time.Time) (*dto.ReportResponse, error)
	GetSummaryStatistics(ctx context.Context) (*dto.SummaryReportResponse, error)
}

type reportService struct {
	ServiceParams
}

func NewReportService(params ServiceParams) ReportService {
	return &reportService{ServiceParams: params}
}

// reportEntry is a consistent snapshot of one invoice: totals and the
// derived status are computed once per report so no row observes a
// half-updated invoice.
type reportEntry struct {
	inv    *invoice.Invoice
	totals invoice.Totals
	status types.InvoiceStatus
}

func (s *reportService) snapshot(ctx context.Context) ([]reportEntry, error) {
	invoices, err := s.InvoiceRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	payments, err := s.PaymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	byInvoice := lo.GroupBy(payments, func(p *payment.Payment) int {
		return p.InvoiceID
	})

	now := time.Now().UTC()
	entries := make([]reportEntry, len(invoices))
	for i, inv := range invoices {
		invPayments := byInvoice[inv.ID]
		entries[i] = reportEntry{
			inv:    inv,
			totals: inv.ComputeTotals(invPayments),
			status: invoice.DeriveStatus(inv, invPayments, now),
		}
	}
	return entries, nil
}

// GetStatusReport lists invoices with their balance due, optionally
// filtered to a single status (matched case-insensitively), sorted by
// status then due date.
func (s *reportService) GetStatusReport(ctx context.Context, statusFilter string) (*dto.ReportResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if statusFilter != "" {
		entries = lo.Filter(entries, func(e reportEntry, _ int) bool {
			return strings.EqualFold(string(e.status), statusFilter)
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].status != entries[j].status {
			return entries[i].status < entries[j].status
		}
		return entries[i].inv.DueDate.Before(entries[j].inv.DueDate)
	})

	title := "Invoice Status Report"
	if statusFilter != "" {
		title = fmt.Sprintf("%s (%s)", title, statusFilter)
	}

	return &dto.ReportResponse{
		Title:   title,
		Type:    dto.ReportTypeTabular,
		Columns: []string{"ID", "Client", "Created", "Due Date", "Amount Due", "Status"},
		Rows: lo.Map(entries, func(e reportEntry, _ int) []any {
			return []any{e.inv.ID, e.inv.ClientName, e.inv.CreatedAt, e.inv.DueDate, e.totals.TotalDue, e.status}
		}),
	}, nil
}

// GetClientReport lists invoices with full totals, optionally filtered
// by a case-insensitive substring of the client name, sorted by client
// then due date.
func (s *reportService) GetClientReport(ctx context.Context, clientFilter string) (*dto.ReportResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if clientFilter != "" {
		needle := strings.ToLower(clientFilter)
		entries = lo.Filter(entries, func(e reportEntry, _ int) bool {
			return strings.Contains(strings.ToLower(e.inv.ClientName), needle)
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].inv.ClientName != entries[j].inv.ClientName {
			return entries[i].inv.ClientName < entries[j].inv.ClientName
		}
		return entries[i].inv.DueDate.Before(entries[j].inv.DueDate)
	})

	title := "Client Invoice Report"
	if clientFilter != "" {
		title = fmt.Sprintf("%s (%s)", title, clientFilter)
	}

	return &dto.ReportResponse{
		Title:   title,
		Type:    dto.ReportTypeTabular,
		Columns: []string{"ID", "Client", "Created", "Total", "Paid", "Due", "Status"},
		Rows: lo.Map(entries, func(e reportEntry, _ int) []any {
			return []any{e.inv.ID, e.inv.ClientName, e.inv.CreatedAt, e.totals.GrandTotal, e.totals.TotalPaid, e.totals.TotalDue, e.status}
		}),
	}, nil
}

// GetDateRangeReport lists invoices created within the inclusive bounds
// (either bound may be open), sorted by creation date ascending.
func (s *reportService) GetDateRangeReport(ctx context.Context, startDate, endDate *time.Time) (*dto.ReportResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries = lo.Filter(entries, func(e reportEntry, _ int) bool {
		if startDate != nil && e.inv.CreatedAt.Before(*startDate) {
			return false
		}
		if endDate != nil && e.inv.CreatedAt.After(*endDate) {
			return false
		}
		return true
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].inv.CreatedAt.Before(entries[j].inv.CreatedAt)
	})

	from, to := "Start", "End"
	if startDate != nil {
		from = startDate.Format("2006-01-02")
	}
	if endDate != nil {
		to = endDate.Format("2006-01-02")
	}

	return &dto.ReportResponse{
		Title:   fmt.Sprintf("Date Range Invoice Report (%s to %s)", from, to),
		Type:    dto.ReportTypeTabular,
		Columns: []string{"ID", "Client", "Created", "Due Date", "Total", "Status"},
		Rows: lo.Map(entries, func(e reportEntry, _ int) []any {
			return []any{e.inv.ID, e.inv.ClientName, e.inv.CreatedAt, e.inv.DueDate, e.totals.GrandTotal, e.status}
		}),
	}, nil
}

// GetSummaryStatistics aggregates the invoice set by status and by
// client; each group carries a count and the grand total / balance due
// sums, sorted by group key ascending.
func (s *reportService) GetSummaryStatistics(ctx context.Context) (*dto.SummaryReportResponse, error) {
	entries, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byStatus := aggregate(entries, func(e reportEntry) string {
		return string(e.status)
	})
	byClient := aggregate(entries, func(e reportEntry) string {
		return e.inv.ClientName
	})

	return &dto.SummaryReportResponse{
		Title:    "Invoice Summary Statistics",
		Type:     dto.ReportTypeSummary,
		ByStatus: byStatus,
		ByClient: byClient,
	}, nil
}

func aggregate(entries []reportEntry, keyFn func(reportEntry) string) []dto.SummaryGroup {
	grouped := lo.GroupBy(entries, keyFn)

	groups := make([]dto.SummaryGroup, 0, len(grouped))
	for key, members := range grouped {
		totalValue := decimal.Zero
		totalDue := decimal.Zero
		for _, e := range members {
			totalValue = totalValue.Add(e.totals.GrandTotal)
			totalDue = totalDue.Add(e.totals.TotalDue)
		}
		groups = append(groups, dto.SummaryGroup{
			Key:        key,
			Count:      len(members),
			TotalValue: totalValue,
			TotalDue:   totalDue,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key < groups[j].Key
	})
	return groups
}
