package console

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AbdoTarek2211/Cost-Management/internal/api/dto"
	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/shopspring/decimal"
)

func (c *Console) reportMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, "\n--- Reports ---")
	fmt.Fprintln(c.out, "1. Status report")
	fmt.Fprintln(c.out, "2. Client report")
	fmt.Fprintln(c.out, "3. Date range report")
	fmt.Fprintln(c.out, "4. Summary statistics")
	fmt.Fprintln(c.out, "5. Back")

	choice, ok := c.prompt("Select an option: ")
	if !ok {
		return nil
	}

	var rendered string
	switch choice {
	case "1":
		status, _ := c.prompt("Filter by status (or enter for all): ")
		report, err := c.reports.GetStatusReport(ctx, status)
		if err != nil {
			return err
		}
		rendered = renderReport(report)
	case "2":
		client, _ := c.prompt("Filter by client name (or enter for all): ")
		report, err := c.reports.GetClientReport(ctx, client)
		if err != nil {
			return err
		}
		rendered = renderReport(report)
	case "3":
		start, err := c.promptDate("Start date (yyyy-mm-dd, or enter for open): ")
		if err != nil {
			return err
		}
		end, err := c.promptDate("End date (yyyy-mm-dd, or enter for open): ")
		if err != nil {
			return err
		}
		report, err := c.reports.GetDateRangeReport(ctx, start, end)
		if err != nil {
			return err
		}
		rendered = renderReport(report)
	case "4":
		summary, err := c.reports.GetSummaryStatistics(ctx)
		if err != nil {
			return err
		}
		rendered = renderSummary(summary)
	case "5":
		return nil
	default:
		fmt.Fprintln(c.out, "Invalid option.")
		return nil
	}

	fmt.Fprintln(c.out, rendered)

	if save, _ := c.prompt("Save report to file? (y/n): "); strings.EqualFold(save, "y") {
		filename := fmt.Sprintf("Report_%s.txt", time.Now().Format("20060102_150405"))
		if err := os.WriteFile(filename, []byte(rendered), 0o644); err != nil {
			return ierr.WithError(err).
				WithHintf("Could not write report file %s", filename).
				Mark(ierr.ErrSystem)
		}
		fmt.Fprintf(c.out, "Report saved to %s\n", filename)
	}
	return nil
}

func (c *Console) promptDate(label string) (*time.Time, error) {
	raw, ok := c.prompt(label)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, ierr.NewError("invalid date").
			WithHintf("%q is not a valid date, expected yyyy-mm-dd", raw).
			Mark(ierr.ErrValidation)
	}
	return &t, nil
}

// renderReport lays out a tabular report as plain text: title, a ruled
// header line, one row per invoice and an invoice count footer.
func renderReport(report *dto.ReportResponse) string {
	var b strings.Builder

	header := strings.Join(report.Columns, " | ")
	width := len(header)
	if len(report.Title) > width {
		width = len(report.Title)
	}

	b.WriteString(report.Title + "\n")
	b.WriteString(strings.Repeat("=", width) + "\n")
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", width) + "\n")

	for _, row := range report.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = formatCell(cell)
		}
		b.WriteString(strings.Join(cells, " | ") + "\n")
	}

	b.WriteString(strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("Total Invoices: %d\n", len(report.Rows)))
	return b.String()
}

func renderSummary(summary *dto.SummaryReportResponse) string {
	var b strings.Builder

	b.WriteString(summary.Title + "\n")
	b.WriteString(strings.Repeat("=", len(summary.Title)) + "\n")

	b.WriteString("\nBy Status:\n")
	for _, g := range summary.ByStatus {
		b.WriteString(fmt.Sprintf("%s: %d invoice(s), total %s, due %s\n",
			g.Key, g.Count, money(g.TotalValue), money(g.TotalDue)))
	}

	b.WriteString("\nBy Client:\n")
	for _, g := range summary.ByClient {
		b.WriteString(fmt.Sprintf("%s: %d invoice(s), total %s, due %s\n",
			g.Key, g.Count, money(g.TotalValue), money(g.TotalDue)))
	}
	return b.String()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case time.Time:
		return shortDate(v)
	case decimal.Decimal:
		return money(v)
	default:
		return fmt.Sprint(v)
	}
}

func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func shortDate(t time.Time) string {
	return t.Format("2006-01-02")
}
