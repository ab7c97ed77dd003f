package dto

import (
	"time"

	ierr "github.com/AbdoTarek2211/Cost-Management/internal/errors"
	"github.com/shopspring/decimal"
)

// ReportType distinguishes tabular reports from summary statistics
type ReportType string

const (
	ReportTypeTabular ReportType = "tabular"
	ReportTypeSummary ReportType = "summary"
)

// ReportResponse is a tabular report: a title, ordered column names and
// rows of raw values (ints, strings, decimals, timestamps). Formatting
// of currency and dates is a rendering concern and happens at the
// presentation layer, not here.
type ReportResponse struct {
	Title   string     `json:"title"`
	Type    ReportType `json:"type"`
	Columns []string   `json:"columns"`
	Rows    [][]any    `json:"rows"`
}

// StatusReportRequest filters the status report
type StatusReportRequest struct {
	Status string `form:"status"`
}

// ClientReportRequest filters the client report by a case-insensitive
// substring of the client name
type ClientReportRequest struct {
	Client string `form:"client"`
}

// DateRangeReportRequest bounds the date-range report inclusively on
// CreatedAt; either bound may be open
type DateRangeReportRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Parse interprets the bounds as yyyy-mm-dd dates
func (r *DateRangeReportRequest) Parse() (start, end *time.Time, err error) {
	if r.StartDate != "" {
		t, parseErr := time.Parse("2006-01-02", r.StartDate)
		if parseErr != nil {
			return nil, nil, ierr.WithError(parseErr).
				WithHint("Start date must be in yyyy-mm-dd format").
				Mark(ierr.ErrValidation)
		}
		start = &t
	}
	if r.EndDate != "" {
		t, parseErr := time.Parse("2006-01-02", r.EndDate)
		if parseErr != nil {
			return nil, nil, ierr.WithError(parseErr).
				WithHint("End date must be in yyyy-mm-dd format").
				Mark(ierr.ErrValidation)
		}
		end = &t
	}
	return start, end, nil
}

// SummaryGroup is one aggregation bucket of the summary statistics
type SummaryGroup struct {
	Key        string          `json:"key"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"total_value"`
	TotalDue   decimal.Decimal `json:"total_due"`
}

// SummaryReportResponse aggregates the invoice set by status and by
// client, each group sorted by key ascending
type SummaryReportResponse struct {
	Title    string         `json:"title"`
	Type     ReportType     `json:"type"`
	ByStatus []SummaryGroup `json:"by_status"`
	ByClient []SummaryGroup `json:"by_client"`
}
