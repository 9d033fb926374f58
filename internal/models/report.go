package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

const (
	ReportStatusFound = "found"
	ReportStatusEmpty = "empty"

	// NoRecordsMessage is attached to empty report results.
	NoRecordsMessage = "no records"
)

// CategoryReport aggregates the records of one category.
type CategoryReport struct {
	TotalSum decimal.Decimal `json:"total_sum"`
	Items    []Record        `json:"items"`
}

// Report maps a category name to its aggregate.
type Report map[string]*CategoryReport

// Categories returns the report's category names in sorted order.
func (r Report) Categories() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GrandTotal sums the totals of every category.
func (r Report) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range r {
		total = total.Add(c.TotalSum)
	}
	return total
}

// RecordCount returns the number of items across all categories.
func (r Report) RecordCount() int {
	count := 0
	for _, c := range r {
		count += len(c.Items)
	}
	return count
}

// ReportPeriod identifies the window a report covers. Month is 0 for yearly reports.
type ReportPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
}

// ReportResult is the outcome of a yearly or monthly report. Status is either
// ReportStatusFound with populated categories or ReportStatusEmpty.
type ReportResult struct {
	Status      string          `json:"status"`
	Store       string          `json:"store"`
	Period      ReportPeriod    `json:"period"`
	Categories  Report          `json:"categories"`
	RecordCount int             `json:"record_count"`
	GrandTotal  decimal.Decimal `json:"grand_total"`
	Message     string          `json:"message,omitempty"`
}

// IsEmpty returns true when no record matched the report period.
func (r *ReportResult) IsEmpty() bool {
	return r.Status == ReportStatusEmpty
}

// NewReportResult builds a tagged result from an aggregated report.
func NewReportResult(store string, period ReportPeriod, report Report) *ReportResult {
	if len(report) == 0 {
		return &ReportResult{
			Status:     ReportStatusEmpty,
			Store:      store,
			Period:     period,
			Categories: Report{},
			GrandTotal: decimal.Zero,
			Message:    NoRecordsMessage,
		}
	}

	return &ReportResult{
		Status:      ReportStatusFound,
		Store:       store,
		Period:      period,
		Categories:  report,
		RecordCount: report.RecordCount(),
		GrandTotal:  report.GrandTotal(),
	}
}
