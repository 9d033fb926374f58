package services

import (
	"recordbook/internal/models"

	"github.com/shopspring/decimal"
)

// RecordPredicate selects the records a report covers.
type RecordPredicate func(record *models.Record) bool

// InYear selects records dated in the given calendar year.
func InYear(year int) RecordPredicate {
	return func(record *models.Record) bool {
		return record.InPeriod(year, 0)
	}
}

// InMonth selects records dated in the given calendar month (1-12) of year.
func InMonth(year, month int) RecordPredicate {
	return func(record *models.Record) bool {
		return record.InPeriod(year, month)
	}
}

// BuildReport groups the matching records by category and totals their sums.
// Items keep the order of records.
func BuildReport(records []models.Record, match RecordPredicate) models.Report {
	report := make(models.Report)
	for i := range records {
		record := &records[i]
		if match != nil && !match(record) {
			continue
		}

		entry, ok := report[record.Category]
		if !ok {
			entry = &models.CategoryReport{TotalSum: decimal.Zero, Items: make([]models.Record, 0, 1)}
			report[record.Category] = entry
		}
		entry.TotalSum = entry.TotalSum.Add(record.Sum)
		entry.Items = append(entry.Items, *record)
	}
	return report
}
