package dto

import (
	"fmt"

	"recordbook/internal/models"
	"recordbook/internal/validation"

	"github.com/shopspring/decimal"
)

// RecordRequest is the body of record create and update requests.
// Sum accepts a JSON number or a decimal string.
type RecordRequest struct {
	Date     string                 `json:"date" validate:"required,calendar_date"`
	Sum      decimal.Decimal        `json:"sum" validate:"positive_decimal,decimal_max_scale=4,decimal_max_integer_digits=11"`
	Category string                 `json:"category" validate:"not_blank,max=100"`
	Extra    map[string]interface{} `json:"extra,omitempty"`
}

// ToRecord converts the request into a record. The date must already have
// passed validation.
func (r *RecordRequest) ToRecord() (*models.Record, error) {
	date, err := validation.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &models.Record{
		Date:     date,
		Sum:      r.Sum,
		Category: r.Category,
		Extra:    models.JSONMap(r.Extra),
	}, nil
}

// ReportQuery carries the period of a report request.
type ReportQuery struct {
	Year  int `query:"year" json:"year" validate:"required,min=1"`
	Month int `query:"month" json:"month" validate:"omitempty,min=1,max=12"`
}

// RecordListResponse represents the response for listing records
type RecordListResponse struct {
	Store   string          `json:"store"`
	Records []models.Record `json:"records"`
	Count   int             `json:"count"`
}

// StoreListResponse represents the response for listing object stores
type StoreListResponse struct {
	Database string   `json:"database"`
	Version  uint     `json:"version"`
	Stores   []string `json:"stores"`
}
