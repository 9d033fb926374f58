package models

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sums are limited to 15 significant digits: SQLite keeps that many exactly
// in a NUMERIC column and PostgreSQL's NUMERIC(20,4) holds all of them.
const (
	SumMaxScale         = 4
	SumMaxIntegerDigits = 11
	CategoryMaxLength   = 100
)

var (
	ErrRecordDateRequired     = errors.New("record date is required")
	ErrRecordSumNotPositive   = errors.New("record sum must be a positive number")
	ErrRecordSumOutOfRange    = errors.New("record sum has too many digits")
	ErrRecordCategoryRequired = errors.New("record category must be a non-empty string")
	ErrRecordCategoryTooLong  = errors.New("record category is too long")
	ErrRecordStoreRequired    = errors.New("record store name is required")
)

// Record is a single financial entry kept in an object store.
// Extra carries any caller-defined fields beyond date, sum and category.
type Record struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	DatabaseName string          `gorm:"type:varchar(100);not null;index:idx_records_db_store" json:"-"`
	StoreName    string          `gorm:"type:varchar(100);not null;index:idx_records_db_store" json:"-"`
	Date         time.Time       `gorm:"not null;index" json:"date" validate:"required"`
	Sum          decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"sum" validate:"positive_decimal,decimal_max_scale=4,decimal_max_integer_digits=11"`
	Category     string          `gorm:"type:varchar(100);not null;index" json:"category" validate:"not_blank,max=100"`
	Extra        JSONMap         `gorm:"type:text" json:"extra,omitempty"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for Record
func (r *Record) TableName() string {
	return "records"
}

// BeforeCreate hook for Record
func (r *Record) BeforeCreate(tx *gorm.DB) error {
	r.Date = calendarUTC(r.Date)
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return r.Validate()
}

// BeforeUpdate hook for Record
func (r *Record) BeforeUpdate(tx *gorm.DB) error {
	r.Date = calendarUTC(r.Date)
	r.UpdatedAt = time.Now().UTC()
	return r.Validate()
}

// AfterFind hook for Record. PostgreSQL hands timestamps back in the session
// time zone.
func (r *Record) AfterFind(tx *gorm.DB) error {
	r.Date = r.Date.UTC()
	return nil
}

// calendarUTC keeps the wall clock of t and drops its offset, so the
// calendar date a record was written with is the one every engine reports.
func calendarUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// Validate checks the record invariants and returns the first violation.
func (r *Record) Validate() error {
	if r.StoreName == "" {
		return ErrRecordStoreRequired
	}
	if r.Date.IsZero() {
		return ErrRecordDateRequired
	}
	if !r.Sum.IsPositive() {
		return ErrRecordSumNotPositive
	}
	if !SumFits(r.Sum) {
		return ErrRecordSumOutOfRange
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrRecordCategoryRequired
	}
	if utf8.RuneCountInString(r.Category) > CategoryMaxLength {
		return ErrRecordCategoryTooLong
	}
	return nil
}

// Year returns the calendar year of the record date.
func (r *Record) Year() int {
	return r.Date.Year()
}

// Month returns the calendar month (1-12) of the record date.
func (r *Record) Month() int {
	return int(r.Date.Month())
}

// InPeriod reports whether the record falls into the given year and,
// when month is non-zero, the given month.
func (r *Record) InPeriod(year, month int) bool {
	if r.Year() != year {
		return false
	}
	return month == 0 || r.Month() == month
}

// SumFits reports whether sum can be stored without losing digits.
func SumFits(sum decimal.Decimal) bool {
	if !sum.Equal(sum.Truncate(SumMaxScale)) {
		return false
	}
	return sum.Abs().LessThan(decimal.New(1, SumMaxIntegerDigits))
}
