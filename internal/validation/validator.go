package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form accepted for record dates.
const DateLayout = "2006-01-02"

var storeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,100}$`)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// FieldError describes one violated rule, keyed by the JSON field name.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("decimal_max_scale", validateDecimalMaxScale)
	_ = v.RegisterValidation("decimal_max_integer_digits", validateDecimalMaxIntegerDigits)
	_ = v.RegisterValidation("not_blank", validateNotBlank)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("store_name", validateStoreName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns every violation in field declaration order.
// It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	return FieldErrors(err)
}

// FieldErrors converts a validator error into field errors.
func FieldErrors(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: messageFor(fe.Field(), fe),
		})
	}
	return fields
}

// Var validates a single value against tag and reports violations under the
// given field name.
func (v *Validator) Var(field string, value interface{}, tag string) []FieldError {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Field: field, Message: err.Error()}}
	}

	fields := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, FieldError{
			Field:   field,
			Tag:     fe.Tag(),
			Message: messageFor(field, fe),
		})
	}
	return fields
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "positive_decimal":
		return fmt.Sprintf("%s must be a positive number", field)
	case "decimal_max_scale":
		return fmt.Sprintf("%s must have at most %s decimal places", field, fe.Param())
	case "decimal_max_integer_digits":
		return fmt.Sprintf("%s must have at most %s digits before the decimal point", field, fe.Param())
	case "not_blank":
		return fmt.Sprintf("%s must be a non-empty string", field)
	case "calendar_date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD or RFC 3339 form", field)
	case "store_name":
		return fmt.Sprintf("%s must contain only letters, digits, '-' or '_'", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// decimalValue lets rules see decimal.Decimal fields as their string form.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// fieldDecimal reads a decimal, string or numeric field as a decimal.
func fieldDecimal(field reflect.Value) (decimal.Decimal, bool) {
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return d, err == nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(field.Int()), true
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()), true
	default:
		return decimal.Zero, false
	}
}

// validatePositiveDecimal validates that a decimal, string or numeric field is greater than 0
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl.Field())
	return ok && d.IsPositive()
}

// validateDecimalMaxScale rejects values with more decimal places than the
// param. Trailing zeros do not count.
func validateDecimalMaxScale(fl validator.FieldLevel) bool {
	scale, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("decimal_max_scale: bad param %q", fl.Param()))
	}
	d, ok := fieldDecimal(fl.Field())
	return ok && d.Equal(d.Truncate(int32(scale)))
}

// validateDecimalMaxIntegerDigits rejects values whose integer part has more
// digits than the param.
func validateDecimalMaxIntegerDigits(fl validator.FieldLevel) bool {
	digits, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		panic(fmt.Sprintf("decimal_max_integer_digits: bad param %q", fl.Param()))
	}
	d, ok := fieldDecimal(fl.Field())
	return ok && d.Abs().LessThan(decimal.New(1, int32(digits)))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func validateStoreName(fl validator.FieldLevel) bool {
	return storeNamePattern.MatchString(fl.Field().String())
}
