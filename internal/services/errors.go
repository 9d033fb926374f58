package services

import (
	"errors"
	"fmt"
	"strings"

	"recordbook/internal/validation"
)

var (
	ErrNotOpen      = errors.New("record database is not open")
	ErrRecordNil    = errors.New("record cannot be nil")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be a positive integer")
	ErrMissingKey   = errors.New("record id is required for update")
)

// ValidationError reports every rule a caller-supplied value violated.
// It is returned before any storage call is made.
type ValidationError struct {
	Fields []validation.FieldError
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []validation.FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Has reports whether field is among the violations.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Message returns the violation message for field, or an empty string.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// OpenError reports a failed open or upgrade of the record database.
type OpenError struct {
	Name    string
	Version uint
	Code    string
	Err     error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open database %q at version %d (%s): %v", e.Name, e.Version, e.Code, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed transaction or request against an object store.
type StoreError struct {
	Op    string
	Store string
	Code  string
	Err   error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s on store %q failed (%s): %v", e.Op, e.Store, e.Code, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
