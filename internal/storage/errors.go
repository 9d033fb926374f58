package storage

import (
	"errors"
	"fmt"
)

// Host error codes reported by engines.
const (
	CodeNotFound      = "NOT_FOUND_ERR"
	CodeConstraint    = "CONSTRAINT_ERR"
	CodeData          = "DATA_ERR"
	CodeReadOnly      = "READ_ONLY_ERR"
	CodeVersion       = "VERSION_ERR"
	CodeAbort         = "ABORT_ERR"
	CodeTimeout       = "TIMEOUT_ERR"
	CodeInvalidState  = "INVALID_STATE_ERR"
	CodeInvalidAccess = "INVALID_ACCESS_ERR"
	CodeUnknown       = "UNKNOWN_ERR"
)

var (
	ErrStoreNotFound  = errors.New("object store not found")
	ErrRecordNotFound = errors.New("record not found")
	ErrStoreExists    = errors.New("object store already exists")
	ErrReadOnly       = errors.New("transaction is read-only")
	ErrStoreNotInTx   = errors.New("object store is not part of the transaction scope")
	ErrVersionLower   = errors.New("requested version is lower than the stored version")
	ErrInvalidVersion = errors.New("version must be a positive integer")
	ErrClosed         = errors.New("database handle is closed")
)

// EngineError is returned by engines for any failed request.
type EngineError struct {
	Op   string
	Code string
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// NewEngineError wraps err with the operation and host code.
func NewEngineError(op, code string, err error) *EngineError {
	return &EngineError{Op: op, Code: code, Err: err}
}

// CodeOf extracts the host code from err, or CodeUnknown.
func CodeOf(err error) string {
	var engineErr *EngineError
	if errors.As(err, &engineErr) {
		return engineErr.Code
	}
	return CodeUnknown
}
