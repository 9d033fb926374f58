package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"recordbook/internal/models"
	"recordbook/internal/storage"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// hostErrorCode maps a driver or gorm error to the code surfaced to callers.
// Known conditions map onto the storage codes; other driver failures keep the
// raw driver code (SQLITE_<n>, PG_<sqlstate>).
func hostErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return storage.CodeAbort
	case errors.Is(err, context.DeadlineExceeded):
		return storage.CodeTimeout
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.CodeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return storage.CodeConstraint
	case isRecordValidationError(err):
		return storage.CodeData
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteCode(sqliteErr)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return postgresCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return postgresCode(string(pqErr.Code))
	}

	return storage.CodeUnknown
}

func isRecordValidationError(err error) bool {
	return errors.Is(err, models.ErrRecordDateRequired) ||
		errors.Is(err, models.ErrRecordSumNotPositive) ||
		errors.Is(err, models.ErrRecordSumOutOfRange) ||
		errors.Is(err, models.ErrRecordCategoryRequired) ||
		errors.Is(err, models.ErrRecordCategoryTooLong) ||
		errors.Is(err, models.ErrRecordStoreRequired)
}

func sqliteCode(err sqlite3.Error) string {
	switch err.Code {
	case sqlite3.ErrConstraint:
		return storage.CodeConstraint
	case sqlite3.ErrReadonly:
		return storage.CodeReadOnly
	case sqlite3.ErrInterrupt:
		return storage.CodeAbort
	default:
		return fmt.Sprintf("SQLITE_%d", int(err.Code))
	}
}

func postgresCode(sqlState string) string {
	switch {
	case strings.HasPrefix(sqlState, "22"):
		return storage.CodeData
	case strings.HasPrefix(sqlState, "23"):
		return storage.CodeConstraint
	case sqlState == "25006":
		return storage.CodeReadOnly
	case sqlState == "57014":
		return storage.CodeAbort
	default:
		return "PG_" + sqlState
	}
}
