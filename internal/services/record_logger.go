package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"recordbook/internal/models"
)

type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID that record store
// log entries are tagged with.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RecordLogger provides structured logging for record store operations
type RecordLogger struct {
	logger *slog.Logger
}

// NewRecordLogger creates a new record logger
func NewRecordLogger(logger *slog.Logger) RecordLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordLogger{
		logger: logger,
	}
}

func (rl *RecordLogger) LogDatabaseOpened(ctx context.Context, name string, version uint, duration time.Duration) {
	rl.logger.InfoContext(ctx, "record database opened",
		slog.String("event_type", "database_opened"),
		slog.String("database", name),
		slog.Uint64("version", uint64(version)),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RecordLogger) LogRecordWritten(ctx context.Context, operation, storeName string, key uint) {
	rl.logger.InfoContext(ctx, "record written",
		slog.String("event_type", "record_written"),
		slog.String("operation", operation),
		slog.String("store", storeName),
		slog.Uint64("key", uint64(key)),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

func (rl *RecordLogger) LogRecordDeleted(ctx context.Context, storeName string, key uint) {
	rl.logger.InfoContext(ctx, "record deleted",
		slog.String("event_type", "record_deleted"),
		slog.String("store", storeName),
		slog.Uint64("key", uint64(key)),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogReportGenerated logs at debug level; reports are read-only.
func (rl *RecordLogger) LogReportGenerated(ctx context.Context, storeName string, result *models.ReportResult) {
	rl.logger.DebugContext(ctx, "report generated",
		slog.String("event_type", "report_generated"),
		slog.String("store", storeName),
		slog.Int("year", result.Period.Year),
		slog.Int("month", result.Period.Month),
		slog.String("status", result.Status),
		slog.Int("record_count", result.RecordCount),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// LogOperationFailed logs store failures as errors and rejected input as warnings.
func (rl *RecordLogger) LogOperationFailed(ctx context.Context, operation, storeName string, err error) {
	level := slog.LevelError
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		level = slog.LevelWarn
	}

	rl.logger.Log(ctx, level, "record store operation failed",
		slog.String("event_type", "operation_failed"),
		slog.String("operation", operation),
		slog.String("store", storeName),
		slog.String("error", err.Error()),
		slog.String("request_id", RequestIDFromContext(ctx)),
	)
}

// RequestIDFromContext returns the request ID set by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
