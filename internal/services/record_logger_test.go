package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"recordbook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(buf *bytes.Buffer) RecordLoggerInterface {
	return NewRecordLogger(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestRecordLogger_RecordWrittenCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)

	ctx := WithRequestID(context.Background(), "trace-123")
	logger.LogRecordWritten(ctx, "upsert", "expenses", 7)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "record written", entry["msg"])
	assert.Equal(t, "expenses", entry["store"])
	assert.Equal(t, float64(7), entry["key"])
	assert.Equal(t, "trace-123", entry["request_id"])
}

func TestRecordLogger_FailureLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)

	logger.LogOperationFailed(context.Background(), "upsert", "expenses", newValidationError("sum", "sum must be a positive number"))
	assert.Equal(t, "WARN", lastEntry(t, &buf)["level"])

	logger.LogOperationFailed(context.Background(), "upsert", "expenses", errors.New("disk full"))
	assert.Equal(t, "ERROR", lastEntry(t, &buf)["level"])
}

func TestRecordLogger_ReportGenerated(t *testing.T) {
	var buf bytes.Buffer
	logger := newBufferedLogger(&buf)

	result := models.NewReportResult("expenses", models.ReportPeriod{Year: 2023, Month: 1}, nil)
	logger.LogReportGenerated(context.Background(), "expenses", result)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, models.ReportStatusEmpty, entry["status"])
	assert.Equal(t, float64(1), entry["month"])
}

func TestNewRecordLogger_NilFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewRecordLogger(nil))
}
