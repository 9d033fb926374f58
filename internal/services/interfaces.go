package services

import (
	"context"
	"time"

	"recordbook/internal/models"
	"recordbook/internal/storage"
)

// RecordStoreInterface persists records in the object stores of one
// versioned database and derives category reports from them.
type RecordStoreInterface interface {
	Open(ctx context.Context) (storage.Database, error)
	Upsert(ctx context.Context, storeName string, record *models.Record) (*models.Record, error)
	Update(ctx context.Context, storeName string, record *models.Record) (*models.Record, error)
	ListAll(ctx context.Context, storeName string) ([]models.Record, error)
	Get(ctx context.Context, storeName string, key uint) (*models.Record, error)
	DeleteByKey(ctx context.Context, storeName string, key uint) error
	YearlyReport(ctx context.Context, storeName string, year int) (*models.ReportResult, error)
	MonthlyReport(ctx context.Context, storeName string, month, year int) (*models.ReportResult, error)
	ObjectStoreNames(ctx context.Context) ([]string, error)
	Close() error
}

// RecordLoggerInterface provides structured logging for record store operations
type RecordLoggerInterface interface {
	LogDatabaseOpened(ctx context.Context, name string, version uint, duration time.Duration)
	LogRecordWritten(ctx context.Context, operation, storeName string, key uint)
	LogRecordDeleted(ctx context.Context, storeName string, key uint)
	LogReportGenerated(ctx context.Context, storeName string, result *models.ReportResult)
	LogOperationFailed(ctx context.Context, operation, storeName string, err error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface signs and verifies bearer tokens for write routes
type TokenServiceInterface interface {
	GenerateToken(subject, scope string) (string, time.Time, error)
	ValidateToken(tokenString, requiredScope string) (*models.TokenClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}
