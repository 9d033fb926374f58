package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"recordbook/internal/models"
	"recordbook/internal/storage"
	"recordbook/internal/validation"
)

// RecordStoreConfig names the versioned database a RecordStore works on and
// the routine that prepares its object stores on a version increase.
type RecordStoreConfig struct {
	DatabaseName string
	Version      uint
	Upgrade      storage.UpgradeFunc
}

// RecordStore is a thin wrapper over a storage engine. Every operation runs in
// its own short-lived transaction scoped to a single object store.
type RecordStore struct {
	engine    storage.Engine
	config    RecordStoreConfig
	validator *validation.Validator
	metrics   MetricsRecorderInterface
	logger    RecordLoggerInterface

	mu sync.RWMutex
	db storage.Database
}

// NewRecordStore creates a new RecordStoreInterface instance
func NewRecordStore(
	engine storage.Engine,
	config RecordStoreConfig,
	metrics MetricsRecorderInterface,
	logger RecordLoggerInterface,
) RecordStoreInterface {
	return &RecordStore{
		engine:    engine,
		config:    config,
		validator: validation.GetValidator(),
		metrics:   metrics,
		logger:    logger,
	}
}

// Open opens the configured database, running the upgrade routine when the
// configured version is higher than the stored one. The handle is cached, so
// later calls return it without touching the engine.
func (s *RecordStore) Open(ctx context.Context) (storage.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	start := time.Now()
	db, err := s.engine.Open(ctx, s.config.DatabaseName, s.config.Version, s.config.Upgrade)
	s.observe("open", start, err)
	if err != nil {
		openErr := &OpenError{
			Name:    s.config.DatabaseName,
			Version: s.config.Version,
			Code:    storage.CodeOf(err),
			Err:     err,
		}
		s.logger.LogOperationFailed(ctx, "open", "", openErr)
		return nil, openErr
	}

	s.db = db
	s.logger.LogDatabaseOpened(ctx, db.Name(), db.Version(), time.Since(start))
	return db, nil
}

// Upsert validates record and inserts it under a fresh key. Any ID on the
// input is ignored; use Update to overwrite an existing record.
func (s *RecordStore) Upsert(ctx context.Context, storeName string, record *models.Record) (*models.Record, error) {
	start := time.Now()

	if err := s.validateRecord(record); err != nil {
		s.observe("upsert", start, err)
		return nil, err
	}

	stored := *record
	stored.ID = 0
	stored.CreatedAt = time.Time{}
	stored.UpdatedAt = time.Time{}

	err := s.write(ctx, "upsert", storeName, func(store storage.ObjectStore) error {
		key, err := store.Put(ctx, &stored)
		if err != nil {
			return err
		}
		stored.ID = key
		return nil
	})
	s.observe("upsert", start, err)
	if err != nil {
		return nil, err
	}

	s.logger.LogRecordWritten(ctx, "upsert", storeName, stored.ID)
	return &stored, nil
}

// Update overwrites the record stored under record.ID. The key must exist.
func (s *RecordStore) Update(ctx context.Context, storeName string, record *models.Record) (*models.Record, error) {
	start := time.Now()

	if record != nil && record.ID == 0 {
		err := newValidationError("id", ErrMissingKey.Error())
		s.observe("update", start, err)
		return nil, err
	}
	if err := s.validateRecord(record); err != nil {
		s.observe("update", start, err)
		return nil, err
	}

	stored := *record
	err := s.write(ctx, "update", storeName, func(store storage.ObjectStore) error {
		if _, err := store.Get(ctx, stored.ID); err != nil {
			return err
		}
		_, err := store.Put(ctx, &stored)
		return err
	})
	s.observe("update", start, err)
	if err != nil {
		return nil, err
	}

	s.logger.LogRecordWritten(ctx, "update", storeName, stored.ID)
	return &stored, nil
}

// ListAll returns every record of the store in ascending key order.
func (s *RecordStore) ListAll(ctx context.Context, storeName string) ([]models.Record, error) {
	start := time.Now()

	var records []models.Record
	err := s.read(ctx, "list_all", storeName, func(store storage.ObjectStore) error {
		var err error
		records, err = store.GetAll(ctx)
		return err
	})
	s.observe("list_all", start, err)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []models.Record{}
	}
	return records, nil
}

func (s *RecordStore) Get(ctx context.Context, storeName string, key uint) (*models.Record, error) {
	start := time.Now()

	var record *models.Record
	err := s.read(ctx, "get", storeName, func(store storage.ObjectStore) error {
		var err error
		record, err = store.Get(ctx, key)
		return err
	})
	s.observe("get", start, err)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteByKey removes the record stored under key. A missing key is not an error.
func (s *RecordStore) DeleteByKey(ctx context.Context, storeName string, key uint) error {
	start := time.Now()

	err := s.write(ctx, "delete", storeName, func(store storage.ObjectStore) error {
		return store.Delete(ctx, key)
	})
	s.observe("delete", start, err)
	if err != nil {
		return err
	}

	s.logger.LogRecordDeleted(ctx, storeName, key)
	return nil
}

// YearlyReport aggregates the store's records dated in year by category.
func (s *RecordStore) YearlyReport(ctx context.Context, storeName string, year int) (*models.ReportResult, error) {
	if year <= 0 {
		err := newValidationError("year", ErrInvalidYear.Error())
		s.observe("yearly_report", time.Now(), err)
		return nil, err
	}
	return s.report(ctx, "yearly_report", storeName, models.ReportPeriod{Year: year}, InYear(year))
}

// MonthlyReport aggregates the store's records dated in month (1-12) of year by category.
func (s *RecordStore) MonthlyReport(ctx context.Context, storeName string, month, year int) (*models.ReportResult, error) {
	violations := make([]validation.FieldError, 0, 2)
	if month < 1 || month > 12 {
		violations = append(violations, validation.FieldError{Field: "month", Message: ErrInvalidMonth.Error()})
	}
	if year <= 0 {
		violations = append(violations, validation.FieldError{Field: "year", Message: ErrInvalidYear.Error()})
	}
	if len(violations) > 0 {
		err := &ValidationError{Fields: violations}
		s.observe("monthly_report", time.Now(), err)
		return nil, err
	}

	period := models.ReportPeriod{Year: year, Month: month}
	return s.report(ctx, "monthly_report", storeName, period, InMonth(year, month))
}

func (s *RecordStore) report(
	ctx context.Context,
	op, storeName string,
	period models.ReportPeriod,
	match RecordPredicate,
) (*models.ReportResult, error) {
	records, err := s.ListAll(ctx, storeName)
	if err != nil {
		return nil, err
	}

	result := models.NewReportResult(storeName, period, BuildReport(records, match))

	s.metrics.IncrementCounter("record_store.report", map[string]string{
		"kind":   op,
		"status": result.Status,
	})
	s.logger.LogReportGenerated(ctx, storeName, result)
	return result, nil
}

// ObjectStoreNames lists the object stores of the open database.
func (s *RecordStore) ObjectStoreNames(ctx context.Context) ([]string, error) {
	db, err := s.handle("object_store_names", "")
	if err != nil {
		return nil, err
	}

	names, err := db.ObjectStoreNames(ctx)
	if err != nil {
		return nil, &StoreError{Op: "object_store_names", Code: storage.CodeOf(err), Err: err}
	}
	return names, nil
}

// Close releases the cached handle. Open may be called again afterwards.
func (s *RecordStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *RecordStore) validateRecord(record *models.Record) error {
	if record == nil {
		return newValidationError("record", ErrRecordNil.Error())
	}
	if fields := s.validator.Struct(record); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (s *RecordStore) handle(op, storeName string) (storage.Database, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, &StoreError{Op: op, Store: storeName, Code: storage.CodeInvalidState, Err: ErrNotOpen}
	}
	return s.db, nil
}

func (s *RecordStore) read(ctx context.Context, op, storeName string, fn func(store storage.ObjectStore) error) error {
	return s.transact(ctx, op, storeName, storage.ReadOnly, fn)
}

// write runs fn in a read-write transaction and refreshes the store size gauge
// before the transaction commits.
func (s *RecordStore) write(ctx context.Context, op, storeName string, fn func(store storage.ObjectStore) error) error {
	return s.transact(ctx, op, storeName, storage.ReadWrite, func(store storage.ObjectStore) error {
		if err := fn(store); err != nil {
			return err
		}

		count, err := store.Count(ctx)
		if err != nil {
			return err
		}
		s.metrics.RecordGauge("record_store.records", float64(count), map[string]string{"store": storeName})
		return nil
	})
}

func (s *RecordStore) transact(
	ctx context.Context,
	op, storeName string,
	mode storage.TxMode,
	fn func(store storage.ObjectStore) error,
) error {
	db, err := s.handle(op, storeName)
	if err != nil {
		return err
	}

	err = db.Transaction(ctx, []string{storeName}, mode, func(tx storage.Tx) error {
		store, err := tx.ObjectStore(storeName)
		if err != nil {
			return err
		}
		return fn(store)
	})
	if err == nil {
		return nil
	}

	storeErr := &StoreError{Op: op, Store: storeName, Code: storage.CodeOf(err), Err: err}
	s.logger.LogOperationFailed(ctx, op, storeName, storeErr)
	return storeErr
}

func (s *RecordStore) observe(op string, start time.Time, err error) {
	status := "success"
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = "invalid"
	case err != nil:
		status = "failed"
	}

	s.metrics.IncrementCounter("record_store.operation", map[string]string{
		"operation": op,
		"status":    status,
	})
	s.metrics.RecordProcessingTime("record_store."+op, time.Since(start))
}
