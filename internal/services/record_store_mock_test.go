package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"recordbook/internal/models"
	"recordbook/internal/services/service_mocks"
	"recordbook/internal/storage"
	"recordbook/internal/storage/storage_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// RecordStoreMockSuite drives the record store through a mocked engine to
// check how host failures surface.
type RecordStoreMockSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockEngine  *storage_mocks.MockEngine
	mockDB      *storage_mocks.MockDatabase
	mockTx      *storage_mocks.MockTx
	mockObjects *storage_mocks.MockObjectStore
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	mockLogger  *service_mocks.MockRecordLoggerInterface
	store       RecordStoreInterface
}

func TestRecordStoreMockSuite(t *testing.T) {
	suite.Run(t, new(RecordStoreMockSuite))
}

func (s *RecordStoreMockSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = storage_mocks.NewMockEngine(s.ctrl)
	s.mockDB = storage_mocks.NewMockDatabase(s.ctrl)
	s.mockTx = storage_mocks.NewMockTx(s.ctrl)
	s.mockObjects = storage_mocks.NewMockObjectStore(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockRecordLoggerInterface(s.ctrl)

	s.mockMetrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.store = NewRecordStore(s.mockEngine, RecordStoreConfig{
		DatabaseName: "finance",
		Version:      2,
	}, s.mockMetrics, s.mockLogger)
}

func (s *RecordStoreMockSuite) validRecord() *models.Record {
	return &models.Record{
		Date:     time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
		Sum:      decimal.NewFromInt(10),
		Category: "food",
	}
}

func (s *RecordStoreMockSuite) expectOpen() {
	s.mockEngine.EXPECT().Open(gomock.Any(), "finance", uint(2), gomock.Any()).Return(s.mockDB, nil)
	s.mockDB.EXPECT().Name().Return("finance").AnyTimes()
	s.mockDB.EXPECT().Version().Return(uint(2)).AnyTimes()
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "open", "status": "success",
	})
	s.mockLogger.EXPECT().LogDatabaseOpened(gomock.Any(), "finance", uint(2), gomock.Any())

	_, err := s.store.Open(s.ctx)
	s.Require().NoError(err)
}

// runTransaction makes the mocked database invoke the callback with the mocked tx.
func (s *RecordStoreMockSuite) runTransaction(mode storage.TxMode) {
	s.mockDB.EXPECT().
		Transaction(gomock.Any(), []string{testStore}, mode, gomock.Any()).
		DoAndReturn(func(ctx context.Context, names []string, mode storage.TxMode, fn func(storage.Tx) error) error {
			return fn(s.mockTx)
		})
	s.mockTx.EXPECT().ObjectStore(testStore).Return(s.mockObjects, nil)
}

func (s *RecordStoreMockSuite) TestOpen_CachesHandle() {
	s.expectOpen()

	db, err := s.store.Open(s.ctx)

	s.NoError(err)
	s.Equal(s.mockDB, db)
}

func (s *RecordStoreMockSuite) TestOpen_HostFailure() {
	hostErr := storage.NewEngineError("open", storage.CodeVersion, storage.ErrVersionLower)
	s.mockEngine.EXPECT().Open(gomock.Any(), "finance", uint(2), gomock.Any()).Return(nil, hostErr)
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "open", "status": "failed",
	})
	s.mockLogger.EXPECT().LogOperationFailed(gomock.Any(), "open", "", gomock.Any())

	_, err := s.store.Open(s.ctx)

	var openErr *OpenError
	s.Require().ErrorAs(err, &openErr)
	s.Equal(storage.CodeVersion, openErr.Code)
	s.ErrorIs(err, storage.ErrVersionLower)
}

func (s *RecordStoreMockSuite) TestOpen_PlainErrorHasUnknownCode() {
	s.mockEngine.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
	s.mockMetrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any())
	s.mockLogger.EXPECT().LogOperationFailed(gomock.Any(), "open", "", gomock.Any())

	_, err := s.store.Open(s.ctx)

	var openErr *OpenError
	s.Require().ErrorAs(err, &openErr)
	s.Equal(storage.CodeUnknown, openErr.Code)
}

func (s *RecordStoreMockSuite) TestBeforeOpen_InvalidState() {
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", gomock.Any())

	_, err := s.store.ListAll(s.ctx, testStore)

	var storeErr *StoreError
	s.Require().ErrorAs(err, &storeErr)
	s.Equal(storage.CodeInvalidState, storeErr.Code)
	s.Equal("list_all", storeErr.Op)
}

func (s *RecordStoreMockSuite) TestUpsert_ValidationSkipsStorage() {
	s.expectOpen()
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "upsert", "status": "invalid",
	})

	record := s.validRecord()
	record.Sum = decimal.NewFromInt(-5)
	_, err := s.store.Upsert(s.ctx, testStore, record)

	var validationErr *ValidationError
	s.ErrorAs(err, &validationErr)
}

func (s *RecordStoreMockSuite) TestUpsert_StripsIDAndRecordsGauge() {
	s.expectOpen()
	s.runTransaction(storage.ReadWrite)

	s.mockObjects.EXPECT().Put(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, record *models.Record) (uint, error) {
			s.Zero(record.ID)
			return 41, nil
		})
	s.mockObjects.EXPECT().Count(gomock.Any()).Return(int64(7), nil)
	s.mockMetrics.EXPECT().RecordGauge("record_store.records", float64(7), map[string]string{"store": testStore})
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "upsert", "status": "success",
	})
	s.mockLogger.EXPECT().LogRecordWritten(gomock.Any(), "upsert", testStore, uint(41))

	record := s.validRecord()
	record.ID = 3
	saved, err := s.store.Upsert(s.ctx, testStore, record)

	s.Require().NoError(err)
	s.Equal(uint(41), saved.ID)
	s.Equal(uint(3), record.ID, "input must not be mutated")
}

func (s *RecordStoreMockSuite) TestUpsert_HostErrorPropagatesCode() {
	s.expectOpen()
	hostErr := storage.NewEngineError("put", "SQLITE_13", errors.New("database or disk is full"))
	s.mockDB.EXPECT().
		Transaction(gomock.Any(), []string{testStore}, storage.ReadWrite, gomock.Any()).
		Return(hostErr)
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "upsert", "status": "failed",
	})
	s.mockLogger.EXPECT().LogOperationFailed(gomock.Any(), "upsert", testStore, gomock.Any())

	_, err := s.store.Upsert(s.ctx, testStore, s.validRecord())

	var storeErr *StoreError
	s.Require().ErrorAs(err, &storeErr)
	s.Equal("SQLITE_13", storeErr.Code)
	s.Equal(testStore, storeErr.Store)
	s.Contains(err.Error(), "SQLITE_13")
}

func (s *RecordStoreMockSuite) TestListAll_ReadOnlyTransaction() {
	s.expectOpen()
	s.runTransaction(storage.ReadOnly)
	s.mockObjects.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", gomock.Any())

	records, err := s.store.ListAll(s.ctx, testStore)

	s.NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *RecordStoreMockSuite) TestDeleteByKey() {
	s.expectOpen()
	s.runTransaction(storage.ReadWrite)
	s.mockObjects.EXPECT().Delete(gomock.Any(), uint(9)).Return(nil)
	s.mockObjects.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	s.mockMetrics.EXPECT().RecordGauge("record_store.records", float64(0), gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", map[string]string{
		"operation": "delete", "status": "success",
	})
	s.mockLogger.EXPECT().LogRecordDeleted(gomock.Any(), testStore, uint(9))

	s.NoError(s.store.DeleteByKey(s.ctx, testStore, 9))
}

func (s *RecordStoreMockSuite) TestYearlyReport_CountsReport() {
	s.expectOpen()
	s.runTransaction(storage.ReadOnly)
	s.mockObjects.EXPECT().GetAll(gomock.Any()).Return([]models.Record{
		{ID: 1, Date: time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC), Sum: decimal.NewFromInt(10), Category: "food"},
	}, nil)
	s.mockMetrics.EXPECT().IncrementCounter("record_store.operation", gomock.Any())
	s.mockMetrics.EXPECT().IncrementCounter("record_store.report", map[string]string{
		"kind": "yearly_report", "status": models.ReportStatusFound,
	})
	s.mockLogger.EXPECT().LogReportGenerated(gomock.Any(), testStore, gomock.Any())

	result, err := s.store.YearlyReport(s.ctx, testStore, 2023)

	s.Require().NoError(err)
	s.Equal(1, result.RecordCount)
}

func (s *RecordStoreMockSuite) TestClose() {
	s.expectOpen()
	s.mockDB.EXPECT().Close().Return(nil)

	s.NoError(s.store.Close())
	s.NoError(s.store.Close())
}
