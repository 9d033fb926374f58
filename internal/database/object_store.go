package database

import (
	"context"
	"errors"
	"fmt"

	"recordbook/internal/models"
	"recordbook/internal/storage"

	"gorm.io/gorm"
)

type gormObjectStore struct {
	tx           *gorm.DB
	databaseName string
	name         string
	mode         storage.TxMode
}

func (s *gormObjectStore) Name() string {
	return s.name
}

func (s *gormObjectStore) scoped(ctx context.Context) *gorm.DB {
	return s.tx.WithContext(ctx).
		Where("database_name = ? AND store_name = ?", s.databaseName, s.name)
}

// Put inserts a record with a fresh key when ID is zero. With a non-zero ID it
// overwrites the record stored under that key, or inserts it under that key
// when absent.
func (s *gormObjectStore) Put(ctx context.Context, record *models.Record) (uint, error) {
	if s.mode != storage.ReadWrite {
		return 0, storage.NewEngineError("put", storage.CodeReadOnly, storage.ErrReadOnly)
	}
	if record == nil {
		return 0, storage.NewEngineError("put", storage.CodeData, errors.New("record cannot be nil"))
	}

	record.DatabaseName = s.databaseName
	record.StoreName = s.name

	if record.ID == 0 {
		if err := s.tx.WithContext(ctx).Create(record).Error; err != nil {
			return 0, storage.NewEngineError("put", hostErrorCode(err), fmt.Errorf("failed to insert record: %w", err))
		}
		return record.ID, nil
	}

	var existing models.Record
	err := s.tx.WithContext(ctx).Where("id = ?", record.ID).Take(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.tx.WithContext(ctx).Create(record).Error; err != nil {
			return 0, storage.NewEngineError("put", hostErrorCode(err), fmt.Errorf("failed to insert record: %w", err))
		}
		return record.ID, nil
	case err != nil:
		return 0, storage.NewEngineError("put", hostErrorCode(err), fmt.Errorf("failed to load record: %w", err))
	}

	if existing.DatabaseName != s.databaseName || existing.StoreName != s.name {
		return 0, storage.NewEngineError("put", storage.CodeConstraint,
			fmt.Errorf("key %d belongs to another object store", record.ID))
	}

	record.CreatedAt = existing.CreatedAt
	if err := s.tx.WithContext(ctx).Save(record).Error; err != nil {
		return 0, storage.NewEngineError("put", hostErrorCode(err), fmt.Errorf("failed to overwrite record: %w", err))
	}
	return record.ID, nil
}

func (s *gormObjectStore) Get(ctx context.Context, key uint) (*models.Record, error) {
	var record models.Record
	if err := s.scoped(ctx).Where("id = ?", key).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.NewEngineError("get", storage.CodeNotFound,
				fmt.Errorf("%w: key %d", storage.ErrRecordNotFound, key))
		}
		return nil, storage.NewEngineError("get", hostErrorCode(err), fmt.Errorf("failed to get record: %w", err))
	}
	return &record, nil
}

func (s *gormObjectStore) GetAll(ctx context.Context) ([]models.Record, error) {
	records := make([]models.Record, 0)
	if err := s.scoped(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, storage.NewEngineError("get_all", hostErrorCode(err), fmt.Errorf("failed to get records: %w", err))
	}
	return records, nil
}

func (s *gormObjectStore) Delete(ctx context.Context, key uint) error {
	if s.mode != storage.ReadWrite {
		return storage.NewEngineError("delete", storage.CodeReadOnly, storage.ErrReadOnly)
	}

	if err := s.scoped(ctx).Where("id = ?", key).Delete(&models.Record{}).Error; err != nil {
		return storage.NewEngineError("delete", hostErrorCode(err), fmt.Errorf("failed to delete record: %w", err))
	}
	return nil
}

func (s *gormObjectStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.scoped(ctx).Model(&models.Record{}).Count(&count).Error; err != nil {
		return 0, storage.NewEngineError("count", hostErrorCode(err), fmt.Errorf("failed to count records: %w", err))
	}
	return count, nil
}
