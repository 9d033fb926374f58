package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"recordbook/internal/models"
	"recordbook/internal/storage"

	"gorm.io/gorm"
)

type upgradeHandle struct {
	tx           *gorm.DB
	databaseName string
	oldVersion   uint
	newVersion   uint
}

func (h *upgradeHandle) OldVersion() uint {
	return h.oldVersion
}

func (h *upgradeHandle) NewVersion() uint {
	return h.newVersion
}

func (h *upgradeHandle) CreateObjectStore(ctx context.Context, name string) error {
	if name == "" {
		return storage.NewEngineError("create_object_store", storage.CodeInvalidAccess, errors.New("object store name is required"))
	}

	var count int64
	if err := h.tx.WithContext(ctx).Model(&models.ObjectStore{}).
		Where("database_name = ? AND name = ?", h.databaseName, name).
		Count(&count).Error; err != nil {
		return storage.NewEngineError("create_object_store", hostErrorCode(err), err)
	}
	if count > 0 {
		return storage.NewEngineError("create_object_store", storage.CodeConstraint,
			fmt.Errorf("%w: %s", storage.ErrStoreExists, name))
	}

	store := &models.ObjectStore{
		DatabaseName:  h.databaseName,
		Name:          name,
		AutoIncrement: true,
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.tx.WithContext(ctx).Create(store).Error; err != nil {
		return storage.NewEngineError("create_object_store", hostErrorCode(err), err)
	}
	return nil
}

// DeleteObjectStore drops the store together with every record it holds.
func (h *upgradeHandle) DeleteObjectStore(ctx context.Context, name string) error {
	result := h.tx.WithContext(ctx).
		Where("database_name = ? AND name = ?", h.databaseName, name).
		Delete(&models.ObjectStore{})
	if result.Error != nil {
		return storage.NewEngineError("delete_object_store", hostErrorCode(result.Error), result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.NewEngineError("delete_object_store", storage.CodeNotFound,
			fmt.Errorf("%w: %s", storage.ErrStoreNotFound, name))
	}

	if err := h.tx.WithContext(ctx).
		Where("database_name = ? AND store_name = ?", h.databaseName, name).
		Delete(&models.Record{}).Error; err != nil {
		return storage.NewEngineError("delete_object_store", hostErrorCode(err), err)
	}
	return nil
}

func (h *upgradeHandle) ObjectStoreNames(ctx context.Context) ([]string, error) {
	names, err := objectStoreNames(h.tx.WithContext(ctx), h.databaseName)
	if err != nil {
		return nil, storage.NewEngineError("object_store_names", hostErrorCode(err), err)
	}
	return names, nil
}
