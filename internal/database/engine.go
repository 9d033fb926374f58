package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"recordbook/internal/models"
	"recordbook/internal/storage"

	"gorm.io/gorm"
)

var _ storage.Engine = (*Engine)(nil)

// Engine implements storage.Engine on top of gorm. Databases are logical
// namespaces inside one physical database, so several record databases can
// share a single SQLite file or PostgreSQL schema.
type Engine struct {
	db *gorm.DB
}

// NewEngine creates an engine over an open gorm connection. The engine does
// not own the connection.
func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

type upgradeAbortedError struct {
	err error
}

func (e *upgradeAbortedError) Error() string {
	return fmt.Sprintf("upgrade aborted: %v", e.err)
}

func (e *upgradeAbortedError) Unwrap() error {
	return e.err
}

// Open opens the named database, running upgrade inside the open transaction
// when version is higher than the stored version.
func (e *Engine) Open(ctx context.Context, name string, version uint, upgrade storage.UpgradeFunc) (storage.Database, error) {
	if name == "" {
		return nil, storage.NewEngineError("open", storage.CodeInvalidAccess, errors.New("database name is required"))
	}
	if version == 0 {
		return nil, storage.NewEngineError("open", storage.CodeInvalidAccess, storage.ErrInvalidVersion)
	}

	var oldVersion uint
	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.SchemaVersion
		exists := true
		if err := tx.Where("database_name = ?", name).Take(&current).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			exists = false
		}

		oldVersion = current.Version
		if version < current.Version {
			return storage.NewEngineError("open", storage.CodeVersion,
				fmt.Errorf("%w: requested %d, stored %d", storage.ErrVersionLower, version, current.Version))
		}
		if version == current.Version {
			return nil
		}

		if upgrade != nil {
			handle := &upgradeHandle{tx: tx, databaseName: name, oldVersion: current.Version, newVersion: version}
			if err := upgrade(ctx, handle); err != nil {
				return &upgradeAbortedError{err: err}
			}
		}

		if !exists {
			return tx.Create(&models.SchemaVersion{
				DatabaseName: name,
				Version:      version,
				UpdatedAt:    time.Now().UTC(),
			}).Error
		}

		return tx.Model(&models.SchemaVersion{}).
			Where("database_name = ?", name).
			Updates(map[string]interface{}{
				"version":    version,
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		var engineErr *storage.EngineError
		var abortErr *upgradeAbortedError
		switch {
		case errors.As(err, &abortErr):
			return nil, storage.NewEngineError("open", storage.CodeAbort, err)
		case errors.As(err, &engineErr):
			return nil, engineErr
		default:
			return nil, storage.NewEngineError("open", hostErrorCode(err), err)
		}
	}

	if oldVersion != version {
		slog.InfoContext(ctx, "database upgraded",
			"database", name,
			"old_version", oldVersion,
			"new_version", version)
	}

	return &gormDatabase{db: e.db, name: name, version: version}, nil
}

type gormDatabase struct {
	db      *gorm.DB
	name    string
	version uint
	closed  atomic.Bool
}

func (d *gormDatabase) Name() string {
	return d.name
}

func (d *gormDatabase) Version() uint {
	return d.version
}

func (d *gormDatabase) ObjectStoreNames(ctx context.Context) ([]string, error) {
	if d.closed.Load() {
		return nil, storage.NewEngineError("object_store_names", storage.CodeInvalidState, storage.ErrClosed)
	}

	names, err := objectStoreNames(d.db.WithContext(ctx), d.name)
	if err != nil {
		return nil, storage.NewEngineError("object_store_names", hostErrorCode(err), err)
	}
	return names, nil
}

func (d *gormDatabase) Transaction(ctx context.Context, storeNames []string, mode storage.TxMode, fn func(tx storage.Tx) error) error {
	if d.closed.Load() {
		return storage.NewEngineError("transaction", storage.CodeInvalidState, storage.ErrClosed)
	}
	if len(storeNames) == 0 {
		return storage.NewEngineError("transaction", storage.CodeInvalidAccess, errors.New("transaction scope is empty"))
	}
	if mode != storage.ReadOnly && mode != storage.ReadWrite {
		return storage.NewEngineError("transaction", storage.CodeInvalidAccess, fmt.Errorf("invalid transaction mode %q", mode))
	}

	scope := make(map[string]bool, len(storeNames))
	for _, name := range storeNames {
		scope[name] = true
	}

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ObjectStore{}).
			Where("database_name = ? AND name IN ?", d.name, storeNames).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to resolve object stores: %w", err)
		}
		if int(count) != len(scope) {
			return storage.NewEngineError("transaction", storage.CodeNotFound,
				fmt.Errorf("%w: %v", storage.ErrStoreNotFound, storeNames))
		}

		return fn(&gormTx{tx: tx, databaseName: d.name, mode: mode, scope: scope})
	})
	if err == nil {
		return nil
	}

	var engineErr *storage.EngineError
	if errors.As(err, &engineErr) {
		return err
	}
	return storage.NewEngineError("transaction", hostErrorCode(err), err)
}

// Close invalidates the handle. The underlying connection stays open.
func (d *gormDatabase) Close() error {
	d.closed.Store(true)
	return nil
}

type gormTx struct {
	tx           *gorm.DB
	databaseName string
	mode         storage.TxMode
	scope        map[string]bool
}

func (t *gormTx) ObjectStore(name string) (storage.ObjectStore, error) {
	if !t.scope[name] {
		return nil, storage.NewEngineError("object_store", storage.CodeNotFound,
			fmt.Errorf("%w: %s", storage.ErrStoreNotInTx, name))
	}
	return &gormObjectStore{tx: t.tx, databaseName: t.databaseName, name: name, mode: t.mode}, nil
}

func objectStoreNames(db *gorm.DB, databaseName string) ([]string, error) {
	names := make([]string, 0)
	if err := db.Model(&models.ObjectStore{}).
		Where("database_name = ?", databaseName).
		Order("name ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to list object stores: %w", err)
	}
	return names, nil
}
