package storage

import (
	"context"

	"recordbook/internal/models"
)

// TxMode scopes what a transaction may do.
type TxMode string

const (
	ReadOnly  TxMode = "readonly"
	ReadWrite TxMode = "readwrite"
)

// UpgradeFunc is invoked while opening a database whose requested version is
// higher than the stored one. Returning an error aborts the open.
type UpgradeFunc func(ctx context.Context, handle UpgradeHandle) error

// Engine opens versioned databases.
type Engine interface {
	Open(ctx context.Context, name string, version uint, upgrade UpgradeFunc) (Database, error)
}

// Database is a live handle on an opened database.
type Database interface {
	Name() string
	Version() uint
	ObjectStoreNames(ctx context.Context) ([]string, error)
	// Transaction runs fn inside a transaction scoped to storeNames. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, storeNames []string, mode TxMode, fn func(tx Tx) error) error
	Close() error
}

// Tx is a short-lived transaction over one or more object stores.
type Tx interface {
	ObjectStore(name string) (ObjectStore, error)
}

// ObjectStore exposes the record primitives of a single store.
type ObjectStore interface {
	Name() string
	// Put inserts the record when its ID is zero and overwrites it otherwise.
	Put(ctx context.Context, record *models.Record) (uint, error)
	Get(ctx context.Context, key uint) (*models.Record, error)
	// GetAll returns every record in ascending key order.
	GetAll(ctx context.Context) ([]models.Record, error)
	// Delete removes the record with key; a missing key is not an error.
	Delete(ctx context.Context, key uint) error
	Count(ctx context.Context) (int64, error)
}

// UpgradeHandle is handed to an UpgradeFunc to reshape the database.
type UpgradeHandle interface {
	OldVersion() uint
	NewVersion() uint
	CreateObjectStore(ctx context.Context, name string) error
	DeleteObjectStore(ctx context.Context, name string) error
	ObjectStoreNames(ctx context.Context) ([]string, error)
}
