package database

import (
	"context"
	"path/filepath"
	"testing"

	"recordbook/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func sqliteConfig(t *testing.T, autoMigrate bool) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Database: config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			Path:           filepath.Join(t.TempDir(), "nested", "records.db"),
			MaxConnections: 1,
			MaxIdleConns:   1,
			AutoMigrate:    autoMigrate,
		},
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle"}, logger.Silent)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestNew_SQLiteCreatesDirectory(t *testing.T) {
	cfg := sqliteConfig(t, false)

	db, err := New(&cfg.Database, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, config.DriverSQLite, db.Driver())
	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.FileExists(t, cfg.Database.Path)
}

func TestInitialize(t *testing.T) {
	for _, autoMigrate := range []bool{false, true} {
		name := "gorm auto migrate"
		if autoMigrate {
			name = "embedded migrations"
		}

		t.Run(name, func(t *testing.T) {
			db, err := Initialize(sqliteConfig(t, autoMigrate))
			require.NoError(t, err)
			defer db.Close()

			for _, table := range []string{"schema_versions", "object_stores", "records"} {
				assert.True(t, db.Migrator().HasTable(table), "table %s should exist", table)
			}
		})
	}
}
