package models

import "time"

// SchemaVersion tracks the version each named database has been upgraded to.
type SchemaVersion struct {
	DatabaseName string    `gorm:"type:varchar(100);primaryKey" json:"database_name"`
	Version      uint      `gorm:"not null" json:"version"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// TableName returns the table name for SchemaVersion
func (s *SchemaVersion) TableName() string {
	return "schema_versions"
}

// ObjectStore is a named collection of records inside a database.
type ObjectStore struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DatabaseName  string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_object_stores_db_name" json:"database_name"`
	Name          string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_object_stores_db_name" json:"name"`
	AutoIncrement bool      `gorm:"not null;default:true" json:"auto_increment"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// TableName returns the table name for ObjectStore
func (o *ObjectStore) TableName() string {
	return "object_stores"
}
