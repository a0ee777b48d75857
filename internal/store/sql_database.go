package store

import (
	"database/sql"

	"github.com/MKhiriev/calm-journal/internal/logger"
	"github.com/MKhiriev/calm-journal/migrations"
)

// DB is the SQLite connection shared by SQL-backed repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded cache schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
