package store

import (
	"database/sql"

	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/migrations"
)

// DB is the local database handle shared by repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
