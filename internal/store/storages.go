package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-xref/internal/config"
	"github.com/MKhiriev/go-xref/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed to the service layer.
type ClientStorages struct {
	// TokenRepository keeps the bearer tokens of both identities.
	TokenRepository TokenRepository

	db *DB
}

// NewClientStorages opens the SQLite file at cfg.DB.DSN, applies pending
// migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenRepository: NewTokenRepository(db, logger),
		db:              db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
