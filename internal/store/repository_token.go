package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-xref/internal/logger"
	"github.com/MKhiriev/go-xref/models"
)

type tokenRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTokenRepository returns a SQLite-backed [TokenRepository].
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	return &tokenRepository{db: db, logger: logger, now: time.Now}
}

func (r *tokenRepository) Get(ctx context.Context, role models.Role) (models.StoredToken, error) {
	query, args, err := buildSelectTokenQuery(role)
	if err != nil {
		return models.StoredToken{}, err
	}

	var (
		token     models.StoredToken
		roleStr   string
		expiresAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&roleStr, &token.Value, &expiresAt, &token.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredToken{}, ErrTokenNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "tokenRepository.Get").
			Str("role", string(role)).
			Msg("failed to read token")
		return models.StoredToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	token.Role = models.Role(roleStr)
	if expiresAt.Valid {
		t := expiresAt.Time
		token.ExpiresAt = &t
	}

	return token, nil
}

func (r *tokenRepository) Save(ctx context.Context, token models.StoredToken) error {
	if token.UpdatedAt.IsZero() {
		token.UpdatedAt = r.now()
	}

	query, args, err := buildUpsertTokenQuery(token)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "tokenRepository.Save").
			Str("role", string(token.Role)).
			Msg("failed to save token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *tokenRepository) Delete(ctx context.Context, role models.Role) error {
	query, args, err := buildDeleteTokenQuery(role)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "tokenRepository.Delete").
			Str("role", string(role)).
			Msg("failed to delete token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
