// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-xref/models"
)

const tokensTable = "tokens"

var tokenColumns = []string{"role", "token", "expires_at", "updated_at"}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func buildSelectTokenQuery(role models.Role) (string, []any, error) {
	query, args, err := builder().
		Select(tokenColumns...).
		From(tokensTable).
		Where(sq.Eq{"role": string(role)}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertTokenQuery(token models.StoredToken) (string, []any, error) {
	var expiresAt any
	if token.ExpiresAt != nil {
		expiresAt = token.ExpiresAt.UTC()
	}

	query, args, err := builder().
		Insert(tokensTable).
		Columns(tokenColumns...).
		Values(string(token.Role), token.Value, expiresAt, token.UpdatedAt.UTC()).
		Suffix("ON CONFLICT(role) DO UPDATE SET token = excluded.token, expires_at = excluded.expires_at, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteTokenQuery(role models.Role) (string, []any, error) {
	query, args, err := builder().
		Delete(tokensTable).
		Where(sq.Eq{"role": string(role)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
