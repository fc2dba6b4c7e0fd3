// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state in a local SQLite database.
// The only state kept is the bearer token of each identity.
package store

import (
	"context"

	"github.com/MKhiriev/go-xref/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository stores at most one bearer token per role.
type TokenRepository interface {
	// Get returns the token saved for role, or [ErrTokenNotFound].
	Get(ctx context.Context, role models.Role) (models.StoredToken, error)
	// Save inserts or replaces the token for token.Role.
	Save(ctx context.Context, token models.StoredToken) error
	// Delete removes the token for role. Deleting a missing token is not an error.
	Delete(ctx context.Context, role models.Role) error
}
