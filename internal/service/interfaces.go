// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business layer: the two identity
// session managers, the route guard, the paginated search client and thin
// wrappers for the account and admin operations of the API.
//
// Services never talk HTTP directly; they go through [adapter.ServerAdapter].
// Bearer tokens are read from and written to [store.TokenRepository].
package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-xref/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionManager owns the identity state of one role. It is the only writer
// of that state; everything else reads snapshots.
type SessionManager interface {
	// Role returns the identity this manager serves.
	Role() models.Role

	// Load reads the persisted token and, when one exists, fetches the
	// profile. A missing token ends in Ready with no network call. A failed
	// fetch ends in Ready with Profile nil and Err set; the token is kept.
	Load(ctx context.Context) models.Session

	// Reload fetches the profile again with the token already held in state.
	Reload(ctx context.Context) models.Session

	// Login validates creds, exchanges them for a token, persists it and
	// then behaves like Load.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout deletes the persisted token and clears the profile. No network.
	Logout(ctx context.Context) error

	// Snapshot returns a copy of the current state.
	Snapshot() models.Session

	// Subscribe returns a channel receiving a snapshot after every state
	// change, and a function that cancels the subscription.
	Subscribe() (<-chan models.Session, func())
}

// RouteGuard decides whether a protected screen may be shown.
type RouteGuard interface {
	// Check reports whether a non-blank token is persisted for the guard's
	// role. The token itself is never validated.
	Check(ctx context.Context) models.GuardDecision
}

// SearchService runs catalog searches.
type SearchService interface {
	// Search validates q locally, clamps its paging and fetches one page.
	Search(ctx context.Context, q models.SearchQuery) (models.SearchResultPage, error)

	// Manufacturers lists manufacturer names for the search filter.
	Manufacturers(ctx context.Context) ([]string, error)
}

// AccountService wraps the account endpoints of the end-user identity.
type AccountService interface {
	Signup(ctx context.Context, req models.SignupRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, uid, token string) error
	ContactUs(ctx context.Context, req models.ContactRequest) error

	// DeleteAccount removes the signed-in account and logs the user out.
	DeleteAccount(ctx context.Context, password string) error

	// Plans lists subscription plans, marking the one the profile is on.
	Plans(ctx context.Context) ([]models.Plan, error)
}

// AdminService wraps the admin endpoints. Every call uses the admin token.
type AdminService interface {
	Dashboard(ctx context.Context) (models.Dashboard, error)
	Parts(ctx context.Context, page int, search string) (models.PartsPage, error)

	// EditPart sends only the fields of edit that differ from original.
	// It returns ErrNothingChanged without a network call when none do.
	EditPart(ctx context.Context, original models.Part, edit models.PartEdit) error
	DeletePart(ctx context.Context, id string) error

	// UploadCatalog sends a .csv, .xlsx or .xls file and returns the
	// server's message.
	UploadCatalog(ctx context.Context, fileName string, r io.Reader) (string, error)
}
