// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the parts cross-reference
// API.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from HTTP. Every authenticated call takes the bearer token explicitly, so a
// single adapter can serve the user and admin identities side by side.
//
// Non-2xx responses are mapped to *[APIError] values wrapping the sentinels in
// errors.go, so callers can use [errors.Is] for status classes (for example
// [ErrUnauthorized] for 401) and [errors.As] for the server's message.
// Transport failures wrap [ErrNetwork].
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-xref/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the cross-reference API.
type ServerAdapter interface {
	// Login exchanges credentials for a bearer token (POST /auth/login/).
	// Both identities use the same endpoint; the returned token is not stored.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Signup registers a new account (POST /auth/register/).
	Signup(ctx context.Context, req models.SignupRequest) error

	// Profile fetches the account behind token (POST /auth/profile/).
	Profile(ctx context.Context, token string) (models.UserProfile, error)

	// Search runs a catalog search (POST /catalog/search/). token may be
	// empty; anonymous searches are allowed by the API. A 2xx response with
	// "success": false is reported as an error.
	Search(ctx context.Context, token string, req models.SearchRequest) (models.SearchResponse, error)

	// Manufacturers lists manufacturer names for the search filter
	// (GET /catalog/manufacturers/).
	Manufacturers(ctx context.Context, token string) ([]string, error)

	// Plans lists subscription plans (POST /auth/plan/).
	Plans(ctx context.Context) ([]models.Plan, error)

	// ForgotPassword requests a reset link for email (POST /auth/forgot-password/).
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password using an emailed uid/token pair
	// (POST /auth/reset-password/{uid}/{token}/).
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// VerifyEmail confirms an address using an emailed uid/token pair
	// (POST /auth/verify-email/{uid}/{token}/).
	VerifyEmail(ctx context.Context, uid, token string) error

	// ContactUs sends a contact form message (POST /auth/contact_us/).
	ContactUs(ctx context.Context, req models.ContactRequest) error

	// DeleteAccount permanently removes the account behind token after
	// re-confirming its password (POST /auth/delete/).
	DeleteAccount(ctx context.Context, token, password string) error

	// AdminDashboard fetches overview metrics (POST /admin/dashboard/).
	AdminDashboard(ctx context.Context, token string) (models.Dashboard, error)

	// AdminParts lists one page of the catalog, optionally filtered
	// (POST /admin/parts/?page=&search=).
	AdminParts(ctx context.Context, token string, page int, search string) (models.PartsPage, error)

	// EditPart sends changed fields of a part (PUT /admin/parts/{id}/edit/).
	EditPart(ctx context.Context, token, id string, changed map[string]string) error

	// DeletePart removes a part (DELETE /admin/parts/{id}/delete/).
	DeletePart(ctx context.Context, token, id string) error

	// UploadCatalog streams a catalog file as multipart field "file"
	// (POST /admin/upload-data/) and returns the server's message.
	UploadCatalog(ctx context.Context, token, fileName string, r io.Reader) (string, error)
}
