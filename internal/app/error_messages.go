// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the xref
// client services and the terminal UI.
//
// Keeping them in one place ensures consistent wording on every screen.
package app

// Fallback notices for failures that carry no server message.
const (
	// MsgNetworkError is shown when the API could not be reached or the
	// request timed out.
	MsgNetworkError = "Network error. Please try again."

	// MsgGenericError is shown for any failure without a better message.
	MsgGenericError = "Something went wrong. Please try again."

	// MsgSignInFirst is shown when an operation needs a token and none is held.
	MsgSignInFirst = "Please log in to continue."

	// MsgNoChanges is shown when a part edit would send no fields.
	MsgNoChanges = "No changes to save."
)

// Validation notices produced before any network call.
const (
	MsgCredentialsRequired = "Email and password are required."
	MsgEmailRequired       = "Please enter your email."
	MsgInvalidEmail        = "Enter a valid email address."
	MsgWeakPassword        = "Password must be at least 8 characters with 1 uppercase letter and 1 special character."
	MsgInvalidPassword     = "Please enter a valid password (at least 8 characters, 1 uppercase, 1 special)."
	MsgPasswordMismatch    = "Passwords do not match."
	MsgPasswordsRequired   = "Please fill both password fields."
	MsgInvalidName         = "Name should only contain letters and spaces."
	MsgAllFieldsRequired   = "All fields are required."
	MsgIncompleteLink      = "Verification link is incomplete."

	MsgEmptyQuery      = "Please enter a part number."
	MsgSuspiciousQuery = "Search contains characters that are not allowed."

	MsgUnsupportedFile = "Only .csv, .xlsx and .xls files are supported."
	MsgNoFileSelected  = "Please select a file first."
)
