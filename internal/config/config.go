// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Defaults applied before any other source is merged.
const (
	DefaultServerAddress  = "http://localhost:8000"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "xref.db"
	DefaultSearchPageSize = 10
	DefaultDebounce       = 500 * time.Millisecond
	DefaultMode           = "user"
)

// StructuredConfig is the top-level configuration container for the
// xref client. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds UI and search behaviour settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local token database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote API address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Mode selects which identity the client runs as: "user" or "admin".
	// Env: APP_MODE
	Mode string `env:"MODE"`

	// SearchPageSize is the number of rows requested per search page.
	// Env: APP_SEARCH_PAGE_SIZE
	SearchPageSize int `env:"SEARCH_PAGE_SIZE"`

	// Debounce is the quiet period after the last keystroke before a
	// filter or admin search is applied (e.g. "500ms").
	// Env: APP_DEBOUNCE
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Storage groups the configuration of the local persistence backend.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps
// persisted bearer tokens.
type DB struct {
	// DSN is the SQLite file path (e.g. "xref.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// HTTPAddress is the API origin, with or without scheme
	// (e.g. "https://api.example.com", "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Mode:           DefaultMode,
			SearchPageSize: DefaultSearchPageSize,
			Debounce:       DefaultDebounce,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
