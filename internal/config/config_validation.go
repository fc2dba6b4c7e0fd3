// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const maxSearchPageSize = 100

// validate rejects values that no source may legally produce, such as
// negative durations. Missing values are handled by defaults.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.App.Debounce < 0 {
		return fmt.Errorf("%w: negative debounce", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Mode != "user" && cfg.App.Mode != "admin" {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	if cfg.App.SearchPageSize < 1 || cfg.App.SearchPageSize > maxSearchPageSize {
		return fmt.Errorf("%w: search page size must be in [1, %d]", ErrInvalidAppConfigs, maxSearchPageSize)
	}

	return nil
}
