// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads ADAPTER_*, STORAGE_*, APP_* and CONFIG into cfg through the
// env and envPrefix tags of [StructuredConfig]. APP_MODE is compared
// case-insensitively, so it is lowered here.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.Mode = strings.ToLower(strings.TrimSpace(cfg.App.Mode))
	return nil
}
