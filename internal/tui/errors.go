// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"time"

	"github.com/MKhiriev/go-xref/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// humanizeError renders err as a short notice. Transport details never
// reach the screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrStaleResponse) {
		return ""
	}
	return service.UserMessage(err)
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdDebounce(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}
