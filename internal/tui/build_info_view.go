// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-xref/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, mode models.Role) string {
	var b strings.Builder

	b.WriteString("Application: xref\n")
	b.WriteString("Mode:        ")
	b.WriteString(string(mode))
	b.WriteString("\n")
	b.WriteString("Version:     ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date:        ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit:      ")
	b.WriteString(info.BuildCommit())

	return renderPage("ABOUT", b.String(), "esc: back")
}
