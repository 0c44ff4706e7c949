// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/f4f-study-portal/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	lines := []string{"Application: f4f study portal admin"}
	for _, row := range info.Rows() {
		lines = append(lines, fmt.Sprintf("%s: %s", row.Label, row.Value))
	}
	if info.IsDevelopment() {
		lines = append(lines, "", helpStyle.Render("development build: any server version is accepted"))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
