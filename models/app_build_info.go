// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// notAvailable stands in for build metadata that was not injected by -ldflags.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata of the portal server or the admin
// client. Empty values mean a local development build.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// BuildInfoRow is one labelled line of the build information.
type BuildInfoRow struct {
	Label string
	Value string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// BuildVersion returns the raw version, empty for development builds.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// IsDevelopment reports whether the binary was built without a version.
func (a AppBuildInfo) IsDevelopment() bool {
	return a.buildVersion == ""
}

// Rows lists version, date and commit for display, with "N/A" in place of
// missing values.
func (a AppBuildInfo) Rows() []BuildInfoRow {
	return []BuildInfoRow{
		{Label: "Version", Value: orNotAvailable(a.buildVersion)},
		{Label: "Date", Value: orNotAvailable(a.buildDate)},
		{Label: "Commit", Value: orNotAvailable(a.buildCommit)},
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
