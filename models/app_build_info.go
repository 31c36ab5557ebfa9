// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// unknownBuildValue replaces build metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the release metadata injected with -ldflags into the
// client and server binaries.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo stores the metadata. Empty values read back as "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.buildCommit) }

// String renders "<version> (<commit>, <date>)".
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.BuildVersion(), a.BuildCommit(), a.BuildDate())
}

func orUnknown(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return unknownBuildValue
	}
	return v
}
