// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/unibrain/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	content := fmt.Sprintf("%s\n\nVersione: %s\nData: %s\nCommit: %s\n\nesc indietro",
		titleStyle.Render("UniBrain"),
		info.BuildVersion(),
		info.BuildDate(),
		info.BuildCommit(),
	)
	return overlayBoxStyle.Render(content)
}
