// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solemate/solemate-tui/internal/telemetry"
	"github.com/solemate/solemate-tui/internal/ui/styles"
)

// RenderStatusBar renders the bottom status line: model name and turn
// state on the left, cumulative usage on the right. failed marks the
// last turn as errored; busy wins when both are set.
func RenderStatusBar(width int, modelName string, busy, failed bool, snap telemetry.Snapshot) string {
	state := "ready"
	switch {
	case busy:
		state = styles.StatusBusy.Render("thinking...")
	case failed:
		state = styles.ErrorText.Render("last turn failed")
	}
	left := fmt.Sprintf(" %s | %s", modelName, state)

	right := fmt.Sprintf("%d calls  $%.4f ", snap.TotalCalls, snap.TotalCost)
	if snap.LastCall != nil {
		right = fmt.Sprintf("last: %d/%d tok  %s", snap.LastCall.InputTokens,
			snap.LastCall.OutputTokens, right)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
