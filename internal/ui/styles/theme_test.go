// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestApplyTheme(t *testing.T) {
	was := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(was)

	ApplyTheme("dark")
	if !lipgloss.HasDarkBackground() {
		t.Error(`ApplyTheme("dark") did not force a dark background`)
	}

	ApplyTheme("light")
	if lipgloss.HasDarkBackground() {
		t.Error(`ApplyTheme("light") did not force a light background`)
	}

	// Unrecognized values leave the detected mode alone.
	ApplyTheme("light")
	ApplyTheme("auto")
	if lipgloss.HasDarkBackground() {
		t.Error(`ApplyTheme("auto") changed the background mode`)
	}
}
