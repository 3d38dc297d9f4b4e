// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/muesli/termenv"
)

func TestColorProfileHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if got := ColorProfile(); got != termenv.Ascii {
		t.Errorf("ColorProfile() = %v with NO_COLOR set, want Ascii", got)
	}
}

func TestColorProfilePipedOutput(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	// Test binaries run without a TTY on stdout, so styled output
	// must already be disabled here.
	if got := ColorProfile(); got != termenv.Ascii {
		t.Errorf("ColorProfile() = %v without a TTY, want Ascii", got)
	}
}

func TestTerminalWidthFallback(t *testing.T) {
	// No TTY: detection fails and the default width applies.
	if got := TerminalWidth(); got != defaultTerminalWidth {
		t.Errorf("TerminalWidth() = %d, want %d", got, defaultTerminalWidth)
	}
}
