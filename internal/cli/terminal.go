// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	// defaultTerminalWidth is the fallback when detection fails.
	defaultTerminalWidth = 80

	// minTerminalWidth is the narrowest wrap width used.
	minTerminalWidth = 40
)

// IsStdoutTTY reports whether stdout is a terminal. Rendering and
// colors are only used when it is; piped output stays plain.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, clamped to a sane range.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	if width < minTerminalWidth {
		return minTerminalWidth
	}
	return width
}

// ColorProfile returns the termenv profile for stdout, honoring
// NO_COLOR (see https://no-color.org/).
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" || !IsStdoutTTY() {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
