// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the solemate
// TUI. All lipgloss styles live here so components stay presentation
// free.
package styles

import "github.com/charmbracelet/lipgloss"

// ApplyTheme pins the adaptive palette to one background mode. "auto"
// (or anything unrecognized) keeps lipgloss's terminal detection.
func ApplyTheme(theme string) {
	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
}

// =============================================================================
// PALETTE
// =============================================================================

var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#9D79FF"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0E8A6C", Dark: "#2BD5A5"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#C53B53", Dark: "#FF6B81"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#C9C9C9", Dark: "#4A4A4A"}
)

// =============================================================================
// MESSAGE STYLES
// =============================================================================

var (
	// UserLabel prefixes user lines.
	UserLabel = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	// AssistantLabel prefixes assistant lines.
	AssistantLabel = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// ErrorText renders in-conversation error messages.
	ErrorText = lipgloss.NewStyle().Foreground(ColorError)

	// IntroText renders the lead-in above product cards.
	IntroText = lipgloss.NewStyle()

	// OutroText renders the fixed refinement prompt, de-emphasized.
	OutroText = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)
)

// =============================================================================
// PRODUCT CARD STYLES
// =============================================================================

var (
	CardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardTitle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	CardPrice = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	CardMeta = lipgloss.NewStyle().Foreground(ColorMuted)

	CardLink = lipgloss.NewStyle().Underline(true).Foreground(ColorAccent)
)

// =============================================================================
// CHROME
// =============================================================================

var (
	Banner = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	BannerHint = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBar = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	StatusBusy = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

	InputPrompt = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
)
