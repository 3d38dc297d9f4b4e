// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea model for the interactive
// conversation view: a scrollback viewport, a single-line input, and
// a status bar wired to usage telemetry. The conversation store owns
// all conversation state; this package only renders it and feeds it
// events.
package chat
