// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components holds the reusable render functions of the
// solemate TUI: product cards, the status bar, and the welcome
// banner. Everything here is a pure string renderer; state lives in
// the chat model.
package components
