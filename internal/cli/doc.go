// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-interactive commands: one-shot
// questions, catalog inspection, and saved-conversation management.
// Output adapts to the terminal; piped output stays plain.
package cli
