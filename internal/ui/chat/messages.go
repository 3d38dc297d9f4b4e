// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/solemate/solemate-tui/internal/catalog"

// turnDoneMsg signals that an in-flight submission finished. The
// store already holds the outcome (reply or error message); err only
// feeds the status bar's failed indicator.
type turnDoneMsg struct {
	err error
}

// catalogReloadedMsg signals that the watcher swapped in a fresh
// catalog.
type catalogReloadedMsg struct {
	catalog *catalog.Catalog
}
