// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package prompt renders the product catalog and the assistant's
// standing instructions into the system turn sent with every model
// call.
package prompt
