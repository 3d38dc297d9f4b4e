// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists conversations as JSON files, one per
// conversation. Writes are atomic; products inside messages are
// stored by id and re-resolved against the catalog on load.
package storage
