// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model defines the two conversation representations: the
// model-facing transcript of role/content turns, and the UI-facing
// display messages carrying rendering metadata. The conversation
// store keeps the two in sync; nothing else writes either log.
package model
