// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package telemetry tracks model-call usage: a session-scoped running
// total plus an optional persistent call history. Everything here is
// best-effort accounting; a telemetry failure never fails a chat turn.
package telemetry
