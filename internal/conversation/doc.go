// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation coordinates the two conversation logs: the
// UI-facing message list and the model-facing transcript. Every
// mutation of either log goes through the Store so the two stay
// consistent; rendering metadata never leaks into the model call
// payload, and failed calls never poison the transcript.
package conversation
