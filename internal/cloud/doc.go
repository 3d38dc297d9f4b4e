// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud implements the client for the hosted chat-completions
// API. It is the single boundary between the conversation core and
// the model provider: it sends the transcript, returns the raw reply
// text, and accounts the call's token usage and cost.
package cloud
