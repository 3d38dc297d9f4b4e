// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solemate/solemate-tui/internal/catalog"
)

// Role identifies the author of a turn or message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// DisplayMessage is a UI-facing log entry. Content always carries the
// full raw text; assistant messages produced by the recommendation
// parser additionally carry intro/outro text and resolved products.
// Products non-empty implies the role is assistant.
type DisplayMessage struct {
	ID        string
	Role      Role
	Content   string
	IntroText string
	OutroText string
	Products  []catalog.Product
	IsError   bool
	CreatedAt time.Time
}

// NewUserMessage creates a display message for user input.
func NewUserMessage(content string) DisplayMessage {
	return DisplayMessage{
		ID:        newMessageID(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates a plain assistant display message.
func NewAssistantMessage(content string) DisplayMessage {
	return DisplayMessage{
		ID:        newMessageID(),
		Role:      RoleAssistant,
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// NewErrorMessage wraps a failure as an assistant-role message so it
// renders inside the conversation rather than as a modal error.
func NewErrorMessage(content string) DisplayMessage {
	m := NewAssistantMessage(content)
	m.IsError = true
	return m
}

// newMessageID returns ids unique within a session. Wall-clock millis
// plus a random suffix keeps them collision-resistant and roughly
// sortable in logs.
func newMessageID() string {
	return fmt.Sprintf("msg-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
