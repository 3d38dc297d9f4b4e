// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Turn is one role/content entry in the model-facing transcript.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Transcript is the append-only role/content log sent to the model.
// The system turn, when present, always sits at index 0; at most one
// exists.
type Transcript struct {
	turns []Turn
}

// SetSystem installs or replaces the system turn without touching the
// rest of the history.
func (t *Transcript) SetSystem(content string) {
	if t.HasSystem() {
		t.turns[0].Content = content
		return
	}
	t.turns = append([]Turn{{Role: RoleSystem, Content: content}}, t.turns...)
}

// HasSystem reports whether a system turn is installed at index 0.
func (t *Transcript) HasSystem() bool {
	return len(t.turns) > 0 && t.turns[0].Role == RoleSystem
}

// AppendUser appends a user turn.
func (t *Transcript) AppendUser(content string) {
	t.turns = append(t.turns, Turn{Role: RoleUser, Content: content})
}

// AppendAssistant appends an assistant turn.
func (t *Transcript) AppendAssistant(content string) {
	t.turns = append(t.turns, Turn{Role: RoleAssistant, Content: content})
}

// RemoveLastUser drops the trailing user turn if one is present. Used
// to roll back a turn whose model call failed so a retry resumes from
// the last successful exchange.
func (t *Transcript) RemoveLastUser() {
	if n := len(t.turns); n > 0 && t.turns[n-1].Role == RoleUser {
		t.turns = t.turns[:n-1]
	}
}

// Turns returns a copy of the log; callers cannot mutate the
// transcript through it.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Restore replaces the whole log, e.g. when resuming a saved
// conversation.
func (t *Transcript) Restore(turns []Turn) {
	t.turns = make([]Turn, len(turns))
	copy(t.turns, turns)
}

// Len reports the number of turns including the system turn.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Reset clears the conversation history, preserving the system turn.
func (t *Transcript) Reset() {
	if t.HasSystem() {
		t.turns = t.turns[:1]
		return
	}
	t.turns = nil
}
