// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/cloud"
	"github.com/solemate/solemate-tui/internal/model"
	"github.com/solemate/solemate-tui/internal/prompt"
	"github.com/solemate/solemate-tui/internal/recommend"
	"github.com/solemate/solemate-tui/internal/telemetry"
)

// Gateway is the model-call boundary. *cloud.Client implements it;
// tests substitute fakes.
type Gateway interface {
	Chat(ctx context.Context, turns []model.Turn) (cloud.Reply, error)
}

// ErrBusy is returned when Submit is called while a turn is already
// in flight. The call is dropped, not queued.
var ErrBusy = errors.New("conversation: a turn is already in flight")

const (
	welcomeText = "Hello! I'm your footwear shopping assistant. " +
		"Tell me what kind of shoes you're looking for, and I'll recommend the best options for you!"

	degradedWelcomeText = "Hello! I'm your footwear shopping assistant. " +
		"Note: I'm currently working with a limited product catalog. Some products may not be available."

	notReadyText = "The assistant is still getting ready. Please try again in a moment."

	errorPrefix = "Sorry, I encountered an error. Please try again later."
)

// Store owns the conversation state. Submissions are serialized by
// the busy gate: a second Submit while one is in flight is dropped.
type Store struct {
	gateway Gateway
	usage   *telemetry.UsageTracker

	mu           sync.Mutex
	catalog      *catalog.Catalog
	transcript   model.Transcript
	messages     []model.DisplayMessage
	pendingInput string
	busy         bool
}

// NewStore creates a store. The usage tracker may be nil when cost
// accounting is not wanted.
func NewStore(gateway Gateway, usage *telemetry.UsageTracker) *Store {
	return &Store{gateway: gateway, usage: usage}
}

// SetCatalog installs the catalog, builds the system turn, and posts
// the welcome message to the UI log. degraded marks a failed load;
// the store keeps whatever products survived. With an empty catalog
// submissions stay soft-rejected until a reload produces products.
func (s *Store) SetCatalog(cat *catalog.Catalog, degraded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = cat
	s.transcript.SetSystem(prompt.BuildSystem(cat.Products))

	if degraded || cat.Empty() {
		s.messages = append(s.messages, model.NewAssistantMessage(degradedWelcomeText))
	} else {
		s.messages = append(s.messages, model.NewAssistantMessage(welcomeText))
	}
}

// RefreshCatalog swaps in a reloaded catalog and rebuilds the system
// turn in place. History is preserved and no welcome is emitted.
func (s *Store) RefreshCatalog(cat *catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = cat
	s.transcript.SetSystem(prompt.BuildSystem(cat.Products))
}

// Ready reports whether submissions can be processed: the catalog
// holds at least one product and the system turn is installed. An
// empty catalog, degraded or not, keeps the store not ready.
func (s *Store) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready()
}

func (s *Store) ready() bool {
	return s.catalog != nil && !s.catalog.Empty() && s.transcript.HasSystem()
}

// Submit runs one full exchange: append the user turn to both logs,
// call the gateway with the transcript, and append the parsed reply.
//
// Blank input is a silent no-op. A call while busy returns ErrBusy
// and changes nothing. While the catalog is unset or empty, the user
// gets a soft "not ready" notice in the UI log and the transcript
// stays untouched. On gateway failure the user turn is rolled back from
// the transcript (the UI log keeps it, followed by an error message)
// so a retry resumes from the last successful exchange.
func (s *Store) Submit(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	if !s.ready() {
		s.messages = append(s.messages, model.NewAssistantMessage(notReadyText))
		s.mu.Unlock()
		return nil
	}

	s.pendingInput = ""
	s.messages = append(s.messages, model.NewUserMessage(text))
	s.transcript.AppendUser(text)
	s.busy = true
	turns := s.transcript.Turns()
	s.mu.Unlock()

	// The lock is released across the network round trip; the busy
	// gate is what serializes submissions.
	reply, err := s.gateway.Chat(ctx, turns)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false

	if err != nil {
		s.transcript.RemoveLastUser()
		s.messages = append(s.messages,
			model.NewErrorMessage(errorPrefix+" Error: "+err.Error()))
		return err
	}

	if s.usage != nil {
		s.usage.Record(reply.Stats)
	}

	s.transcript.AppendAssistant(reply.Content)

	res := recommend.Parse(reply.Content, s.catalog)
	msg := model.NewAssistantMessage(res.Content)
	msg.IntroText = res.IntroText
	msg.OutroText = res.OutroText
	msg.Products = res.Products
	s.messages = append(s.messages, msg)
	return nil
}

// Busy reports whether a submission is in flight.
func (s *Store) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Messages returns a copy of the UI log.
func (s *Store) Messages() []model.DisplayMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.DisplayMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Turns returns a copy of the model-facing transcript.
func (s *Store) Turns() []model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript.Turns()
}

// PendingInput returns the current unsent input text.
func (s *Store) PendingInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingInput
}

// SetPendingInput records the current unsent input text.
func (s *Store) SetPendingInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingInput = text
}

// Clear drops the conversation history. The system turn and catalog
// stay; the welcome message is re-posted.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = nil
	s.transcript.Reset()
	if s.catalog != nil {
		if s.catalog.Empty() {
			s.messages = append(s.messages, model.NewAssistantMessage(degradedWelcomeText))
		} else {
			s.messages = append(s.messages, model.NewAssistantMessage(welcomeText))
		}
	}
}

// Restore replaces both logs from a saved conversation.
func (s *Store) Restore(messages []model.DisplayMessage, turns []model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]model.DisplayMessage, len(messages))
	copy(s.messages, messages)
	s.transcript.Restore(turns)
}
