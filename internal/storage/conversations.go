// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/model"
	"github.com/solemate/solemate-tui/internal/util"
)

// ErrConversationNotFound is returned when the requested id does not
// exist on disk.
var ErrConversationNotFound = errors.New("storage: conversation not found")

// Conversation is a saved conversation: both logs plus metadata.
type Conversation struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	Messages  []model.DisplayMessage `json:"-"`
	Turns     []model.Turn           `json:"turns"`
}

// storedConversation is the on-disk shape. Display messages carry
// product ids, not full product records; they are re-resolved on
// load so a stale file never shadows the live catalog.
type storedConversation struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Messages  []storedMessage `json:"messages"`
	Turns     []model.Turn    `json:"turns"`
}

type storedMessage struct {
	ID         string     `json:"id"`
	Role       model.Role `json:"role"`
	Content    string     `json:"content"`
	IntroText  string     `json:"intro_text,omitempty"`
	OutroText  string     `json:"outro_text,omitempty"`
	ProductIDs []string   `json:"product_ids,omitempty"`
	IsError    bool       `json:"is_error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Summary is a listing entry, cheap enough to render without loading
// the full conversation.
type Summary struct {
	ID        string
	Title     string
	UpdatedAt time.Time
	Turns     int
}

// Store reads and writes conversations under a single directory.
type Store struct {
	dir string
}

// NewStore creates the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create conversations directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewConversationID returns a fresh conversation id.
func NewConversationID() string {
	return "conv-" + uuid.NewString()[:8]
}

// TitleFor derives a listing title from the first user message.
func TitleFor(messages []model.DisplayMessage) string {
	for _, m := range messages {
		if m.Role == model.RoleUser {
			return util.TruncateWidth(m.Content, 40)
		}
	}
	return "New conversation"
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the conversation atomically, bumping UpdatedAt.
func (s *Store) Save(conv *Conversation) error {
	if conv.ID == "" {
		conv.ID = NewConversationID()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now()
	}
	conv.UpdatedAt = time.Now()

	stored := storedConversation{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
		Turns:     conv.Turns,
	}
	for _, m := range conv.Messages {
		sm := storedMessage{
			ID:        m.ID,
			Role:      m.Role,
			Content:   m.Content,
			IntroText: m.IntroText,
			OutroText: m.OutroText,
			IsError:   m.IsError,
			CreatedAt: m.CreatedAt,
		}
		for _, p := range m.Products {
			sm.ProductIDs = append(sm.ProductIDs, p.ID)
		}
		stored.Messages = append(stored.Messages, sm)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal conversation: %w", err)
	}
	if err := util.AtomicWriteFile(s.path(conv.ID), data, 0644); err != nil {
		return fmt.Errorf("write conversation: %w", err)
	}
	return nil
}

// Load reads a conversation and re-resolves message products against
// cat. Products whose ids no longer exist are dropped from messages,
// mirroring how unresolvable tags are dropped at parse time.
func (s *Store) Load(id string, cat *catalog.Catalog) (*Conversation, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConversationNotFound, id)
		}
		return nil, fmt.Errorf("read conversation: %w", err)
	}

	var stored storedConversation
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("parse conversation %s: %w", id, err)
	}

	conv := &Conversation{
		ID:        stored.ID,
		Title:     stored.Title,
		CreatedAt: stored.CreatedAt,
		UpdatedAt: stored.UpdatedAt,
		Turns:     stored.Turns,
	}
	for _, sm := range stored.Messages {
		m := model.DisplayMessage{
			ID:        sm.ID,
			Role:      sm.Role,
			Content:   sm.Content,
			IntroText: sm.IntroText,
			OutroText: sm.OutroText,
			IsError:   sm.IsError,
			CreatedAt: sm.CreatedAt,
		}
		if cat != nil {
			for _, pid := range sm.ProductIDs {
				if p, ok := cat.Lookup(pid); ok {
					m.Products = append(m.Products, p)
				}
			}
		}
		conv.Messages = append(conv.Messages, m)
	}
	return conv, nil
}

// List returns summaries of all saved conversations, newest first.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var stored storedConversation
		if err := json.Unmarshal(data, &stored); err != nil {
			// Corrupt files are skipped, not fatal to listing.
			continue
		}
		summaries = append(summaries, Summary{
			ID:        stored.ID,
			Title:     stored.Title,
			UpdatedAt: stored.UpdatedAt,
			Turns:     len(stored.Turns),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

// Search returns summaries whose title or message content contains
// the query, case-insensitively.
func (s *Store) Search(query string) ([]Summary, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.List()
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("search conversations: %w", err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var stored storedConversation
		if err := json.Unmarshal(data, &stored); err != nil {
			continue
		}

		match := strings.Contains(strings.ToLower(stored.Title), query)
		if !match {
			for _, m := range stored.Messages {
				if strings.Contains(strings.ToLower(m.Content), query) {
					match = true
					break
				}
			}
		}
		if match {
			summaries = append(summaries, Summary{
				ID:        stored.ID,
				Title:     stored.Title,
				UpdatedAt: stored.UpdatedAt,
				Turns:     len(stored.Turns),
			})
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

// Delete removes a saved conversation.
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrConversationNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}
