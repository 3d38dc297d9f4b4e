// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/conversation"
	"github.com/solemate/solemate-tui/internal/telemetry"
	"github.com/solemate/solemate-tui/internal/ui/components"
	"github.com/solemate/solemate-tui/internal/ui/styles"
)

// State is the UI's view of the submission lifecycle.
type State int

const (
	// StateReady accepts input.
	StateReady State = iota
	// StateWaiting has a submission in flight.
	StateWaiting
)

// Model is the root Bubble Tea model for the chat view.
type Model struct {
	store     *conversation.Store
	usage     *telemetry.UsageTracker
	history   *telemetry.History // nil when persistence is off
	modelName string

	viewport viewport.Model
	input    textinput.Model
	spin     spinner.Model
	images   *components.ImageCache

	state        State
	lastErr      error
	width        int
	height       int
	sized        bool
	productCount int

	// reloads receives fresh catalogs from the file watcher.
	reloads chan catalogReloadedMsg
}

// New creates the chat model. history may be nil.
func New(store *conversation.Store, usage *telemetry.UsageTracker,
	history *telemetry.History, modelName string, productCount int) Model {

	ti := textinput.New()
	ti.Placeholder = "Ask about shoes..."
	ti.Prompt = styles.InputPrompt.Render("> ")
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		store:        store,
		usage:        usage,
		history:      history,
		modelName:    modelName,
		input:        ti,
		spin:         sp,
		images:       components.NewImageCache(),
		state:        StateReady,
		productCount: productCount,
		reloads:      make(chan catalogReloadedMsg, 1),
	}
}

// NotifyReload hands a watcher-reloaded catalog to the UI. Safe to
// call from any goroutine; drops the update when one is already
// queued rather than blocking the watcher.
func (m Model) NotifyReload(cat *catalog.Catalog) {
	select {
	case m.reloads <- catalogReloadedMsg{catalog: cat}:
	default:
	}
}

// Init starts the cursor blink and the reload listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForReload())
}

// waitForReload turns watcher events into tea messages.
func (m Model) waitForReload() tea.Cmd {
	reloads := m.reloads
	return func() tea.Msg {
		return <-reloads
	}
}

// submitCmd runs the store submission off the update loop. The store
// serializes submissions itself; the UI state just mirrors it.
func (m Model) submitCmd(text string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		err := store.Submit(context.Background(), text)
		return turnDoneMsg{err: err}
	}
}

// recordHistoryCmd persists the last call, best-effort.
func (m Model) recordHistoryCmd() tea.Cmd {
	history, usage, modelName := m.history, m.usage, m.modelName
	if history == nil {
		return nil
	}
	return func() tea.Msg {
		if snap := usage.Snapshot(); snap.LastCall != nil {
			_ = history.Append(modelName, *snap.LastCall)
		}
		return nil
	}
}

// Update handles events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refreshViewport(true)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			m.store.Clear()
			m.refreshViewport(true)
			return m, nil

		case tea.KeyEnter:
			if m.state == StateWaiting {
				// Busy gate: the submission is dropped, not queued.
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			m.store.SetPendingInput("")
			if text == "" {
				return m, nil
			}
			m.state = StateWaiting
			m.lastErr = nil
			return m, tea.Batch(m.spin.Tick, m.submitCmd(text))
		}

	case turnDoneMsg:
		m.state = StateReady
		m.lastErr = msg.err
		m.refreshViewport(true)
		return m, m.recordHistoryCmd()

	case catalogReloadedMsg:
		m.store.RefreshCatalog(msg.catalog)
		m.productCount = msg.catalog.Len()
		m.refreshViewport(false)
		return m, m.waitForReload()

	case spinner.TickMsg:
		if m.state != StateWaiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		// The optimistic user line lands mid-flight; keep the
		// scrollback fresh while waiting.
		m.refreshViewport(true)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetPendingInput(m.input.Value())
	return m, cmd
}

// layout sizes the viewport to the space left by the chrome.
func (m *Model) layout() {
	headerHeight := 3
	footerHeight := 3
	h := m.height - headerHeight - footerHeight
	if h < 3 {
		h = 3
	}

	if !m.sized {
		m.viewport = viewport.New(m.width, h)
		m.sized = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = h
	}
}

// refreshViewport re-renders the scrollback, optionally pinning to
// the bottom.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.sized {
		return
	}
	m.viewport.SetContent(m.renderMessages())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}
