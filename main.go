// solemate - a footwear shopping assistant for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/cli"
	"github.com/solemate/solemate-tui/internal/cloud"
	"github.com/solemate/solemate-tui/internal/config"
	"github.com/solemate/solemate-tui/internal/conversation"
	"github.com/solemate/solemate-tui/internal/storage"
	"github.com/solemate/solemate-tui/internal/telemetry"
	"github.com/solemate/solemate-tui/internal/ui/chat"
	"github.com/solemate/solemate-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "solemate: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		runTUI(cfg, "")
		return
	}

	ctx := context.Background()
	switch args[0] {
	case "ask":
		if len(args) < 2 {
			fail("usage: solemate ask \"question\"")
		}
		run(cli.RunAsk(ctx, cfg, strings.Join(args[1:], " ")))

	case "catalog":
		run(cli.RunCatalog(ctx, cfg))

	case "conversations":
		if len(args) >= 3 && args[1] == "rm" {
			run(cli.RunDeleteConversation(cfg, args[2]))
			return
		}
		if len(args) >= 3 && args[1] == "open" {
			runTUI(cfg, args[2])
			return
		}
		query := strings.Join(args[1:], " ")
		run(cli.RunConversations(cfg, query))

	case "usage":
		n := 20
		if len(args) >= 2 {
			if parsed, err := strconv.Atoi(args[1]); err == nil && parsed > 0 {
				n = parsed
			}
		}
		run(cli.RunUsage(cfg, n))

	case "version", "-v", "--version":
		fmt.Printf("solemate %s (%s, built %s)\n", Version, GitCommit, BuildDate)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "solemate: unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func run(err error) {
	if err != nil {
		fail(err.Error())
	}
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "solemate: %s\n", msg)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`solemate - footwear shopping assistant

Usage:
  solemate                     interactive chat (default)
  solemate ask "question"      one-shot question, prints the reply
  solemate catalog             show the loaded product catalog
  solemate conversations [q]   list (or search) saved conversations
  solemate conversations open ID  resume a saved conversation in the TUI
  solemate conversations rm ID delete a saved conversation
  solemate usage [n]           show recent model calls and totals
  solemate version             print version

Configuration:
  ~/.solemate/config.toml, overridden by SOLEMATE_* environment
  variables. The API key comes from SOLEMATE_API_KEY (or a .env file
  in the working directory).
`)
}

// runTUI wires the full interactive stack and blocks until exit. A
// non-empty resumeID restores that saved conversation first.
func runTUI(cfg config.Config, resumeID string) {
	ctx := context.Background()
	styles.ApplyTheme(cfg.UI.Theme)

	loader := catalog.NewLoader(cfg.Catalog.Source)
	defer loader.Close()

	degraded := false
	if err := loader.Load(ctx); err != nil {
		// Degraded mode: the TUI still starts, submissions are
		// soft-rejected until a catalog arrives.
		degraded = true
	}

	client := cloud.NewClient(cfg.API.Key).
		WithBaseURL(cfg.API.BaseURL).
		WithModel(cfg.Model.Name).
		WithMaxTokens(cfg.Model.MaxTokens).
		WithTemperature(cfg.Model.Temperature)

	usage := telemetry.NewUsageTracker()
	store := conversation.NewStore(client, usage)
	store.SetCatalog(loader.Catalog(), degraded)

	var resumed *storage.Conversation
	if resumeID != "" {
		s, err := storage.NewStore(cfg.Storage.ConversationsDir)
		if err != nil {
			fail(err.Error())
		}
		resumed, err = s.Load(resumeID, loader.Catalog())
		if err != nil {
			fail(err.Error())
		}
		store.Restore(resumed.Messages, resumed.Turns)
		// The saved system turn may predate the current catalog.
		store.RefreshCatalog(loader.Catalog())
	}

	// Call history is best-effort; the TUI runs fine without it.
	history, err := telemetry.OpenHistory(cfg.Storage.HistoryDB)
	if err != nil {
		history = nil
	} else {
		defer history.Close()
	}

	m := chat.New(store, usage, history, cfg.Model.Name, loader.Catalog().Len())

	if cfg.Catalog.Watch {
		// The reload message handler owns the store refresh; doing it
		// here as well would rebuild the system prompt twice.
		if err := loader.Watch(m.NotifyReload); err != nil {
			fmt.Fprintf(os.Stderr, "solemate: catalog watch disabled: %v\n", err)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fail(err.Error())
	}

	saveConversation(cfg, store, resumed)
}

// saveConversation persists the session on exit when it held a real
// exchange (more than just the welcome message). A resumed
// conversation is updated in place, keeping its id.
func saveConversation(cfg config.Config, store *conversation.Store, resumed *storage.Conversation) {
	turns := store.Turns()
	if len(turns) < 3 { // system + at least one exchange
		return
	}

	s, err := storage.NewStore(cfg.Storage.ConversationsDir)
	if err != nil {
		return
	}
	messages := store.Messages()
	conv := resumed
	if conv == nil {
		conv = &storage.Conversation{}
	}
	conv.Title = storage.TitleFor(messages)
	conv.Messages = messages
	conv.Turns = turns
	_ = s.Save(conv)
}
