// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/solemate/solemate-tui/internal/config"
	"github.com/solemate/solemate-tui/internal/storage"
	"github.com/solemate/solemate-tui/internal/telemetry"
	"github.com/solemate/solemate-tui/internal/util"
)

// RunConversations lists saved conversations, optionally filtered by
// a search query.
func RunConversations(cfg config.Config, query string) error {
	store, err := storage.NewStore(cfg.Storage.ConversationsDir)
	if err != nil {
		return err
	}

	var summaries []storage.Summary
	if query == "" {
		summaries, err = store.List()
	} else {
		summaries, err = store.Search(query)
	}
	if err != nil {
		return err
	}

	if len(summaries) == 0 {
		fmt.Println("no saved conversations")
		return nil
	}
	for _, s := range summaries {
		fmt.Printf("  %s %s  (%d turns, %s)\n",
			util.PadRight(s.ID, 14), util.PadRight(s.Title, 40),
			s.Turns, s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// RunDeleteConversation removes one saved conversation by id.
func RunDeleteConversation(cfg config.Config, id string) error {
	store, err := storage.NewStore(cfg.Storage.ConversationsDir)
	if err != nil {
		return err
	}
	if err := store.Delete(id); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", id)
	return nil
}

// RunUsage prints recent call history and all-time totals.
func RunUsage(cfg config.Config, n int) error {
	history, err := telemetry.OpenHistory(cfg.Storage.HistoryDB)
	if err != nil {
		return err
	}
	defer history.Close()

	records, err := history.Recent(n)
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Printf("  %s  %-28s %6d in / %5d out  $%.4f  %s\n",
			rec.RequestedAt.Format("2006-01-02 15:04"),
			rec.Model, rec.InputTokens, rec.OutputTokens, rec.TotalCost, rec.Latency)
	}

	calls, cost, err := history.Totals()
	if err != nil {
		return err
	}
	fmt.Printf("total: %d calls, $%.4f\n", calls, cost)
	return nil
}
