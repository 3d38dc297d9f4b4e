// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/cloud"
	"github.com/solemate/solemate-tui/internal/config"
	"github.com/solemate/solemate-tui/internal/conversation"
	"github.com/solemate/solemate-tui/internal/telemetry"
	"github.com/solemate/solemate-tui/internal/util"
)

// RunAsk answers a single question and exits: load the catalog, run
// one exchange through the conversation store, print the reply.
// Markdown rendering only happens on a TTY.
func RunAsk(ctx context.Context, cfg config.Config, question string) error {
	loader := catalog.NewLoader(cfg.Catalog.Source)
	defer loader.Close()

	degraded := false
	if err := loader.Load(ctx); err != nil {
		degraded = true
		fmt.Fprintf(os.Stderr, "warning: %v (continuing without catalog)\n", err)
	}

	client := cloud.NewClient(cfg.API.Key).
		WithBaseURL(cfg.API.BaseURL).
		WithModel(cfg.Model.Name).
		WithMaxTokens(cfg.Model.MaxTokens).
		WithTemperature(cfg.Model.Temperature)

	usage := telemetry.NewUsageTracker()
	store := conversation.NewStore(client, usage)
	store.SetCatalog(loader.Catalog(), degraded)

	if err := store.Submit(ctx, question); err != nil {
		return err
	}

	msgs := store.Messages()
	last := msgs[len(msgs)-1]

	// Markdown rendering follows the color profile, so NO_COLOR and
	// piped output both fall through to plain text.
	output := last.Content
	if ColorProfile() != termenv.Ascii {
		wrap := TerminalWidth()
		if wrap > 100 {
			wrap = 100
		}
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		); err == nil {
			if rendered, rerr := r.Render(output); rerr == nil {
				output = rendered
			}
		}
	}
	fmt.Println(output)

	if len(last.Products) > 0 {
		fmt.Println("Recommended:")
		for _, p := range last.Products {
			line := fmt.Sprintf("  %s - %s", p.ID, p.Name)
			if p.Price != "" {
				line += " (" + p.Price + ")"
			}
			fmt.Println(line)
		}
	}

	if snap := usage.Snapshot(); snap.LastCall != nil {
		fmt.Fprintf(os.Stderr, "cost: $%.4f (%d in / %d out tokens, %.1fs)\n",
			snap.LastCall.TotalCost,
			snap.LastCall.InputTokens,
			snap.LastCall.OutputTokens,
			snap.LastCall.Latency.Seconds())
	}
	return nil
}

// RunCatalog loads the catalog and prints a summary line per product.
func RunCatalog(ctx context.Context, cfg config.Config) error {
	loader := catalog.NewLoader(cfg.Catalog.Source)
	defer loader.Close()

	if err := loader.Load(ctx); err != nil {
		return err
	}

	out := termenv.NewOutput(os.Stdout, termenv.WithProfile(ColorProfile()))
	cat := loader.Catalog()
	fmt.Println(out.String(fmt.Sprintf("%d products from %s", cat.Len(), cfg.Catalog.Source)).Bold())
	for _, p := range cat.Products {
		price := p.Price
		if price == "" {
			price = "n/a"
		}
		fmt.Printf("  %s %s %s %s\n",
			out.String(util.PadRight(p.ID, 12)).Faint(),
			util.PadRight(price, 10),
			util.PadRight(p.Name, 32),
			p.Brand)
	}
	return nil
}
