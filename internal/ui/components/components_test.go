// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/telemetry"
)

func sampleProduct() catalog.Product {
	return catalog.Product{
		ID:          "product_1",
		Name:        "Trail Runner",
		Brand:       "Acme",
		Price:       "£59.99",
		Gender:      "men",
		ProductLink: "http://shop.test/runner",
		ImageLink:   "http://img.test/runner.jpg",
	}
}

func TestImageCache(t *testing.T) {
	c := NewImageCache()

	p := sampleProduct()
	if got := c.URL(p); got != "http://img.test/runner.jpg" {
		t.Errorf("URL() = %q", got)
	}
	// Cached by id: mutating the product does not change the answer.
	p.ImageLink = "http://img.test/other.jpg"
	if got := c.URL(p); got != "http://img.test/runner.jpg" {
		t.Errorf("URL() after mutation = %q, want cached value", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestImageCachePlaceholder(t *testing.T) {
	c := NewImageCache()
	p := sampleProduct()
	p.ID = "product_2"
	p.ImageLink = "  "

	if got := c.URL(p); got != placeholderImageURL {
		t.Errorf("URL() = %q, want placeholder", got)
	}
}

func TestRenderProductCard(t *testing.T) {
	card := RenderProductCard(sampleProduct(), NewImageCache(), 60)

	for _, want := range []string{"Trail Runner", "Acme", "£59.99"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	if !strings.Contains(card, "\n") {
		t.Error("card should span multiple lines")
	}
}

func TestRenderStatusBar(t *testing.T) {
	tr := telemetry.NewUsageTracker()

	bar := RenderStatusBar(80, "claude-3-7-sonnet-20250219", false, false, tr.Snapshot())
	if !strings.Contains(bar, "claude-3-7-sonnet-20250219") || !strings.Contains(bar, "ready") {
		t.Errorf("bar = %q", bar)
	}

	busy := RenderStatusBar(80, "m", true, false, tr.Snapshot())
	if !strings.Contains(busy, "thinking") {
		t.Errorf("busy bar = %q", busy)
	}

	failed := RenderStatusBar(80, "m", false, true, tr.Snapshot())
	if !strings.Contains(failed, "failed") {
		t.Errorf("failed bar = %q", failed)
	}

	// Busy wins over a stale failure marker.
	both := RenderStatusBar(80, "m", true, true, tr.Snapshot())
	if !strings.Contains(both, "thinking") || strings.Contains(both, "failed") {
		t.Errorf("busy+failed bar = %q", both)
	}
}

func TestRenderBanner(t *testing.T) {
	b := RenderBanner(42)
	if !strings.Contains(b, "solemate") || !strings.Contains(b, "42 products") {
		t.Errorf("banner = %q", b)
	}
	empty := RenderBanner(0)
	if !strings.Contains(empty, "no catalog") {
		t.Errorf("empty banner = %q", empty)
	}
}
