// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"sync"

	"github.com/solemate/solemate-tui/internal/catalog"
	"github.com/solemate/solemate-tui/internal/ui/styles"
	"github.com/solemate/solemate-tui/internal/util"
)

// placeholderImageURL stands in when a product has no image link.
const placeholderImageURL = "https://via.placeholder.com/300x200?text=No+Image"

// ImageCache memoizes the resolved image URL per product id. The
// catalog is small and static, so entries are never evicted; the
// cache lives for the whole application run.
type ImageCache struct {
	mu   sync.Mutex
	urls map[string]string
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{urls: make(map[string]string)}
}

// URL returns the image URL for p, falling back to a placeholder for
// products without one.
func (c *ImageCache) URL(p catalog.Product) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u, ok := c.urls[p.ID]; ok {
		return u
	}
	u := strings.TrimSpace(p.ImageLink)
	if u == "" {
		u = placeholderImageURL
	}
	c.urls[p.ID] = u
	return u
}

// Len reports the number of cached entries.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.urls)
}

// RenderProductCard renders one recommendation as a bordered card.
// width is the total card width including the border.
func RenderProductCard(p catalog.Product, images *ImageCache, width int) string {
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}

	var lines []string
	lines = append(lines, styles.CardTitle.Render(util.TruncateWidth(p.Name, inner)))

	meta := p.Brand
	if p.Gender != "" {
		meta += " · " + p.Gender
	}
	lines = append(lines, styles.CardMeta.Render(util.TruncateWidth(meta, inner)))

	if p.Price != "" {
		lines = append(lines, styles.CardPrice.Render(util.TruncateWidth(p.Price, inner)))
	}
	if p.Description != "" {
		lines = append(lines, util.TruncateWidth(p.Description, inner))
	}
	if p.ProductLink != "" {
		lines = append(lines, styles.CardLink.Render(util.TruncateWidth(p.ProductLink, inner)))
	}
	if images != nil {
		lines = append(lines, styles.CardMeta.Render(util.TruncateWidth("img: "+images.URL(p), inner)))
	}

	return styles.CardBorder.Width(width - 2).Render(strings.Join(lines, "\n"))
}
