// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// headerLines is the number of leading table rows (title, column
// names, separators) discarded before data parsing begins.
const headerLines = 4

// minColumns is the minimum number of non-empty cells a data row
// needs to produce a Product. Shorter rows are skipped, not rejected.
const minColumns = 6

// Product is one catalog entry. Products are immutable once parsed:
// the loader is the only writer, everything downstream reads.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Gender      string   `json:"gender"`
	ProductLink string   `json:"product_link"`
	ImageLink   string   `json:"image_link"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Catalog holds the parsed product set in source order plus an id
// index for O(1) resolution.
type Catalog struct {
	Products []Product
	byID     map[string]int
}

var (
	pricePattern = regexp.MustCompile(`Price:\s*(£[0-9.]+\s*-\s*£?[0-9.]+|£[0-9.]+)`)
	aboutPattern = regexp.MustCompile(`(?s)About this item(.*?)(?:Product description|Product details|$)`)
)

// Parse turns the raw pipe-delimited product table into a Catalog.
// Blank lines are dropped, then the first four lines (header rows)
// are discarded. Data rows with fewer than six non-empty cells are
// skipped silently. Ids are assigned densely over accepted rows
// starting at product_1, so a skipped row never leaves a gap.
func Parse(text string) *Catalog {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) <= headerLines {
		rows = nil
	} else {
		rows = rows[headerLines:]
	}

	cat := &Catalog{byID: make(map[string]int)}
	for _, row := range rows {
		cells := splitRow(row)
		if len(cells) < minColumns {
			continue
		}
		// Column order: name, brand, descriptive text, product link,
		// gender, image link. Extra trailing cells are ignored.
		aiText := cells[2]
		p := Product{
			ID:          "product_" + strconv.Itoa(len(cat.Products)+1),
			Name:        cells[0],
			Brand:       cells[1],
			Description: extractDescription(aiText),
			Price:       extractPrice(aiText),
			ProductLink: cells[3],
			Gender:      cells[4],
			ImageLink:   cells[5],
			Keywords:    ExtractKeywords(aiText),
		}
		cat.byID[p.ID] = len(cat.Products)
		cat.Products = append(cat.Products, p)
	}
	return cat
}

func splitRow(row string) []string {
	var cells []string
	for _, cell := range strings.Split(row, "|") {
		cell = strings.TrimSpace(cell)
		if cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

// extractPrice returns the first currency value or range in the
// descriptive text, or "" when none is present.
func extractPrice(aiText string) string {
	m := pricePattern.FindStringSubmatch(aiText)
	if m == nil {
		return ""
	}
	return m[1]
}

// extractDescription returns the text between "About this item" and
// the next section marker, or "" when the marker is absent.
func extractDescription(aiText string) string {
	m := aboutPattern.FindStringSubmatch(aiText)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Lookup resolves a product id by exact equality.
func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.Products[i], true
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.Products)
}

// Empty reports whether the catalog holds no products.
func (c *Catalog) Empty() bool {
	return len(c.Products) == 0
}
