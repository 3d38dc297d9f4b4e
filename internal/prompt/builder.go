// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package prompt

import (
	"fmt"
	"strings"

	"github.com/solemate/solemate-tui/internal/catalog"
)

const preamble = "You are a shopping assistant AI specializing in footwear recommendations. " +
	"Your task is to recommend products based on user queries. " +
	"You have access to a catalog of shoes and footwear products. " +
	"Below is the product catalog you can recommend from:\n\n"

const degradedNote = "No catalog data is currently available. Offer general footwear advice " +
	"and let the user know that specific product recommendations are temporarily unavailable.\n\n"

const instructions = "Instructions:\n" +
	"1. When the user asks about products, recommend the most relevant ones based on their query.\n" +
	"2. Consider the user's preferences for brand, style, price range, and any specific features they mention.\n" +
	"3. For each recommendation, explain why it matches their needs.\n" +
	"4. Highlight key features and benefits of the recommended products.\n" +
	"5. For each recommended product, include a product card tag in this format: <product-card data-id=\"PRODUCT_ID\"></product-card>\n" +
	"   where PRODUCT_ID is the ID of the product (e.g., product_1, product_2, etc.).\n" +
	"6. Recommend at most 2-3 products per response to avoid overwhelming the user.\n" +
	"7. If you cannot find a suitable product, suggest what information the user could provide to help you find better matches.\n"

// BuildSystem renders the catalog into the system turn. Pure and
// deterministic: the same catalog always yields the same string. The
// display number is the 1-based position in the slice, independent of
// the id embedded in each product.
func BuildSystem(products []catalog.Product) string {
	var b strings.Builder
	b.WriteString(preamble)

	if len(products) == 0 {
		b.WriteString(degradedNote)
	}

	for i, p := range products {
		fmt.Fprintf(&b, "Product %d (ID: %s):\n", i+1, p.ID)
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
		fmt.Fprintf(&b, "Brand: %s\n", p.Brand)
		fmt.Fprintf(&b, "Description: %s\n", orDefault(p.Description, "Not provided"))
		fmt.Fprintf(&b, "Price: %s\n", orDefault(p.Price, "Not specified"))
		fmt.Fprintf(&b, "Gender: %s\n", orDefault(p.Gender, "unisex"))
		if len(p.Keywords) > 0 {
			fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(p.Keywords, ", "))
		}
		b.WriteString("\n")
	}

	b.WriteString(instructions)
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
