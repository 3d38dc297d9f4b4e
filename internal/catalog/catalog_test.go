// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"strings"
	"testing"
)

// header returns the four table rows every catalog document starts
// with.
func header() string {
	return "# Product Catalog\n" +
		"\n" +
		"| Name | Brand | Input AI | Product Link | Gender | Image Link |\n" +
		"|------|-------|----------|--------------|--------|------------|\n" +
		"| --- | --- | --- | --- | --- | --- |\n"
}

func TestParseSingleRow(t *testing.T) {
	doc := header() +
		"Name|Brand|About this item Nice shoes Price: £49.99 Material composition leather|http://x|unisex|http://img\n"

	cat := Parse(doc)
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}

	p := cat.Products[0]
	if p.ID != "product_1" {
		t.Errorf("ID = %q, want %q", p.ID, "product_1")
	}
	if p.Price != "£49.99" {
		t.Errorf("Price = %q, want %q", p.Price, "£49.99")
	}
	if !strings.Contains(p.Description, "Nice shoes") {
		t.Errorf("Description = %q, want it to contain %q", p.Description, "Nice shoes")
	}
	if p.Name != "Name" || p.Brand != "Brand" {
		t.Errorf("Name/Brand = %q/%q, want Name/Brand", p.Name, p.Brand)
	}
	if p.ProductLink != "http://x" || p.ImageLink != "http://img" {
		t.Errorf("links = %q/%q, want http://x / http://img", p.ProductLink, p.ImageLink)
	}
	if p.Gender != "unisex" {
		t.Errorf("Gender = %q, want unisex", p.Gender)
	}
}

func TestParseDenseIDs(t *testing.T) {
	// The malformed middle row (too few cells) must not leave a gap
	// in the id sequence.
	doc := header() +
		"Runner A|Acme|About this item fast Price: £10.00|http://a|men|http://img-a\n" +
		"broken|row\n" +
		"Runner B|Acme|About this item slow Price: £20.00|http://b|women|http://img-b\n"

	cat := Parse(doc)
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	for i, p := range cat.Products {
		want := "product_" + string(rune('1'+i))
		if p.ID != want {
			t.Errorf("Products[%d].ID = %q, want %q", i, p.ID, want)
		}
	}
	if cat.Products[1].Name != "Runner B" {
		t.Errorf("Products[1].Name = %q, want Runner B", cat.Products[1].Name)
	}
}

func TestParseSkipsShortRows(t *testing.T) {
	doc := header() +
		"only|five|cells|in|row\n" +
		"||||||\n"

	cat := Parse(doc)
	if !cat.Empty() {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, doc := range []string{"", "\n\n\n", header()} {
		cat := Parse(doc)
		if !cat.Empty() {
			t.Errorf("Parse(%q).Len() = %d, want 0", doc, cat.Len())
		}
	}
}

func TestParseTrailingCellsIgnored(t *testing.T) {
	doc := header() +
		"Boot|Kite|About this item warm Price: £89.99|http://x|men|http://img|extra|cells\n"

	cat := Parse(doc)
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	if cat.Products[0].ImageLink != "http://img" {
		t.Errorf("ImageLink = %q, want http://img", cat.Products[0].ImageLink)
	}
}

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Price: £49.99 leather upper", "£49.99"},
		{"range", "Price: £30.00 - £45.00 depending on size", "£30.00 - £45.00"},
		{"range no second symbol", "Price: £30.00 - 45.00", "£30.00 - 45.00"},
		{"missing", "leather upper, no price listed", ""},
		{"first match wins", "Price: £10.00 then Price: £20.00", "£10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPrice(tt.input); got != tt.want {
				t.Errorf("extractPrice(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"to product description",
			"About this item Soft and light Product description ignored",
			"Soft and light",
		},
		{
			"to product details",
			"About this item Cushioned sole Product details ignored",
			"Cushioned sole",
		},
		{
			"to end of text",
			"intro About this item Waterproof boot",
			"Waterproof boot",
		},
		{"marker absent", "Just a plain blurb", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractDescription(tt.input); got != tt.want {
				t.Errorf("extractDescription(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	doc := header() +
		"Runner|Acme|About this item fast Price: £10.00|http://a|men|http://img\n"
	cat := Parse(doc)

	p, ok := cat.Lookup("product_1")
	if !ok {
		t.Fatal("Lookup(product_1) not found")
	}
	if p.Name != "Runner" {
		t.Errorf("Name = %q, want Runner", p.Name)
	}

	if _, ok := cat.Lookup("product_9"); ok {
		t.Error("Lookup(product_9) found, want miss")
	}
	if _, ok := (&Catalog{}).Lookup("product_1"); ok {
		t.Error("Lookup on empty catalog found, want miss")
	}
}
