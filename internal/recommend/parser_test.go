// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"reflect"
	"strings"
	"testing"

	"github.com/solemate/solemate-tui/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	doc := "h1\nh2\nh3\nh4\n" +
		"Runner|Acme|About this item fast Price: £10.00|http://a|men|http://img-a\n" +
		"Loafer|Kite|About this item smart Price: £25.00|http://b|women|http://img-b\n"
	return catalog.Parse(doc)
}

func tag(id string) string {
	return `<product-card data-id="` + id + `"></product-card>`
}

func TestParseResolvesKnownAndDropsUnknown(t *testing.T) {
	reply := "Here are two options. " + tag("product_1") + tag("product_9")
	res := Parse(reply, testCatalog())

	if len(res.Products) != 1 {
		t.Fatalf("len(Products) = %d, want 1", len(res.Products))
	}
	if res.Products[0].ID != "product_1" || res.Products[0].Name != "Runner" {
		t.Errorf("Products[0] = %+v, want product_1 Runner", res.Products[0])
	}
	if res.IntroText != "Here are two options." {
		t.Errorf("IntroText = %q, want %q", res.IntroText, "Here are two options.")
	}
	if res.OutroText != OutroText {
		t.Errorf("OutroText = %q, want the fixed string", res.OutroText)
	}
	if res.Content != reply {
		t.Error("Content must preserve the raw reply")
	}
}

func TestParseNoTags(t *testing.T) {
	res := Parse("Just some advice about arch support.", testCatalog())

	if len(res.Products) != 0 || res.IntroText != "" || res.OutroText != "" {
		t.Errorf("Parse() = %+v, want empty products/intro/outro", res)
	}
	if res.Content != "Just some advice about arch support." {
		t.Errorf("Content = %q", res.Content)
	}
}

func TestParseAllUnknownIDs(t *testing.T) {
	reply := "Try this. " + tag("product_42")
	res := Parse(reply, testCatalog())

	if len(res.Products) != 0 {
		t.Fatalf("len(Products) = %d, want 0", len(res.Products))
	}
	// Intro derives from the tag match; the outro needs a resolved
	// product.
	if res.IntroText != "Try this." {
		t.Errorf("IntroText = %q, want %q", res.IntroText, "Try this.")
	}
	if res.OutroText != "" {
		t.Errorf("OutroText = %q, want empty", res.OutroText)
	}
}

func TestParseDuplicateTags(t *testing.T) {
	reply := "Match. " + tag("product_2") + " and again " + tag("product_2")
	res := Parse(reply, testCatalog())

	if len(res.Products) != 2 {
		t.Fatalf("len(Products) = %d, want 2 (duplicates kept)", len(res.Products))
	}
	if res.Products[0].ID != "product_2" || res.Products[1].ID != "product_2" {
		t.Errorf("Products = %v", res.Products)
	}
}

func TestParseOrderFollowsTags(t *testing.T) {
	reply := "Both work. " + tag("product_2") + tag("product_1")
	res := Parse(reply, testCatalog())

	var ids []string
	for _, p := range res.Products {
		ids = append(ids, p.ID)
	}
	if !reflect.DeepEqual(ids, []string{"product_2", "product_1"}) {
		t.Errorf("ids = %v, want tag order", ids)
	}
}

func TestParseIntroTruncation(t *testing.T) {
	long := strings.Repeat("ab ", 50) // 150 chars, no sentence terminator
	res := Parse(long+tag("product_1"), testCatalog())

	if len([]rune(res.IntroText)) != maxIntroLen+3 {
		t.Errorf("len(IntroText) = %d, want %d", len([]rune(res.IntroText)), maxIntroLen+3)
	}
	if !strings.HasSuffix(res.IntroText, "...") {
		t.Errorf("IntroText = %q, want ellipsis suffix", res.IntroText)
	}
}

func TestParseIntroShortNoTerminator(t *testing.T) {
	res := Parse("Great choice for you "+tag("product_1"), testCatalog())
	if res.IntroText != "Great choice for you" {
		t.Errorf("IntroText = %q", res.IntroText)
	}
}

func TestParseIntroFirstSentenceOnly(t *testing.T) {
	reply := "These fit! They also look sharp. " + tag("product_1")
	res := Parse(reply, testCatalog())
	if res.IntroText != "These fit!" {
		t.Errorf("IntroText = %q, want %q", res.IntroText, "These fit!")
	}
}

func TestParseReplyStartsWithTag(t *testing.T) {
	res := Parse(tag("product_1")+" is my pick.", testCatalog())
	if res.IntroText != "" {
		t.Errorf("IntroText = %q, want empty", res.IntroText)
	}
	if len(res.Products) != 1 {
		t.Errorf("len(Products) = %d, want 1", len(res.Products))
	}
}

func TestParseIdempotent(t *testing.T) {
	reply := "Here you go. " + tag("product_1") + tag("product_2")
	cat := testCatalog()
	a := Parse(reply, cat)
	b := Parse(reply, cat)
	if !reflect.DeepEqual(a, b) {
		t.Error("Parse is not idempotent")
	}
}

func TestParseIgnoresMalformedTags(t *testing.T) {
	for _, reply := range []string{
		`<product-card data-id='product_1'></product-card>`,
		`<product-card id="product_1"></product-card>`,
		`<product-card data-id="product_1"/>`,
		`<product-card data-id="product_1">text</product-card>`,
	} {
		res := Parse(reply, testCatalog())
		if len(res.Products) != 0 {
			t.Errorf("Parse(%q) resolved %d products, want 0", reply, len(res.Products))
		}
	}
}
