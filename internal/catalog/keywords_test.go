// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"reflect"
	"testing"
)

func TestExtractKeywordsMaterials(t *testing.T) {
	got := ExtractKeywords("Material composition: 100% Leather with rubber trim")

	// Material pass first ("with" is a stopword, ":" too short),
	// then long tokens from the whole text, first-seen order, deduped.
	want := []string{"100%", "Leather", "rubber", "trim", "Material", "composition:"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywordsSectionValues(t *testing.T) {
	got := ExtractKeywords("Care instructions: Machine wash")
	if len(got) == 0 {
		t.Fatal("ExtractKeywords() returned nothing")
	}
	if got[0] != ": Machine wash" {
		t.Errorf("first keyword = %q, want %q", got[0], ": Machine wash")
	}
}

func TestExtractKeywordsLongTokenCap(t *testing.T) {
	text := "alpha1 bravo2 charl3 delta4 echo55 foxtr6 golf77 hotel8 india9 juliet kilo11 lima12"
	got := ExtractKeywords(text)
	if len(got) != maxTextKeywords {
		t.Errorf("len = %d, want %d", len(got), maxTextKeywords)
	}
	if got[0] != "alpha1" || got[len(got)-1] != "juliet" {
		t.Errorf("got %v, want first alpha1 and last juliet", got)
	}
}

func TestExtractKeywordsStopwords(t *testing.T) {
	got := ExtractKeywords("Price About details Product this item")
	if len(got) != 0 {
		t.Errorf("ExtractKeywords() = %v, want empty", got)
	}
}

func TestExtractKeywordsDedup(t *testing.T) {
	got := ExtractKeywords("leather leather leather")
	want := []string{"leather"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}
}

func TestExtractKeywordsEmpty(t *testing.T) {
	if got := ExtractKeywords(""); len(got) != 0 {
		t.Errorf("ExtractKeywords(\"\") = %v, want empty", got)
	}
}
