// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package catalog

import (
	"regexp"
	"strings"
)

// maxTextKeywords caps how many long tokens are taken from the
// descriptive text itself.
const maxTextKeywords = 10

var (
	materialPattern = regexp.MustCompile(`Material composition([^|]+)`)
	carePattern     = regexp.MustCompile(`Care instructions([^|]+)`)
	solePattern     = regexp.MustCompile(`Sole material([^|]+)`)
	outerPattern    = regexp.MustCompile(`Outer material([^|]+)`)
)

// materialStopwords filters filler tokens out of the material
// composition capture. Matched case-insensitively.
var materialStopwords = map[string]bool{
	"composition": true,
	"with":        true,
	"and":         true,
	"the":         true,
}

// textStopwords filters structural tokens out of the descriptive
// text. Matched case-sensitively.
var textStopwords = map[string]bool{
	"Price":   true,
	"Product": true,
	"details": true,
	"About":   true,
	"this":    true,
	"item":    true,
}

// ExtractKeywords derives search keywords from a row's descriptive
// text: material composition tokens, the care/sole/outer material
// values, and up to ten long tokens from the text itself. The result
// is deduplicated with first-seen order preserved.
func ExtractKeywords(aiText string) []string {
	var keywords []string

	if m := materialPattern.FindStringSubmatch(aiText); m != nil {
		for _, word := range strings.Fields(m[1]) {
			if len(word) > 3 && !materialStopwords[strings.ToLower(word)] {
				keywords = append(keywords, word)
			}
		}
	}

	for _, p := range []*regexp.Regexp{carePattern, solePattern, outerPattern} {
		if m := p.FindStringSubmatch(aiText); m != nil {
			keywords = append(keywords, strings.TrimSpace(m[1]))
		}
	}

	count := 0
	for _, word := range strings.Fields(aiText) {
		if count >= maxTextKeywords {
			break
		}
		if len(word) > 4 && !textStopwords[word] {
			keywords = append(keywords, word)
			count++
		}
	}

	return dedup(keywords)
}

func dedup(words []string) []string {
	seen := make(map[string]bool, len(words))
	var out []string
	for _, w := range words {
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
