// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package recommend

import (
	"regexp"
	"strings"

	"github.com/solemate/solemate-tui/internal/catalog"
)

// OutroText is the fixed refinement prompt appended beneath a
// non-empty recommendation list.
const OutroText = "Would you like more specific recommendations? Feel free to ask for other styles or features."

// maxIntroLen bounds the lead-in when it has no sentence terminator.
const maxIntroLen = 120

var (
	tagPattern           = regexp.MustCompile(`<product-card data-id="([^"]+)"></product-card>`)
	firstSentencePattern = regexp.MustCompile(`^([^.!?]+[.!?])`)
)

// Result is a model reply split into renderable parts. Content always
// carries the raw reply with tags intact; the other fields are
// populated only when the reply contained recognized tags.
type Result struct {
	Content   string
	IntroText string
	OutroText string
	Products  []catalog.Product
}

// Parse scans reply for product-card tags in left-to-right order and
// resolves each id against the catalog by exact equality. Unresolvable
// ids are dropped without error; a repeated tag yields a repeated
// entry. The lead-in is the text before the first tag, cut to its
// first sentence, or to maxIntroLen with an ellipsis when no sentence
// terminator exists. The outro appears only when at least one product
// resolved.
func Parse(reply string, cat *catalog.Catalog) Result {
	res := Result{Content: reply}

	matches := tagPattern.FindAllStringSubmatchIndex(reply, -1)
	if len(matches) == 0 {
		return res
	}

	for _, m := range matches {
		id := reply[m[2]:m[3]]
		if p, ok := cat.Lookup(id); ok {
			res.Products = append(res.Products, p)
		}
	}

	res.IntroText = introText(strings.TrimSpace(reply[:matches[0][0]]))
	if len(res.Products) > 0 {
		res.OutroText = OutroText
	}
	return res
}

// introText cuts the lead-in at the first sentence terminator;
// without one, text longer than maxIntroLen is truncated with an
// ellipsis marker.
func introText(text string) string {
	if m := firstSentencePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if r := []rune(text); len(r) > maxIntroLen {
		return string(r[:maxIntroLen]) + "..."
	}
	return text
}
