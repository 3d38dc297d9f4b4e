// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/solemate/solemate-tui/internal/ui/styles"
)

// RenderBanner renders the header shown above the conversation.
func RenderBanner(productCount int) string {
	var b strings.Builder
	b.WriteString(styles.Banner.Render("solemate"))
	b.WriteString("  ")
	b.WriteString(styles.BannerHint.Render("footwear shopping assistant"))
	b.WriteString("\n")

	hint := "enter to send, ctrl+c to quit"
	if productCount > 0 {
		hint = fmt.Sprintf("%d products loaded | %s", productCount, hint)
	} else {
		hint = "no catalog loaded | " + hint
	}
	b.WriteString(styles.BannerHint.Render(hint))
	return b.String()
}
