// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/solemate/solemate-tui/internal/model"
	"github.com/solemate/solemate-tui/internal/ui/components"
	"github.com/solemate/solemate-tui/internal/ui/styles"
)

// maxCardWidth keeps product cards readable on wide terminals.
const maxCardWidth = 64

// View renders the full screen: banner, scrollback, input, status.
func (m Model) View() string {
	if !m.sized {
		return "starting..."
	}

	var b strings.Builder
	b.WriteString(components.RenderBanner(m.productCount))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.state == StateWaiting {
		b.WriteString(m.spin.View())
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(m.width, m.modelName,
		m.state == StateWaiting, m.lastErr != nil, m.usage.Snapshot()))
	return b.String()
}

// renderMessages renders the UI log for the viewport.
func (m Model) renderMessages() string {
	msgs := m.store.Messages()
	if len(msgs) == 0 {
		return styles.BannerHint.Render("Say hello to get started.")
	}

	parts := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n\n")
}

// renderMessage renders one display message. Assistant messages with
// resolved products render the structured intro/cards/outro form;
// everything else renders as labeled text.
func (m Model) renderMessage(msg model.DisplayMessage) string {
	switch {
	case msg.Role == model.RoleUser:
		return styles.UserLabel.Render("You: ") + msg.Content

	case msg.IsError:
		return styles.AssistantLabel.Render("Assistant: ") + styles.ErrorText.Render(msg.Content)

	case len(msg.Products) > 0:
		var b strings.Builder
		b.WriteString(styles.AssistantLabel.Render("Assistant: "))
		if msg.IntroText != "" {
			b.WriteString(styles.IntroText.Render(msg.IntroText))
		}

		cardWidth := m.width - 4
		if cardWidth > maxCardWidth {
			cardWidth = maxCardWidth
		}
		for _, p := range msg.Products {
			b.WriteString("\n")
			b.WriteString(components.RenderProductCard(p, m.images, cardWidth))
		}

		if msg.OutroText != "" {
			b.WriteString("\n")
			b.WriteString(styles.OutroText.Render(msg.OutroText))
		}
		return b.String()

	default:
		return styles.AssistantLabel.Render("Assistant: ") + msg.Content
	}
}
