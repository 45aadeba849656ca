// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// Card geometry. A card is a bordered box with the symbol and its name.
const (
	cardInnerWidth = 12
	cardWidth      = cardInnerWidth + 2 // borders
	cardHeight     = 4                  // two text lines plus borders
	cardGap        = 1
)

// gridColumns returns how many cards fit in width, at least one.
func gridColumns(width int) int {
	return max((width+cardGap)/(cardWidth+cardGap), 1)
}

// fitCell centers text in a cell of cardInnerWidth display columns, measuring
// with runewidth so wide glyphs and emoji do not break alignment.
func fitCell(text string) string {
	text = runewidth.Truncate(text, cardInnerWidth, "…")
	pad := cardInnerWidth - runewidth.StringWidth(text)
	left := pad / 2

	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

// renderCard renders one record.
func renderCard(styleConfig *styles.Styles, record domain.SymbolRecord, selected, copied bool) string {
	style := styleConfig.Card

	switch {
	case copied:
		style = styleConfig.CardCopied
	case selected:
		style = styleConfig.CardSelected
	}

	name := record.Name
	if copied {
		name = "✓ copied"
	}

	body := fitCell(record.Symbol) + "\n" + styleConfig.MutedText.Render(fitCell(name))

	return style.Width(cardInnerWidth).Render(body)
}

// renderGrid lays records out in rows of columns cards.
func renderGrid(styleConfig *styles.Styles, records []domain.SymbolRecord, columns, cursor int, copiedSymbol string) string {
	if len(records) == 0 {
		return ""
	}

	gap := strings.Repeat(" ", cardGap)
	rows := make([]string, 0, len(records)/columns+1)

	for start := 0; start < len(records); start += columns {
		end := min(start+columns, len(records))
		cards := make([]string, 0, 2*(end-start))

		for i := start; i < end; i++ {
			if i > start {
				cards = append(cards, gap)
			}

			record := records[i]
			cards = append(cards, renderCard(styleConfig, record, i == cursor, copiedSymbol != "" && record.Symbol == copiedSymbol))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// truncate shortens text to width display columns.
func truncate(text string, width int) string {
	return runewidth.Truncate(text, max(width, 1), "…")
}
