// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tecken/internal/tui/styles"
)

// RenderFooter creates a standardized footer from key bindings.
func RenderFooter(styleConfig *styles.Styles, width int, bindings []key.Binding) string {
	actionStrings := make([]string, 0, len(bindings))

	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}

		help := binding.Help()
		actionStrings = append(actionStrings, styleConfig.Keybinding(help.Key, help.Desc))
	}

	footerText := strings.Join(actionStrings, "  ")

	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styleConfig.Muted).
		Width(max(width, 0)).
		Render(footerText)
}
