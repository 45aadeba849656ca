// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tecken/internal/domain"
)

// Palette is the set of colors a theme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Surface    lipgloss.Color
}

// LightPalette is a paper-white palette with blue accents.
func LightPalette() Palette {
	return Palette{
		Primary:    lipgloss.Color("#2e7de9"), // Blue
		Secondary:  lipgloss.Color("#9854f1"), // Purple
		Success:    lipgloss.Color("#587539"), // Green
		Warning:    lipgloss.Color("#8c6c3e"), // Amber
		Error:      lipgloss.Color("#c64343"), // Red
		Muted:      lipgloss.Color("#8990b3"), // Gray
		Background: lipgloss.Color("#e1e2e7"),
		Foreground: lipgloss.Color("#3760bf"),
		Surface:    lipgloss.Color("#d0d5e3"),
	}
}

// DarkPalette is the Tokyo Night palette.
func DarkPalette() Palette {
	return Palette{
		Primary:    lipgloss.Color("#7aa2f7"), // Blue
		Secondary:  lipgloss.Color("#bb9af7"), // Purple
		Success:    lipgloss.Color("#9ece6a"), // Green
		Warning:    lipgloss.Color("#e0af68"), // Yellow
		Error:      lipgloss.Color("#f7768e"), // Red
		Muted:      lipgloss.Color("#565f89"), // Gray
		Background: lipgloss.Color("#1a1b26"),
		Foreground: lipgloss.Color("#c0caf5"),
		Surface:    lipgloss.Color("#24283b"),
	}
}

// Styles contains all the styles used in the TUI.
type Styles struct {
	Theme domain.Theme
	Palette

	// Component styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardCopied   lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Sidebar      lipgloss.Style
	Banner       lipgloss.Style
	Modal        lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style
}

// New creates the styles for theme. Unknown themes get the default theme.
func New(theme domain.Theme) *Styles {
	palette := LightPalette()
	if theme == domain.ThemeDark {
		palette = DarkPalette()
	} else {
		theme = domain.ThemeLight
	}

	return &Styles{
		Theme:   theme,
		Palette: palette,

		Title: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(palette.Secondary).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Muted).
			Foreground(palette.Foreground).
			Align(lipgloss.Center),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(palette.Primary).
			Foreground(palette.Primary).
			Bold(true).
			Align(lipgloss.Center),

		CardCopied: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Success).
			Foreground(palette.Success).
			Align(lipgloss.Center),

		Selected: lipgloss.NewStyle().
			Background(palette.Primary).
			Foreground(palette.Background).
			Bold(true).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(palette.Foreground).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), false, true, false, false).
			BorderForeground(palette.Muted).
			PaddingRight(1),

		Banner: lipgloss.NewStyle().
			Foreground(palette.Warning).
			Bold(true).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 2),

		MutedText:   lipgloss.NewStyle().Foreground(palette.Muted),
		PrimaryText: lipgloss.NewStyle().Foreground(palette.Primary),
		SuccessText: lipgloss.NewStyle().Foreground(palette.Success),
		ErrorText:   lipgloss.NewStyle().Foreground(palette.Error),
		WarningText: lipgloss.NewStyle().Foreground(palette.Warning),
	}
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	return keyStyle.Render("["+key+"]") + " " + s.MutedText.Render(desc)
}

// GlamourStyle names the glamour standard style matching the theme.
func (s *Styles) GlamourStyle() string {
	if s.Theme == domain.ThemeDark {
		return "dark"
	}

	return "light"
}
