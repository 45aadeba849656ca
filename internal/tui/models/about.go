// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/tui/styles"
)

const aboutMarkdown = `# tecken

Find a special character and copy it with one keystroke.

## Keys

| Key | Action |
|---|---|
| ` + "`/`" + ` | search name, symbol or keyword |
| ` + "`tab`" + ` | search every category or only the selected one |
| ` + "`[` `]` `J` `K`" + ` | previous / next category |
| arrows, ` + "`hjkl`" + ` | move in the grid |
| ` + "`enter`" + `, ` + "`c`" + ` | copy the selected symbol |
| ` + "`r`" + ` | reload the catalog |
| ` + "`t`" + ` | switch light / dark theme |
| ` + "`x`" + ` | dismiss the load error |
| ` + "`q`" + ` | quit |

## Catalog

%s
`

// AboutModal is an overlay describing keys and the loaded catalog, rendered
// as markdown with glamour.
type AboutModal struct {
	visible bool
	content string
	keys    key.Binding
}

// NewAboutModal creates a hidden about modal.
func NewAboutModal() *AboutModal {
	return &AboutModal{
		keys: key.NewBinding(key.WithKeys("?", "esc", "q")),
	}
}

// Show renders the content for the current snapshot and displays the modal.
func (a *AboutModal) Show(styleConfig *styles.Styles, snapshot *catalog.Snapshot, width int) {
	a.content = renderAbout(styleConfig, snapshot, width)
	a.visible = true
}

// Hide closes the modal.
func (a *AboutModal) Hide() {
	a.visible = false
}

// IsVisible returns whether the modal is shown.
func (a *AboutModal) IsVisible() bool {
	return a.visible
}

// Update closes the modal on ?, esc or q. Everything else is swallowed.
func (a *AboutModal) Update(msg tea.Msg) tea.Cmd {
	if !a.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}

		if key.Matches(msg, a.keys) {
			a.Hide()
		}
	}

	return nil
}

// View renders the modal body.
func (a *AboutModal) View(styleConfig *styles.Styles) string {
	if !a.visible {
		return ""
	}

	hint := styleConfig.MutedText.Render("Press ? or Esc to close")

	return styleConfig.Modal.Render(strings.TrimSpace(a.content) + "\n\n" + hint)
}

func renderAbout(styleConfig *styles.Styles, snapshot *catalog.Snapshot, width int) string {
	markdown := fmt.Sprintf(aboutMarkdown, describeSnapshot(snapshot))

	wrap := min(max(width-8, 40), 80)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleConfig.GlamourStyle()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return markdown
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}

func describeSnapshot(snapshot *catalog.Snapshot) string {
	if snapshot == nil {
		return "Not loaded yet."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "- **%d** symbols in **%d** categories\n", len(snapshot.Catalog), max(len(snapshot.Index)-1, 0))
	fmt.Fprintf(&b, "- origin: `%s`\n", snapshot.Origin)

	if snapshot.Source != "" {
		fmt.Fprintf(&b, "- source: `%s`\n", snapshot.Source)
	}

	if snapshot.Dropped > 0 {
		fmt.Fprintf(&b, "- %d entries without a symbol were skipped\n", snapshot.Dropped)
	}

	if snapshot.Err != nil {
		fmt.Fprintf(&b, "- last load failed: %s\n", snapshot.Err)
	}

	return b.String()
}
