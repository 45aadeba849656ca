// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/tecken/internal/application"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/config"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"github.com/janderssonse/tecken/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// Layout constants for consistent spacing.
const (
	sidebarWidth  = 24 // including its right border
	headerHeight  = 2
	footerHeight  = 2
	messageHeight = 1
	minBodyHeight = cardHeight
	minGridWidth  = cardWidth
)

// Picker is the main screen: header with search, category sidebar, symbol
// grid, notification line and footer.
//
//nolint:containedctx // loads started from the update loop need the program context
type Picker struct {
	ctx     context.Context
	service *application.PickerService
	themes  domain.ThemeStore
	ui      config.UIConfig
	styles  *styles.Styles
	keys    PickerKeyMap

	search    textinput.Model
	searchSeq int
	viewport  viewport.Model
	width     int
	height    int

	visible    []domain.SymbolRecord
	categories domain.CategoryIndex
	cursor     int
	loading    bool

	notification   string
	notificationOK bool
	notifySeq      int
	copiedSymbol   string
	copiedSeq      int

	bannerDismissed bool
	quitting        bool
}

// NewPicker creates the picker. The service's store should already hold a
// usable snapshot, normally the bundled defaults; Init starts the real load.
func NewPicker(ctx context.Context, service *application.PickerService, themes domain.ThemeStore, ui config.UIConfig, theme domain.Theme) *Picker {
	search := textinput.New()
	search.Placeholder = "search name, symbol or keyword"
	search.Prompt = "/ "
	search.CharLimit = 64

	p := &Picker{
		ctx:      ctx,
		service:  service,
		themes:   themes,
		ui:       ui,
		styles:   styles.New(theme),
		keys:     DefaultPickerKeyMap(),
		search:   search,
		viewport: viewport.New(minGridWidth, minBodyHeight),
		width:    80,
		height:   24,
	}

	p.layout()
	p.refresh()

	return p
}

// Init starts the asynchronous catalog load.
func (p *Picker) Init() tea.Cmd {
	return p.load()
}

// Update handles messages for the picker.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.layout()
		p.renderContent()

		return p, nil

	case tea.KeyMsg:
		return p, p.handleKey(msg)

	case CatalogLoadedMsg:
		p.installSnapshot(msg.Snapshot)

		return p, nil

	case CopiedMsg:
		return p, p.handleCopied(msg.Result)

	case ThemeChangedMsg:
		if msg.Err != nil {
			logger.Warnw("Theme not saved", logger.FieldTheme, msg.Theme, logger.FieldError, msg.Err)

			return p, p.notify(false, "Theme not saved: "+domain.GetErrorInfo(msg.Err, false).Message)
		}

		return p, nil

	case searchTickMsg:
		if msg.seq == p.searchSeq {
			p.applyQuery()
		}

		return p, nil

	case clearNotificationMsg:
		if msg.seq == p.notifySeq {
			p.notification = ""
		}

		return p, nil

	case clearCopiedMsg:
		if msg.seq == p.copiedSeq {
			p.copiedSymbol = ""
			p.renderContent()
		}

		return p, nil
	}

	if p.search.Focused() {
		var cmd tea.Cmd

		p.search, cmd = p.search.Update(msg)

		return p, cmd
	}

	return p, nil
}

func (p *Picker) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		p.quitting = true

		return tea.Quit
	}

	if p.search.Focused() {
		return p.handleSearchKey(msg)
	}

	columns := gridColumns(p.viewport.Width)

	switch {
	case key.Matches(msg, p.keys.Quit):
		p.quitting = true

		return tea.Quit
	case key.Matches(msg, p.keys.Search):
		return p.search.Focus()
	case key.Matches(msg, p.keys.Blur):
		if p.search.Value() != "" {
			p.search.SetValue("")
			p.applyQuery()
		}
	case key.Matches(msg, p.keys.ToggleMode):
		p.toggleMode()
	case key.Matches(msg, p.keys.PrevCategory):
		p.cycleCategory(-1)
	case key.Matches(msg, p.keys.NextCategory):
		p.cycleCategory(1)
	case key.Matches(msg, p.keys.Up):
		p.moveCursor(-columns)
	case key.Matches(msg, p.keys.Down):
		p.moveCursor(columns)
	case key.Matches(msg, p.keys.Left):
		p.moveCursor(-1)
	case key.Matches(msg, p.keys.Right):
		p.moveCursor(1)
	case key.Matches(msg, p.keys.Copy):
		return p.copySelected()
	case key.Matches(msg, p.keys.Retry):
		if !p.loading {
			return p.load()
		}
	case key.Matches(msg, p.keys.Theme):
		return p.toggleTheme()
	case key.Matches(msg, p.keys.About):
		return func() tea.Msg { return AboutToggleMsg{} }
	case key.Matches(msg, p.keys.Dismiss):
		p.bannerDismissed = true
		p.layout()
		p.renderContent()
	}

	return nil
}

// handleSearchKey edits the query. Each edit restarts the debounce delay.
func (p *Picker) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		p.search.Blur()

		return nil
	case "enter":
		p.search.Blur()
		p.applyQuery()

		return nil
	case "tab":
		p.toggleMode()

		return nil
	}

	before := p.search.Value()

	var cmd tea.Cmd

	p.search, cmd = p.search.Update(msg)

	if p.search.Value() == before {
		return cmd
	}

	p.searchSeq++
	seq := p.searchSeq

	return tea.Batch(cmd, tea.Tick(p.ui.SearchDebounce, func(time.Time) tea.Msg {
		return searchTickMsg{seq: seq}
	}))
}

// applyQuery applies the current input now and invalidates pending ticks.
func (p *Picker) applyQuery() {
	p.searchSeq++
	p.service.OnSearchChanged(p.search.Value())
	p.cursor = 0
	p.refresh()
}

func (p *Picker) toggleMode() {
	p.service.OnSearchModeChanged(p.service.Selection().Mode.Toggle())
	p.cursor = 0
	p.refresh()
}

func (p *Picker) cycleCategory(delta int) {
	p.service.CycleCategory(delta)
	p.cursor = 0
	p.refresh()
}

func (p *Picker) moveCursor(delta int) {
	if len(p.visible) == 0 {
		return
	}

	next := p.cursor + delta
	if next < 0 || next >= len(p.visible) {
		return
	}

	p.cursor = next
	p.renderContent()
}

func (p *Picker) load() tea.Cmd {
	p.loading = true
	loader := p.service.Loader()
	ctx := p.ctx

	return func() tea.Msg {
		return CatalogLoadedMsg{Snapshot: loader.Load(ctx)}
	}
}

func (p *Picker) installSnapshot(snapshot *catalog.Snapshot) {
	p.loading = false

	if snapshot == nil {
		return
	}

	p.service.Install(snapshot)
	p.bannerDismissed = false
	p.layout()
	p.refresh()
}

// copySelected copies in the background. The clipboard notifier reports the
// outcome with a CopiedMsg.
func (p *Picker) copySelected() tea.Cmd {
	record, ok := p.Selected()
	if !ok {
		return nil
	}

	service := p.service

	return func() tea.Msg {
		service.Copy(record.Symbol)

		return nil
	}
}

func (p *Picker) handleCopied(result domain.CopyResult) tea.Cmd {
	if !result.OK {
		info := domain.GetErrorInfo(result.Err, false)

		message := "Copy failed: " + info.Message
		if len(info.Suggestions) > 0 {
			message += " (" + info.Suggestions[0] + ")"
		}

		return p.notify(false, message)
	}

	p.copiedSeq++
	p.copiedSymbol = result.Symbol
	p.renderContent()

	seq := p.copiedSeq

	return tea.Batch(
		p.notify(true, fmt.Sprintf("Copied %s", result.Symbol)),
		tea.Tick(p.ui.CopiedDuration, func(time.Time) tea.Msg { return clearCopiedMsg{seq: seq} }),
	)
}

// notify shows message until NotifyDuration passes or another one replaces it.
func (p *Picker) notify(ok bool, message string) tea.Cmd {
	p.notifySeq++
	p.notification = message
	p.notificationOK = ok

	seq := p.notifySeq

	return tea.Tick(p.ui.NotifyDuration, func(time.Time) tea.Msg {
		return clearNotificationMsg{seq: seq}
	})
}

func (p *Picker) toggleTheme() tea.Cmd {
	theme := p.styles.Theme.Toggle()
	p.styles = styles.New(theme)
	p.renderContent()

	themes := p.themes

	return func() tea.Msg {
		if themes == nil {
			return ThemeChangedMsg{Theme: theme}
		}

		return ThemeChangedMsg{Theme: theme, Err: themes.SetTheme(theme)}
	}
}

// refresh recomputes the visible records from the service.
func (p *Picker) refresh() {
	p.visible = p.service.Visible()
	p.categories = p.service.Categories()

	if p.cursor >= len(p.visible) {
		p.cursor = max(len(p.visible)-1, 0)
	}

	p.renderContent()
}

func (p *Picker) bannerVisible() bool {
	return !p.bannerDismissed && p.service.Snapshot().Err != nil
}

func (p *Picker) bodyHeight() int {
	height := p.height - headerHeight - messageHeight - footerHeight
	if p.bannerVisible() {
		height--
	}

	return max(height, minBodyHeight)
}

func (p *Picker) layout() {
	p.viewport.Width = max(p.width-sidebarWidth-1, minGridWidth)
	p.viewport.Height = p.bodyHeight()
	p.search.Width = max(p.width/2, 20)
}

// renderContent redraws the grid and scrolls the cursor row into view.
func (p *Picker) renderContent() {
	columns := gridColumns(p.viewport.Width)
	p.viewport.SetContent(renderGrid(p.styles, p.visible, columns, p.cursor, p.copiedSymbol))

	top := (p.cursor / columns) * cardHeight

	switch {
	case top < p.viewport.YOffset:
		p.viewport.SetYOffset(top)
	case top+cardHeight > p.viewport.YOffset+p.viewport.Height:
		p.viewport.SetYOffset(top + cardHeight - p.viewport.Height)
	}
}

// View renders the picker.
func (p *Picker) View() string {
	if p.quitting {
		return GoodbyeMessage
	}

	sections := []string{p.renderHeader()}

	if p.bannerVisible() {
		sections = append(sections, p.renderBanner())
	}

	sections = append(sections,
		lipgloss.JoinHorizontal(lipgloss.Top, p.renderSidebar(), " ", p.renderGridArea()),
		p.renderNotification(),
		RenderFooter(p.styles, p.width, p.footerBindings()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *Picker) renderHeader() string {
	snapshot := p.service.Snapshot()
	selection := p.service.Selection()

	title := p.styles.Title.Render("✦ tecken")
	count := p.styles.MutedText.Render(fmt.Sprintf("%d / %d", len(p.visible), len(snapshot.Catalog)))

	status := ""
	if p.loading {
		status = p.styles.WarningText.Render("  loading…")
	}

	scope := "all categories"
	if selection.Mode == domain.SearchWithinCategory {
		scope = "in " + p.service.Labels().DisplayCategory(selection.Category)
	}

	line1 := title + "  " + count + status
	line2 := p.search.View() + "  " + p.styles.Subtitle.Render("["+scope+"]")

	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}

func (p *Picker) renderBanner() string {
	snapshot := p.service.Snapshot()
	message := domain.GetErrorInfo(snapshot.Err, false).Message

	text := fmt.Sprintf("⚠ %s; showing bundled symbols  %s  %s",
		message, p.styles.Keybinding("r", "retry"), p.styles.Keybinding("x", "dismiss"))

	return p.styles.Banner.Render(text)
}

func (p *Picker) renderSidebar() string {
	height := p.bodyHeight()
	labels := p.service.Labels()
	current := p.service.Selection().Category
	inner := sidebarWidth - 2

	start := 0
	if pos := p.categories.Position(current); pos >= height {
		start = pos - height + 1
	}

	lines := make([]string, 0, height)

	for i := start; i < len(p.categories) && len(lines) < height; i++ {
		category := p.categories[i]
		count := strconv.Itoa(category.Count)
		name := truncate(labels.DisplayCategory(category.Name), inner-len(count)-3)
		gap := inner - 2 - runewidth.StringWidth(name) - len(count)
		line := name + strings.Repeat(" ", max(gap, 1)) + count

		if category.Name == current {
			lines = append(lines, p.styles.Selected.Render(line))
		} else {
			lines = append(lines, p.styles.Unselected.Render(line))
		}
	}

	return p.styles.Sidebar.Height(height).Width(sidebarWidth - 1).Render(strings.Join(lines, "\n"))
}

func (p *Picker) renderGridArea() string {
	if len(p.visible) == 0 {
		return lipgloss.Place(p.viewport.Width, p.viewport.Height, lipgloss.Center, lipgloss.Center,
			p.styles.MutedText.Render("No symbols match"))
	}

	return p.viewport.View()
}

func (p *Picker) renderNotification() string {
	if p.notification == "" {
		return ""
	}

	if p.notificationOK {
		return p.styles.SuccessText.Render("✓ " + p.notification)
	}

	return p.styles.ErrorText.Render("✗ " + p.notification)
}

func (p *Picker) footerBindings() []key.Binding {
	if p.search.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
			p.keys.ToggleMode,
		}
	}

	return []key.Binding{
		p.keys.Search, p.keys.ToggleMode, p.keys.NextCategory, p.keys.Copy,
		p.keys.Theme, p.keys.Retry, p.keys.About, p.keys.Quit,
	}
}

// Selected returns the record under the cursor.
func (p *Picker) Selected() (domain.SymbolRecord, bool) {
	if p.cursor < 0 || p.cursor >= len(p.visible) {
		return domain.SymbolRecord{}, false
	}

	return p.visible[p.cursor], true
}

// Visible returns the records currently shown.
func (p *Picker) Visible() []domain.SymbolRecord {
	return p.visible
}

// Notification returns the notification line text, empty when hidden.
func (p *Picker) Notification() string {
	return p.notification
}

// Styles returns the active styles.
func (p *Picker) Styles() *styles.Styles {
	return p.styles
}

// Snapshot returns the installed catalog snapshot.
func (p *Picker) Snapshot() *catalog.Snapshot {
	return p.service.Snapshot()
}

// SearchFocused reports whether keys go to the search input.
func (p *Picker) SearchFocused() bool {
	return p.search.Focused()
}

// Loading reports whether a catalog load is in flight.
func (p *Picker) Loading() bool {
	return p.loading
}
