// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the full-screen picker.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/application"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/clipboard"
	"github.com/janderssonse/tecken/internal/config"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"github.com/janderssonse/tecken/internal/tui/models"
	"golang.org/x/term"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Options wires the picker to its collaborators.
type Options struct {
	Service *application.PickerService
	// Copier is the service's copier; Run points its notifier at the program.
	Copier *clipboard.Copier
	Themes domain.ThemeStore
	UI     config.UIConfig
	// WatchPath is a local catalog file to live-reload, or empty.
	WatchPath string
}

// App is the root model: the picker plus the about overlay.
type App struct {
	picker *models.Picker
	about  *models.AboutModal
	width  int
	height int
}

// NewApp creates the root model.
func NewApp(ctx context.Context, opts Options, theme domain.Theme) *App {
	return &App{
		picker: models.NewPicker(ctx, opts.Service, opts.Themes, opts.UI, theme),
		about:  models.NewAboutModal(),
	}
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return a.picker.Init()
}

// Update implements the tea.Model interface.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case models.AboutToggleMsg:
		if a.about.IsVisible() {
			a.about.Hide()
		} else {
			a.about.Show(a.picker.Styles(), a.picker.Snapshot(), a.width)
		}

		return a, nil
	case tea.KeyMsg:
		if a.about.IsVisible() {
			return a, a.about.Update(msg)
		}
	}

	_, cmd := a.picker.Update(msg)

	return a, cmd
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.about.IsVisible() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.about.View(a.picker.Styles()))
	}

	return a.picker.View()
}

// Picker returns the picker model (for testing).
func (a *App) Picker() *models.Picker {
	return a.picker
}

// AboutVisible reports whether the about overlay is shown (for testing).
func (a *App) AboutVisible() bool {
	return a.about.IsVisible()
}

// Run starts the picker and blocks until the user quits or ctx ends.
func Run(ctx context.Context, opts Options) error {
	if !isTerminal() {
		return ErrNoTerminal
	}

	if opts.Service == nil {
		return errors.New("tui: no picker service")
	}

	theme := domain.DefaultTheme

	if opts.Themes != nil {
		stored, err := opts.Themes.Theme()
		if err != nil {
			logger.Warnw("Theme preference unreadable, using default", logger.FieldError, err)
		}

		theme = stored
	}

	program := tea.NewProgram(
		NewApp(ctx, opts, theme),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if opts.Copier != nil {
		opts.Copier.SetNotifier(domain.NotifierFunc(func(result domain.CopyResult) {
			program.Send(models.CopiedMsg{Result: result})
		}))
	}

	if opts.WatchPath != "" {
		stop := watchCatalog(ctx, opts, program)
		defer stop()
	}

	_, err := program.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return errors.Wrap(err, "TUI application failed")
	}

	return nil
}

// watchCatalog reloads the catalog whenever the watched file changes and
// forwards the snapshot to the program. The returned func stops watching.
func watchCatalog(ctx context.Context, opts Options, program *tea.Program) func() {
	loader := opts.Service.Loader()

	watcher, err := catalog.NewWatcher(opts.WatchPath, catalog.DefaultDebounce, func() {
		program.Send(models.CatalogLoadedMsg{Snapshot: loader.Load(ctx)})
	})
	if err != nil {
		logger.Warnw("Catalog file not watched", logger.FieldPath, opts.WatchPath, logger.FieldError, err)

		return func() {}
	}

	watcher.Start()
	logger.Debugw("Watching catalog file", logger.FieldPath, opts.WatchPath)

	return func() {
		if err := watcher.Stop(); err != nil {
			logger.Debugw("Stopping catalog watcher failed", logger.FieldError, err)
		}
	}
}

// isTerminal checks if stdin and stdout are connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
