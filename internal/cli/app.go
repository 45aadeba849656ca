// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the tecken command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/cockroachdb/errors"
	cliAdapter "github.com/janderssonse/tecken/internal/adapters/cli"
	"github.com/janderssonse/tecken/internal/application"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/clipboard"
	"github.com/janderssonse/tecken/internal/config"
	"github.com/janderssonse/tecken/internal/console"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"github.com/janderssonse/tecken/internal/prefs"
	"github.com/janderssonse/tecken/internal/tui"
	"github.com/sahilm/fuzzy"
	"github.com/urfave/cli/v3"
)

// Exit codes follow standard Unix conventions for better scripting support.
// Range 0-125 are safe to use (126+ have special meaning in shells).
const (
	ExitSuccess         = 0 // Operation completed successfully
	ExitGeneralError    = 1 // Generic failure (catch-all)
	ExitUsageError      = 2 // Invalid command line usage
	ExitConfigError     = 3 // Configuration file error
	ExitPermissionError = 4 // Permission denied
	ExitNotFoundError   = 5 // Requested symbol or category not found

	ExitDependencyError = 10 // No usable clipboard
	ExitNetworkError    = 11 // Catalog source could not be loaded
	ExitSystemError     = 12 // System call failed
	ExitTimeoutError    = 13 // Operation timed out
	ExitInterruptError  = 14 // User interrupted (Ctrl+C)

	// Warning (non-fatal issues occurred).
	ExitWarnings = 64
)

// Version is set at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "" //nolint:gochecknoglobals

// Dependencies are the side-effecting collaborators of the CLI. Zero values
// select the real implementations.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer

	// Themes persists the theme preference.
	Themes domain.ThemeStore
	// Writers are the clipboard writers in order of preference.
	Writers []domain.ClipboardWriter
	// IsTerminal reports whether stdout is an interactive terminal.
	IsTerminal func() bool
	// LaunchTUI runs the full-screen picker.
	LaunchTUI func(ctx context.Context, opts tui.Options) error
	// Choose lets the user pick one record inline and returns its index.
	Choose func(ctx context.Context, records []domain.SymbolRecord, labels catalog.Labels) (int, error)
}

// CLI holds the command tree and the global flag values of one invocation.
type CLI struct {
	app *cli.Command

	verbose    bool
	json       bool
	quiet      bool
	plain      bool
	color      string
	configFile string
	source     string
	merge      bool
	locale     string
	timeout    time.Duration

	deps   Dependencies
	cfg    *config.Config
	output *console.OutputState
}

// NewCLI creates the CLI wired to the real terminal, clipboard and prefs file.
func NewCLI() *CLI {
	return NewCLIWithDependencies(Dependencies{})
}

// NewCLIWithDependencies creates the CLI with injected collaborators.
func NewCLIWithDependencies(deps Dependencies) *CLI {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}

	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	if deps.IsTerminal == nil {
		stdout := deps.Stdout
		deps.IsTerminal = func() bool { return console.IsTTY(stdout) }
	}

	if deps.LaunchTUI == nil {
		deps.LaunchTUI = tui.Run
	}

	if deps.Choose == nil {
		deps.Choose = chooseWithForm
	}

	app := &CLI{
		deps:   deps,
		cfg:    config.Default(),
		output: &console.OutputState{Color: console.ColorAuto, Stdout: deps.Stdout, Stderr: deps.Stderr},
	}

	app.app = &cli.Command{
		Name:      "tecken",
		Usage:     "Find special characters and copy them to the clipboard",
		Version:   app.getVersion(),
		Suggest:   true,
		Writer:    deps.Stdout,
		ErrWriter: deps.Stderr,
		Description: `Browse a catalog of symbols (math, Greek letters, arrows, emoji, currency,
phonetic and pinyin marks, ...) by category, search them by name or keyword,
and copy one with a single keystroke.

Run without a command in a terminal to open the interactive picker.

EXAMPLES:
  tecken list --query arrow          List every arrow
  tecken copy pi                     Copy π to the clipboard
  tecken list --category 希腊字母     List one category
  tecken theme toggle                Switch between light and dark
  tecken catalog validate ./my.yaml  Check an external catalog`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and debug logs on stderr",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "output tab separated values without formatting for scripts",
				Destination: &app.plain,
			},
			&cli.StringFlag{
				Name:        "color",
				Usage:       "color output mode: auto, always, never",
				Value:       string(console.ColorAuto),
				Destination: &app.color,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "config file (default $XDG_CONFIG_HOME/tecken/config.toml)",
				Destination: &app.configFile,
			},
			&cli.StringFlag{
				Name:        "source",
				Usage:       "external catalog URL or file (.json, .yaml)",
				Sources:     cli.EnvVars("TECKEN_SOURCE"),
				Destination: &app.source,
			},
			&cli.BoolFlag{
				Name:        "merge",
				Usage:       "merge the external catalog with the bundled symbols",
				Destination: &app.merge,
			},
			&cli.StringFlag{
				Name:        "locale",
				Usage:       "label language: zh or en",
				Destination: &app.locale,
			},
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "timeout for fetching the external catalog",
				Destination: &app.timeout,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return app.initConfig(ctx, cmd)
		},
		After: func(_ context.Context, _ *cli.Command) error {
			logger.Cleanup()

			return nil
		},
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// App returns the root command of a CLI wired to the real environment.
func App() *cli.Command {
	return NewCLI().app
}

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createTUICommand(),
		app.createListCommand(),
		app.createCategoriesCommand(),
		app.createCopyCommand(),
		app.createPickCommand(),
		app.createThemeCommand(),
		app.createCatalogCommand(),
		app.createVersionCommand(),
	}
}

// initConfig validates global flags, resolves the configuration and starts
// the stderr logger.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if app.json && app.plain {
		return ctx, domain.NewExitError(ExitUsageError, "cannot use both --json and --plain flags simultaneously", nil)
	}

	colorMode, err := console.ParseColorMode(app.color)
	if err != nil {
		return ctx, domain.NewExitError(ExitUsageError, "invalid --color value: must be auto, always, or never", err)
	}

	app.output.SetMode(app.verbose, app.json, app.plain, app.quiet)
	app.output.Color = colorMode

	cfg, err := config.Load(config.LoadOptions{File: app.configFile, Overrides: app.overrides(cmd)})
	if err == nil {
		err = cfg.Validate()
	}

	if err != nil {
		return ctx, domain.NewExitError(ExitConfigError, domain.FormatErrorMessage(err, app.verbose), err)
	}

	app.cfg = cfg

	level := "warn"
	if app.verbose {
		level = "debug"
	}

	if err := logger.Initialize(logger.Options{JSON: app.json, Level: level, Writer: app.deps.Stderr}); err != nil {
		return ctx, domain.NewExitError(ExitGeneralError, "failed to initialize logging", err)
	}

	return ctx, nil
}

// overrides returns the config keys set explicitly on the command line.
func (app *CLI) overrides(cmd *cli.Command) map[string]interface{} {
	overrides := map[string]interface{}{}

	if cmd.IsSet("source") {
		overrides[config.KeyCatalogSource] = app.source
	}

	if cmd.IsSet("merge") {
		overrides[config.KeyCatalogMerge] = app.merge
	}

	if cmd.IsSet("locale") {
		overrides[config.KeyLocale] = app.locale
	}

	if cmd.IsSet("timeout") {
		overrides[config.KeyCatalogTimeout] = app.timeout
	}

	return overrides
}

// defaultAction opens the picker in a terminal and prints help otherwise.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		name := cmd.Args().First()
		app.output.Errorf("'%s' is not a command.", name)

		if suggestion := app.suggestCommand(name); suggestion != "" {
			_, _ = fmt.Fprintf(app.deps.Stderr, "\nDid you mean 'tecken %s'?\n", suggestion)
		}

		return domain.NewExitError(ExitUsageError, "Run 'tecken --help' to see available commands.", nil)
	}

	if !app.deps.IsTerminal() {
		app.showConciseHelp()

		return nil
	}

	return app.launchTUI(ctx)
}

func (app *CLI) suggestCommand(name string) string {
	names := make([]string, 0, len(app.app.Commands))
	for _, command := range app.app.Commands {
		names = append(names, command.Name)
	}

	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}

// showConciseHelp displays brief help when no command is given outside a terminal.
func (app *CLI) showConciseHelp() {
	version := app.getVersion()

	if app.json {
		app.output.JSONResult("success", map[string]any{
			"name":    "tecken",
			"version": version,
			"usage":   "tecken <command> [args...]",
			"help":    "use 'tecken --help' for complete documentation",
		})

		return
	}

	out := app.deps.Stdout

	_, _ = fmt.Fprintf(out, "tecken %s - find special characters and copy them\n\n", version)
	_, _ = fmt.Fprintf(out, "%s\n", app.output.Bold("ESSENTIAL COMMANDS"))
	_, _ = fmt.Fprintf(out, "  tui                 Open the interactive picker\n")
	_, _ = fmt.Fprintf(out, "  list --query <text> List matching symbols\n")
	_, _ = fmt.Fprintf(out, "  copy <symbol|text>  Copy a symbol to the clipboard\n")
	_, _ = fmt.Fprintf(out, "  categories          Show the category index\n\n")
	_, _ = fmt.Fprintf(out, "Complete help:       tecken --help\n")
}

// getVersion returns the ldflags version, the module version, or "dev".
func (app *CLI) getVersion() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	return "dev"
}

// newService builds a picker session from the resolved configuration. The
// store starts on the bundled defaults; callers decide when to load.
func (app *CLI) newService(notifier domain.Notifier) (*application.PickerService, *clipboard.Copier) {
	labels := catalog.LabelsFor(app.cfg.UI.Locale)

	loader := catalog.NewLoader(catalog.LoaderOptions{
		Source: catalog.NewSource(app.cfg.Catalog.Source, app.cfg.Catalog.Timeout),
		Merge:  app.cfg.Catalog.Merge,
		Labels: labels,
	})

	var copier *clipboard.Copier
	if app.deps.Writers != nil {
		copier = clipboard.NewCopier(notifier, app.deps.Writers...)
	} else {
		copier = clipboard.NewDefaultCopier(notifier)
	}

	service := application.NewPickerService(catalog.NewStore(nil), loader, copier, application.PickerOptions{
		Labels:            labels,
		HideOtherCategory: app.cfg.Catalog.HideOtherCategory,
	})

	return service, copier
}

// loadService builds a service and loads the catalog synchronously, warning
// on stderr when the external source failed and defaults are used instead.
func (app *CLI) loadService(ctx context.Context) *application.PickerService {
	service, _ := app.newService(app.copyNotifier())

	snapshot := service.Reload(ctx)
	if snapshot.Err != nil {
		app.output.Warningf("%s; using bundled symbols", domain.GetErrorInfo(snapshot.Err, false).Message)
		app.output.Progressf("%v", snapshot.Err)
	}

	app.output.Progressf("Loaded %d symbols (%s)", len(snapshot.Catalog), snapshot.Origin)

	return service
}

// copyNotifier reports copy outcomes on stderr, once per copy.
func (app *CLI) copyNotifier() domain.Notifier {
	return domain.NotifierFunc(func(result domain.CopyResult) {
		if result.OK {
			app.output.Successf("Copied %s via %s", result.Symbol, result.Method)

			return
		}

		app.output.ErrorBlock(domain.FormatErrorMessage(result.Err, app.verbose))
	})
}

func (app *CLI) newOutput() *cliAdapter.OutputAdapter {
	return cliAdapter.OutputFromFlags(app.deps.Stdout, app.json, app.plain, app.quiet)
}

func (app *CLI) launchTUI(ctx context.Context) error {
	if err := logger.Initialize(logger.Options{Level: app.cfg.Log.Level, File: app.cfg.Log.File}); err != nil {
		app.output.Warningf("logging disabled: %v", err)
		logger.Cleanup()
	}

	service, copier := app.newService(nil)

	watchPath := ""
	if source, ok := service.Loader().Source().(*catalog.FileSource); ok && app.cfg.Catalog.Watch {
		watchPath = source.Path()
	}

	err := app.deps.LaunchTUI(ctx, tui.Options{
		Service:   service,
		Copier:    copier,
		Themes:    app.themeStore(),
		UI:        app.cfg.UI,
		WatchPath: watchPath,
	})
	if err != nil {
		if app.verbose {
			return domain.NewExitError(ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), err)
		}

		return domain.NewExitError(ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) themeStore() domain.ThemeStore {
	if app.deps.Themes != nil {
		return app.deps.Themes
	}

	return prefs.NewDefaultStore()
}

// exitError converts err into an ExitError with a user-facing message.
func (app *CLI) exitError(code int, err error) error {
	return domain.NewExitError(code, domain.FormatErrorMessage(err, app.verbose), err)
}

// exitCodeFor maps domain errors onto exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUnknownCategory):
		return ExitNotFoundError
	case errors.Is(err, domain.ErrInvalidTheme), errors.Is(err, domain.ErrInvalidSearchMode):
		return ExitUsageError
	case errors.Is(err, domain.ErrClipboardUnavailable):
		return ExitDependencyError
	case errors.Is(err, domain.ErrLoadFailed), errors.Is(err, domain.ErrSourceUnavailable):
		return ExitNetworkError
	case errors.Is(err, os.ErrPermission):
		return ExitPermissionError
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeoutError
	default:
		return ExitGeneralError
	}
}
