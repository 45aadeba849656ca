// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/janderssonse/tecken/internal/application"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/export"
	"github.com/urfave/cli/v3"
)

var (
	// ErrNoSymbols is returned when a selection leaves nothing to pick from.
	ErrNoSymbols = errors.New("no symbols match")
	// ErrNotTerminal is returned by interactive commands outside a terminal.
	ErrNotTerminal = errors.New("not a terminal")
)

// selectionFlags are shared by list, copy and pick.
func selectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "category",
			Aliases: []string{"c"},
			Usage:   "restrict to one category (see 'tecken categories')",
			Value:   domain.AllCategory,
		},
		&cli.StringFlag{
			Name:  "query",
			Usage: "match name, symbol or keyword, case-insensitively",
		},
		&cli.StringFlag{
			Name:  "mode",
			Usage: "search scope: all (every category) or category (selected category only)",
			Value: domain.SearchAllCategories.String(),
		},
	}
}

// applySelection moves the selection flags into the service.
func (app *CLI) applySelection(service *application.PickerService, cmd *cli.Command) error {
	mode, err := domain.ParseSearchMode(cmd.String("mode"))
	if err != nil {
		return app.exitError(ExitUsageError, err)
	}

	if err := service.OnCategorySelected(cmd.String("category")); err != nil {
		return app.exitError(ExitNotFoundError, err)
	}

	service.OnSearchModeChanged(mode)
	service.OnSearchChanged(cmd.String("query"))

	return nil
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive picker",
		Description: `Full-screen picker with a category sidebar, live search and a symbol grid.

Keys:
  /          search              tab        toggle search scope
  [ ] J K    previous/next category
  arrows     move                enter c    copy
  t          toggle theme        r          retry loading the catalog
  ?          about               q          quit`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.launchTUI(ctx)
		},
	}
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "List symbols matching a category and query",
		Flags:  selectionFlags(),
		Action: app.runList,
	}
}

func (app *CLI) runList(ctx context.Context, cmd *cli.Command) error {
	service := app.loadService(ctx)
	if err := app.applySelection(service, cmd); err != nil {
		return err
	}

	visible := service.Visible()
	selection := service.Selection()
	snapshot := service.Snapshot()
	output := app.newOutput()

	if app.json {
		return output.Success("", domain.ListResult{
			Category:  selection.Category,
			Query:     selection.Query,
			Mode:      selection.Mode.String(),
			Symbols:   visible,
			Total:     len(snapshot.Catalog),
			Origin:    string(snapshot.Origin),
			Timestamp: time.Now(),
		})
	}

	rows := make([][]string, 0, len(visible))
	for _, record := range visible {
		row := []string{record.Symbol, record.Name, record.Category}
		if !app.plain {
			row = append(row, strings.Join(record.Keywords, ", "))
		}

		rows = append(rows, row)
	}

	if err := output.Table([]string{"SYMBOL", "NAME", "CATEGORY", "KEYWORDS"}, rows); err != nil {
		return app.exitError(ExitGeneralError, err)
	}

	if !app.plain {
		_ = output.Info(fmt.Sprintf("\n%d of %d symbols", len(visible), len(snapshot.Catalog)))
	}

	return nil
}

func (app *CLI) createCategoriesCommand() *cli.Command {
	return &cli.Command{
		Name:   "categories",
		Usage:  "Show the category index with record counts",
		Action: app.runCategories,
	}
}

func (app *CLI) runCategories(ctx context.Context, _ *cli.Command) error {
	service := app.loadService(ctx)
	categories := service.Categories()
	output := app.newOutput()

	if app.json {
		return output.Success("", domain.CategoriesResult{
			Categories: categories,
			Origin:     string(service.Snapshot().Origin),
			Timestamp:  time.Now(),
		})
	}

	labels := service.Labels()
	rows := make([][]string, 0, len(categories))

	for _, category := range categories {
		name := category.Name
		if !app.plain {
			name = labels.DisplayCategory(name)
		}

		rows = append(rows, []string{name, strconv.Itoa(category.Count)})
	}

	if err := output.Table([]string{"CATEGORY", "COUNT"}, rows); err != nil {
		return app.exitError(ExitGeneralError, err)
	}

	return nil
}

func (app *CLI) createCopyCommand() *cli.Command {
	return &cli.Command{
		Name:      "copy",
		Usage:     "Copy a symbol to the clipboard",
		ArgsUsage: "<symbol|text>",
		Description: `Copies the exact symbol when it exists in the selected category, otherwise
the first symbol whose name, symbol or keyword contains the text.

  tecken copy π
  tecken copy "right arrow"
  tecken copy --category 货币 euro`,
		Flags:  copyFlags(),
		Action: app.runCopy,
	}
}

// copyFlags are the selection flags without --query; the argument is the query.
func copyFlags() []cli.Flag {
	flags := selectionFlags()

	return []cli.Flag{flags[0], flags[2]}
}

func (app *CLI) runCopy(ctx context.Context, cmd *cli.Command) error {
	arg := strings.Join(cmd.Args().Slice(), " ")
	if arg == "" {
		return domain.NewExitError(ExitUsageError, "Usage: tecken copy <symbol|text>", nil)
	}

	service := app.loadService(ctx)
	if err := app.applySelection(service, cmd); err != nil {
		return err
	}

	record, err := service.Resolve(arg)
	if err != nil {
		return app.exitError(ExitNotFoundError, err)
	}

	return app.copyRecord(service, record)
}

// copyRecord copies record and turns a failed copy into an exit code. The
// copier's notifier has already told the user what happened.
func (app *CLI) copyRecord(service *application.PickerService, record domain.SymbolRecord) error {
	result := service.Copy(record.Symbol)

	switch {
	case app.json:
		_ = app.newOutput().Success("", result)
	case app.plain && result.OK:
		app.output.PlainValue(result.Symbol)
	}

	if !result.OK {
		return domain.NewExitError(exitCodeFor(result.Err), "", result.Err)
	}

	return nil
}

func (app *CLI) createPickCommand() *cli.Command {
	return &cli.Command{
		Name:   "pick",
		Usage:  "Choose a symbol from an inline list and copy it",
		Flags:  selectionFlags(),
		Action: app.runPick,
	}
}

func (app *CLI) runPick(ctx context.Context, cmd *cli.Command) error {
	if !app.deps.IsTerminal() {
		return app.exitError(ExitUsageError, errors.WithHint(
			errors.Wrap(ErrNotTerminal, "pick needs an interactive terminal"),
			"use 'tecken copy <text>' in scripts",
		))
	}

	service := app.loadService(ctx)
	if err := app.applySelection(service, cmd); err != nil {
		return err
	}

	visible := service.Visible()
	if len(visible) == 0 {
		return app.exitError(ExitNotFoundError, errors.Mark(ErrNoSymbols, domain.ErrNotFound))
	}

	index, err := app.deps.Choose(ctx, visible, service.Labels())
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return domain.NewExitError(ExitInterruptError, "Cancelled", nil)
		}

		return app.exitError(ExitGeneralError, err)
	}

	if index < 0 || index >= len(visible) {
		return domain.NewExitError(ExitGeneralError, "invalid choice", nil)
	}

	return app.copyRecord(service, visible[index])
}

// chooseWithForm shows a filterable huh select over records.
func chooseWithForm(ctx context.Context, records []domain.SymbolRecord, labels catalog.Labels) (int, error) {
	options := make([]huh.Option[int], len(records))
	for i, record := range records {
		label := fmt.Sprintf("%s  %s  · %s", record.Symbol, record.Name, labels.DisplayCategory(record.Category))
		options[i] = huh.NewOption(label, i)
	}

	choice := -1

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Pick a symbol").
				Description("type / to filter, enter to copy").
				Options(options...).
				Height(15).
				Value(&choice),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.RunWithContext(ctx); err != nil {
		return -1, err
	}

	return choice, nil
}

func (app *CLI) createThemeCommand() *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or change the picker theme",
		Commands: []*cli.Command{
			{
				Name:   "get",
				Usage:  "Print the current theme",
				Action: app.runThemeGet,
			},
			{
				Name:      "set",
				Usage:     "Set the theme",
				ArgsUsage: "<light|dark>",
				Action:    app.runThemeSet,
			},
			{
				Name:   "toggle",
				Usage:  "Switch between light and dark",
				Action: app.runThemeToggle,
			},
		},
		Action: app.runThemeGet,
	}
}

func (app *CLI) runThemeGet(_ context.Context, _ *cli.Command) error {
	theme, err := app.themeStore().Theme()
	if err != nil {
		app.output.Warningf("%s; showing the default", domain.GetErrorInfo(err, false).Message)
	}

	return app.printTheme(theme, "")
}

func (app *CLI) runThemeSet(_ context.Context, cmd *cli.Command) error {
	if !cmd.Args().Present() {
		return domain.NewExitError(ExitUsageError, "Usage: tecken theme set <light|dark>", nil)
	}

	theme, err := domain.ParseTheme(cmd.Args().First())
	if err != nil {
		return app.exitError(ExitUsageError, err)
	}

	if err := app.themeStore().SetTheme(theme); err != nil {
		return app.exitError(themeWriteExitCode(err), err)
	}

	return app.printTheme(theme, "Theme set to "+string(theme))
}

type themeToggler interface {
	Toggle() (domain.Theme, error)
}

func (app *CLI) runThemeToggle(_ context.Context, _ *cli.Command) error {
	store := app.themeStore()

	var (
		theme domain.Theme
		err   error
	)

	if toggler, ok := store.(themeToggler); ok {
		theme, err = toggler.Toggle()
	} else {
		theme, _ = store.Theme()
		theme = theme.Toggle()
		err = store.SetTheme(theme)
	}

	if err != nil {
		return app.exitError(themeWriteExitCode(err), err)
	}

	return app.printTheme(theme, "Theme set to "+string(theme))
}

func (app *CLI) printTheme(theme domain.Theme, message string) error {
	switch {
	case app.json:
		return app.newOutput().Success("", map[string]string{"theme": string(theme)})
	case app.plain || message == "":
		app.output.PlainValue(string(theme))
	default:
		app.output.Successf("%s", message)
	}

	return nil
}

func themeWriteExitCode(err error) int {
	if code := exitCodeFor(err); code != ExitGeneralError {
		return code
	}

	return ExitConfigError
}

func (app *CLI) createCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Validate or export symbol catalogs",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Load an external catalog without fallback and report what is usable",
				ArgsUsage: "[url|file]",
				Action:    app.runCatalogValidate,
			},
			{
				Name:  "export",
				Usage: "Write the current catalog as JSON, YAML or a spreadsheet",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "json, yaml or xlsx (default from the output extension, else json)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file; - or empty writes to stdout",
					},
				},
				Action: app.runCatalogExport,
			},
		},
	}
}

func (app *CLI) runCatalogValidate(ctx context.Context, cmd *cli.Command) error {
	ref := app.cfg.Catalog.Source
	if cmd.Args().Present() {
		ref = cmd.Args().First()
	}

	source := catalog.NewSource(ref, app.cfg.Catalog.Timeout)
	if source == nil {
		return domain.NewExitError(ExitUsageError, "Usage: tecken catalog validate <url|file> (or set --source)", nil)
	}

	loader := catalog.NewLoader(catalog.LoaderOptions{
		Source: source,
		Labels: catalog.LabelsFor(app.cfg.UI.Locale),
	})

	app.output.Progressf("Fetching %s", source.Describe())

	result, dropped := loader.Fetch(ctx)

	report := domain.LoadReport{
		LoadID:   uuid.NewString(),
		Source:   source.Describe(),
		Origin:   string(catalog.OriginExternal),
		Usable:   len(result.Catalog()),
		Dropped:  dropped,
		LoadedAt: time.Now(),
	}

	output := app.newOutput()

	if err := result.Error(); err != nil {
		report.Error = err.Error()

		if app.json {
			_ = output.Success("", report)
		}

		app.output.ErrorBlock(domain.FormatErrorMessage(err, app.verbose))

		return domain.NewExitError(ExitNetworkError, "", err)
	}

	if app.plain {
		return output.Table(nil, [][]string{{report.Source, strconv.Itoa(report.Usable), strconv.Itoa(report.Dropped)}})
	}

	message := fmt.Sprintf("✓ %s: %d usable symbols in %d categories, %d dropped",
		report.Source, report.Usable, len(domain.BuildCategoryIndex(result.Catalog()))-1, report.Dropped)

	return output.Success(message, report)
}

func (app *CLI) runCatalogExport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")
	toStdout := path == "" || path == "-"

	format := export.FormatJSON
	if !toStdout {
		format = export.FormatFromPath(path)
	}

	if cmd.IsSet("format") {
		parsed, err := export.ParseFormat(cmd.String("format"))
		if err != nil {
			return app.exitError(ExitUsageError, err)
		}

		format = parsed
	}

	service := app.loadService(ctx)
	records := service.Snapshot().Catalog

	if toStdout {
		if err := export.Write(app.deps.Stdout, records, format); err != nil {
			return app.exitError(ExitGeneralError, err)
		}

		return nil
	}

	if err := export.WriteFile(path, records, format); err != nil {
		return app.exitError(exitCodeFor(err), err)
	}

	app.output.Successf("Exported %d symbols to %s", len(records), path)

	return nil
}

func (app *CLI) createVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(_ context.Context, _ *cli.Command) error {
			version := app.getVersion()

			return app.newOutput().Success("tecken "+version, map[string]string{
				"name":    "tecken",
				"version": version,
				"go":      runtime.Version(),
			})
		},
	}
}
