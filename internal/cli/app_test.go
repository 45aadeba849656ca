// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/cli"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/prefs"
	"github.com/janderssonse/tecken/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The logger is process-wide, so these tests do not run in parallel.

const testCatalog = `[
  {"symbol": "+", "name": "Plus", "category": "Math", "keywords": ["add"]},
  {"symbol": "×", "name": "Times", "category": "Math", "keywords": ["multiply"]},
  {"symbol": "α", "name": "Alpha", "category": "Greek"},
  {"symbol": "π", "name": "Pi", "category": "Greek"},
  {"symbol": "→", "name": "Right arrow", "category": "Arrows", "keywords": ["arrow"]},
  {"symbol": "←", "name": "Left arrow", "category": "Arrows", "keywords": ["arrow"]}
]`

type fakeWriter struct {
	texts []string
	err   error
}

func (w *fakeWriter) Name() string { return "fake" }

func (w *fakeWriter) WriteText(text string) error {
	if w.err != nil {
		return w.err
	}

	w.texts = append(w.texts, text)

	return nil
}

type harness struct {
	dir     string
	catalog string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	writer  *fakeWriter
	deps    cli.Dependencies
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("TECKEN_SOURCE", "")
	t.Setenv("TECKEN_UI_LOCALE", "")

	path := filepath.Join(dir, "symbols.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o600))

	h := &harness{
		dir:     dir,
		catalog: path,
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		writer:  &fakeWriter{},
	}

	h.deps = cli.Dependencies{
		Stdout:     h.stdout,
		Stderr:     h.stderr,
		Themes:     prefs.NewStore(filepath.Join(dir, "prefs.toml")),
		IsTerminal: func() bool { return false },
		LaunchTUI: func(context.Context, tui.Options) error {
			t.Fatal("unexpected TUI launch")

			return nil
		},
	}
	h.deps.Writers = []domain.ClipboardWriter{h.writer}

	return h
}

// run executes tecken with the test catalog in English.
func (h *harness) run(args ...string) error {
	full := append([]string{"tecken", "--source", h.catalog, "--locale", "en"}, args...)

	return cli.NewCLIWithDependencies(h.deps).Run(context.Background(), full)
}

// runBare executes tecken without injecting any global flags.
func (h *harness) runBare(args ...string) error {
	return cli.NewCLIWithDependencies(h.deps).Run(context.Background(), append([]string{"tecken"}, args...))
}

func exitCode(t *testing.T, err error) int {
	t.Helper()

	if err == nil {
		return cli.ExitSuccess
	}

	var exitErr *domain.ExitError
	require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)

	return exitErr.Code
}

func TestGlobalFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"json and plain", []string{"--json", "--plain", "list"}, cli.ExitUsageError},
		{"bad color", []string{"--color", "sometimes", "list"}, cli.ExitUsageError},
		{"bad locale", []string{"--locale", "sv", "list"}, cli.ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			assert.Equal(t, tt.want, exitCode(t, h.runBare(tt.args...)))
		})
	}
}

func TestBrokenConfigFile(t *testing.T) {
	h := newHarness(t)

	path := filepath.Join(h.dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[catalog\nsource = "), 0o600))

	err := h.runBare("--config", path, "list")

	assert.Equal(t, cli.ExitConfigError, exitCode(t, err))
}

func TestUnknownCommand(t *testing.T) {
	h := newHarness(t)

	err := h.run("lsit")

	assert.Equal(t, cli.ExitUsageError, exitCode(t, err))
	assert.Contains(t, h.stderr.String(), "is not a command")
}

func TestNoCommandOutsideTerminalShowsHelp(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run())

	assert.Contains(t, h.stdout.String(), "ESSENTIAL COMMANDS")
}

func TestNoCommandInTerminalLaunchesPicker(t *testing.T) {
	h := newHarness(t)

	var got tui.Options

	h.deps.IsTerminal = func() bool { return true }
	h.deps.LaunchTUI = func(_ context.Context, opts tui.Options) error {
		got = opts

		return nil
	}

	require.NoError(t, h.run())

	require.NotNil(t, got.Service)
	assert.NotNil(t, got.Copier)
	assert.Equal(t, h.catalog, got.WatchPath, "local catalog files are watched by default")
	assert.Equal(t, catalog.LocaleEnglish, got.UI.Locale)
}

func TestPickerLaunchFailure(t *testing.T) {
	h := newHarness(t)

	h.deps.LaunchTUI = func(context.Context, tui.Options) error { return tui.ErrNoTerminal }

	err := h.run("tui")

	assert.Equal(t, cli.ExitGeneralError, exitCode(t, err))
}

func TestSourceFromEnvironment(t *testing.T) {
	h := newHarness(t)
	t.Setenv("TECKEN_SOURCE", h.catalog)

	require.NoError(t, h.runBare("--locale", "en", "--plain", "categories"))

	assert.Equal(t, "all\t6\nMath\t2\nGreek\t2\nArrows\t2\n", h.stdout.String())
}

func TestBrokenSourceFallsBackWithWarning(t *testing.T) {
	h := newHarness(t)

	err := h.runBare("--source", filepath.Join(h.dir, "missing.json"), "--json", "list")
	require.NoError(t, err)

	assert.Contains(t, h.stderr.String(), "using bundled symbols")
	assert.Contains(t, h.stdout.String(), `"origin": "default"`)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("version"))

	assert.Contains(t, h.stdout.String(), "tecken ")
}
