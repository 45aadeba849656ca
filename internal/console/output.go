// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes human diagnostics to stderr, keeping stdout for results.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

// ColorMode controls ANSI styling of console output.
type ColorMode string

const (
	// ColorAuto styles output only when writing to a terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways styles output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables styling.
	ColorNever ColorMode = "never"
)

// ErrInvalidColorMode is returned for an unknown --color value.
var ErrInvalidColorMode = errors.New("invalid color mode")

// ParseColorMode parses a --color flag value.
func ParseColorMode(value string) (ColorMode, error) {
	switch mode := ColorMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return ColorAuto, errors.WithHint(
			errors.Wrapf(ErrInvalidColorMode, "%q", value),
			"use auto, always or never")
	}
}

// OutputState holds output configuration for one command invocation.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool
	Quiet   bool
	Color   ColorMode

	Stdout io.Writer
	Stderr io.Writer
}

// NewOutputState returns an OutputState writing to the process streams.
func NewOutputState() *OutputState {
	return &OutputState{Color: ColorAuto, Stdout: os.Stdout, Stderr: os.Stderr}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain, quiet bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
	o.Quiet = quiet
}

func (o *OutputState) stdout() io.Writer {
	if o.Stdout == nil {
		return os.Stdout
	}

	return o.Stdout
}

func (o *OutputState) stderr() io.Writer {
	if o.Stderr == nil {
		return os.Stderr
	}

	return o.Stderr
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Styled reports whether ANSI styling applies to stdout.
func (o *OutputState) Styled() bool {
	if o.JSON || o.Plain {
		return false
	}

	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// no-color.org
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}

	return IsTTY(o.stdout())
}

// Bold formats text with bold when styling applies.
func (o *OutputState) Bold(text string) string {
	if !o.Styled() {
		return text
	}

	return "\033[1m" + text + "\033[0m"
}

// Progressf writes progress messages to stderr (only if verbose and not JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr unless JSON, plain or quiet.
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain && !o.Quiet {
		_, _ = fmt.Fprintf(o.stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr.
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Quiet {
		return
	}

	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "warning: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		_, _ = fmt.Fprintf(o.stderr(), "error: "+format+"\n", args...)
	} else {
		_, _ = fmt.Fprintf(o.stderr(), "✗ "+format+"\n", args...)
	}
}

// ErrorBlock writes a preformatted, possibly multi-line error to stderr.
func (o *OutputState) ErrorBlock(text string) {
	_, _ = fmt.Fprintln(o.stderr(), strings.TrimRight(text, "\n"))
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.stdout()).Encode(result); err != nil {
		_, _ = fmt.Fprintf(o.stderr(), "error encoding JSON: %v\n", err)
	}
}

// ErrorResult reports err on stderr and, in JSON mode, as a result on stdout.
func (o *OutputState) ErrorResult(err error, code int) {
	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": err.Error(),
			"code":  code,
		})
	}

	o.Errorf("%s", err.Error())
}

// PlainValue outputs a single value on stdout.
func (o *OutputState) PlainValue(value string) {
	_, _ = fmt.Fprintf(o.stdout(), "%s\n", value)
}
