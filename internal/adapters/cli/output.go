// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli renders command results as aligned text, as tab separated
// rows for pipes, or as JSON for scripts.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/mattn/go-runewidth"
)

// ErrUnsupportedFormat is returned when an unsupported output format is requested.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// OutputFormat selects how results are rendered.
type OutputFormat int

const (
	// TextFormat outputs human-readable text.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
	// PlainFormat outputs tab separated rows without headers, for pipes.
	PlainFormat
)

var formatNames = map[string]OutputFormat{
	"":      TextFormat,
	"text":  TextFormat,
	"json":  JSONFormat,
	"plain": PlainFormat,
}

// columnGap is the number of spaces between text table columns.
const columnGap = 2

// OutputAdapter implements domain.OutputPort on top of a writer.
type OutputAdapter struct {
	w      io.Writer
	format OutputFormat
	quiet  bool
}

var _ domain.OutputPort = (*OutputAdapter)(nil)

// NewOutputAdapter writes to stdout.
func NewOutputAdapter(format OutputFormat, quiet bool) *OutputAdapter {
	return NewOutputAdapterWithWriter(os.Stdout, format, quiet)
}

// NewOutputAdapterWithWriter writes to w.
func NewOutputAdapterWithWriter(w io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{w: w, format: format, quiet: quiet}
}

// OutputFromFlags maps the global --json, --plain and --quiet flags to an
// adapter. --json wins over --plain.
func OutputFromFlags(w io.Writer, jsonFlag, plainFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat
	if jsonFlag {
		format = JSONFormat
	} else if plainFlag {
		format = PlainFormat
	}

	return NewOutputAdapterWithWriter(w, format, quietFlag)
}

// ParseOutputFormat resolves a format name, case-insensitively.
func ParseOutputFormat(name string) (OutputFormat, error) {
	if format, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return format, nil
	}

	return TextFormat, errors.Wrapf(ErrUnsupportedFormat, "%s", name)
}

// Format returns the configured output format.
func (o *OutputAdapter) Format() OutputFormat { return o.format }

// IsQuiet reports whether human-oriented output is suppressed.
func (o *OutputAdapter) IsQuiet() bool { return o.quiet }

// Success prints message, or data as JSON in JSON mode. JSON data is emitted
// even when quiet, so scripts still get their result.
func (o *OutputAdapter) Success(message string, data interface{}) error {
	if o.format == JSONFormat && data != nil {
		return o.encode(data)
	}

	if o.quiet || message == "" {
		return nil
	}

	return o.line(message)
}

// Error prints message as an error.
func (o *OutputAdapter) Error(message string) error {
	if o.quiet {
		return nil
	}

	switch o.format {
	case JSONFormat:
		return o.encode(map[string]string{"error": message})
	case PlainFormat:
		return o.line("error: " + message)
	default:
		return o.line("Error: " + message)
	}
}

// Info prints an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.encode(map[string]string{"info": message})
	}

	return o.line(message)
}

// Progress rewrites the current line. Only text output shows progress.
func (o *OutputAdapter) Progress(message string) error {
	if o.quiet || o.format != TextFormat {
		return nil
	}

	_, err := io.WriteString(o.w, "\r"+message)

	return errors.Wrap(err, "write progress")
}

// Table prints rows. Text output aligns columns by display width, so CJK
// names and wide symbols line up; plain output drops the headers; JSON output
// is a list of objects keyed by the lower-cased headers.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.quiet {
		return nil
	}

	switch o.format {
	case JSONFormat:
		return o.encode(tableObjects(headers, rows))
	case PlainFormat:
		var b strings.Builder
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteByte('\n')
		}

		return o.write(b.String())
	default:
		return o.write(alignedTable(headers, rows))
	}
}

func (o *OutputAdapter) line(text string) error {
	return o.write(text + "\n")
}

func (o *OutputAdapter) write(text string) error {
	_, err := io.WriteString(o.w, text)

	return errors.Wrap(err, "write output")
}

func (o *OutputAdapter) encode(data interface{}) error {
	encoder := json.NewEncoder(o.w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return errors.Wrap(encoder.Encode(data), "encode json output")
}

func tableObjects(headers []string, rows [][]string) []map[string]string {
	objects := make([]map[string]string, 0, len(rows))

	for _, row := range rows {
		object := make(map[string]string, len(row))

		for i, cell := range row {
			key := fmt.Sprintf("column%d", i+1)
			if i < len(headers) && headers[i] != "" {
				key = strings.ToLower(headers[i])
			}

			object[key] = cell
		}

		objects = append(objects, object)
	}

	return objects
}

func alignedTable(headers []string, rows [][]string) string {
	lines := make([][]string, 0, len(rows)+2)

	if len(headers) > 0 {
		rule := make([]string, len(headers))
		for i, header := range headers {
			rule[i] = strings.Repeat("-", runewidth.StringWidth(header))
		}

		lines = append(lines, headers, rule)
	}

	lines = append(lines, rows...)

	var widths []int

	for _, cells := range lines {
		for i, cell := range cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}

			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var b strings.Builder

	for _, cells := range lines {
		for i, cell := range cells {
			if i == len(cells)-1 {
				b.WriteString(cell)

				break
			}

			b.WriteString(runewidth.FillRight(cell, widths[i]+columnGap))
		}

		b.WriteByte('\n')
	}

	return b.String()
}
