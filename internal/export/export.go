// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package export writes a catalog to JSON, YAML or an xlsx spreadsheet.
// JSON and YAML output can be fed back in as a catalog source.
package export

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/platform"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

// Supported export formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet holding exported records.
const SheetName = "Symbols"

// ErrUnsupportedFormat is returned for unknown format names.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", errors.WithHint(errors.Wrapf(ErrUnsupportedFormat, "%q", name), "use json, yaml or xlsx")
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatJSON
	}

	return format
}

// Write encodes c to w.
func Write(w io.Writer, c domain.Catalog, format Format) error {
	if c == nil {
		c = domain.Catalog{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		return errors.Wrap(enc.Encode(c), "encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(c); err != nil {
			return errors.Wrap(err, "encode yaml")
		}

		return errors.Wrap(enc.Close(), "encode yaml")
	case FormatXLSX:
		return writeXLSX(w, c)
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
}

// WriteFile encodes c and atomically replaces path with the result.
func WriteFile(path string, c domain.Catalog, format Format) error {
	var buf bytes.Buffer

	if err := Write(&buf, c, format); err != nil {
		return err
	}

	return errors.Wrapf(platform.WriteFileAtomic(path, buf.Bytes(), 0o644), "write %s", path)
}

func writeXLSX(w io.Writer, c domain.Catalog) error {
	f := excelize.NewFile()

	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return errors.Wrap(err, "create stream writer")
	}

	header := []interface{}{"symbol", "name", "category", "keywords"}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i, record := range c {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "cell name")
		}

		row := []interface{}{record.Symbol, record.Name, record.Category, strings.Join(record.Keywords, ", ")}
		if err := sw.SetRow(cell, row); err != nil {
			return errors.Wrapf(err, "write row %d", i+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "flush sheet")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write xlsx")
	}

	return nil
}
