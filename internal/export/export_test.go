// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var sample = domain.Catalog{
	{Symbol: "π", Name: "Pi", Category: "Greek", Keywords: []string{"circle", "ratio"}},
	{Symbol: "<", Name: "Less than", Category: "Math"},
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, Write(&buf, sample, format))

			decodeFormat := domain.FormatJSON
			if format == FormatYAML {
				decodeFormat = domain.FormatYAML
			}

			raw, err := catalog.Decode(buf.Bytes(), decodeFormat)
			require.NoError(t, err)

			decoded, dropped := catalog.Normalize(raw, catalog.LabelsFor(catalog.LocaleEnglish))
			assert.Zero(t, dropped)
			assert.Equal(t, sample, decoded)
		})
	}
}

func TestJSONDoesNotEscapeHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatJSON))

	assert.Contains(t, buf.String(), `"symbol": "<"`)
}

func TestWriteXLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "symbols.xlsx")
	require.NoError(t, WriteFile(path, sample, FormatXLSX))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)

	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"symbol", "name", "category", "keywords"}, rows[0])
	assert.Equal(t, []string{"π", "Pi", "Greek", "circle, ratio"}, rows[1])
	require.GreaterOrEqual(t, len(rows[2]), 3)
	assert.Equal(t, []string{"<", "Less than", "Math"}, rows[2][:3])
}

func TestWriteFileJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "symbols.json")
	require.NoError(t, WriteFile(path, nil, FormatJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"json", FormatJSON, false},
		{"YML", FormatYAML, false},
		{"xlsx", FormatXLSX, false},
		{"csv", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			format, err := ParseFormat(tc.input)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, format)
		})
	}

	assert.Equal(t, FormatYAML, FormatFromPath("out.yaml"))
	assert.Equal(t, FormatXLSX, FormatFromPath("out.xlsx"))
	assert.Equal(t, FormatJSON, FormatFromPath("out"))
}

func TestWriteUnsupported(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, Write(&buf, sample, Format("csv")), ErrUnsupportedFormat)
}
