// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestExitErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		exitError       *domain.ExitError
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "with underlying error",
			exitError:       domain.NewExitError(11, "catalog validation failed", domain.ErrEmptyCatalog),
			expectedCode:    11,
			expectedMessage: "catalog validation failed: catalog has no usable entries",
		},
		{
			name:            "without underlying error",
			exitError:       domain.NewExitError(2, "Invalid configuration", nil),
			expectedCode:    2,
			expectedMessage: "Invalid configuration",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expectedMessage, tc.exitError.Error())
			assert.Equal(t, tc.expectedCode, tc.exitError.Code)
		})
	}

	assert.ErrorIs(t, domain.NewExitError(11, "x", domain.ErrEmptyCatalog), domain.ErrEmptyCatalog)
}

func TestGetErrorInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		err             error
		expectedMessage string
		firstSuggestion string
	}{
		{
			name:            "nil",
			err:             nil,
			expectedMessage: "",
		},
		{
			name:            "wrapped sentinel",
			err:             errors.Wrap(domain.ErrInvalidShape, "decode https://example.com"),
			expectedMessage: "Catalog data is malformed",
			firstSuggestion: "The catalog must be a JSON or YAML list of {symbol, name, category, keywords} objects",
		},
		{
			name:            "hint comes first",
			err:             errors.WithHint(errors.Wrap(domain.ErrUnknownCategory, "Mth"), "did you mean Math?"),
			expectedMessage: "Unknown category",
			firstSuggestion: "did you mean Math?",
		},
		{
			name:            "pattern fallback",
			err:             errors.New("dial tcp: lookup nowhere: no such host"),
			expectedMessage: "Catalog source could not be reached",
			firstSuggestion: "Check the --source URL or path",
		},
		{
			name:            "generic",
			err:             errors.New("something odd"),
			expectedMessage: "Operation failed",
			firstSuggestion: "Run with --verbose for more details",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			info := domain.GetErrorInfo(tc.err, false)
			assert.Equal(t, tc.expectedMessage, info.Message)

			if tc.firstSuggestion != "" {
				assert.Equal(t, tc.firstSuggestion, info.Suggestions[0])
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	t.Parallel()

	err := errors.Wrap(domain.ErrNotFound, `no symbol matches "zzz"`)

	short := domain.FormatErrorMessage(err, false)
	assert.Equal(t, "✗ Not found (Check the spelling or try a broader query)", short)

	long := domain.FormatErrorMessage(err, true)
	assert.Contains(t, long, "Technical details: no symbol matches \"zzz\": not found")
	assert.Contains(t, long, "Suggestions:")
	assert.Contains(t, long, "• Check the spelling or try a broader query")
}
