// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Common domain errors.
var (
	ErrLoadFailed           = errors.New("catalog load failed")
	ErrSourceUnavailable    = errors.New("catalog source unavailable")
	ErrInvalidShape         = errors.New("catalog payload is not a list of records")
	ErrEmptyCatalog         = errors.New("catalog has no usable entries")
	ErrCopyFailed           = errors.New("copy failed")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrInvalidTheme         = errors.New("invalid theme")
	ErrInvalidSearchMode    = errors.New("invalid search mode")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrNotFound             = errors.New("not found")
)

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

type errorMatcher struct {
	sentinel error
	patterns []string
	info     ErrorInfo
}

// getErrorMatchers returns known failures and their corresponding info.
// Sentinels are checked first, text patterns second.
func getErrorMatchers() []errorMatcher {
	return []errorMatcher{
		{
			sentinel: ErrSourceUnavailable,
			patterns: []string{"connection", "timeout", "no such host", "deadline exceeded"},
			info: ErrorInfo{
				Message:     "Catalog source could not be reached",
				Suggestions: []string{"Check the --source URL or path", "Check your network connection and proxy settings"},
			},
		},
		{
			sentinel: ErrInvalidShape,
			patterns: []string{"cannot unmarshal", "invalid character", "yaml:"},
			info: ErrorInfo{
				Message:     "Catalog data is malformed",
				Suggestions: []string{"The catalog must be a JSON or YAML list of {symbol, name, category, keywords} objects"},
			},
		},
		{
			sentinel: ErrEmptyCatalog,
			info: ErrorInfo{
				Message:     "Catalog contains no usable symbols",
				Suggestions: []string{"Every entry needs a non-empty symbol field"},
			},
		},
		{
			sentinel: ErrClipboardUnavailable,
			patterns: []string{"clipboard", "xclip", "xsel", "wl-copy"},
			info: ErrorInfo{
				Message:     "No clipboard available",
				Suggestions: []string{"Install xclip, xsel or wl-clipboard", "Use a terminal that supports OSC 52"},
			},
		},
		{
			sentinel: ErrCopyFailed,
			info: ErrorInfo{
				Message:     "Copy failed",
				Suggestions: []string{"Select the symbol manually from the list output"},
			},
		},
		{
			sentinel: ErrInvalidTheme,
			info: ErrorInfo{
				Message:     "Invalid theme",
				Suggestions: []string{"Use light or dark"},
			},
		},
		{
			sentinel: ErrInvalidSearchMode,
			info: ErrorInfo{
				Message:     "Invalid search mode",
				Suggestions: []string{"Use all or category"},
			},
		},
		{
			sentinel: ErrUnknownCategory,
			info: ErrorInfo{
				Message:     "Unknown category",
				Suggestions: []string{"Use 'tecken categories' to see available categories"},
			},
		},
		{
			sentinel: ErrNotFound,
			patterns: []string{"not found", "no such file"},
			info: ErrorInfo{
				Message:     "Not found",
				Suggestions: []string{"Check the spelling or try a broader query"},
			},
		},
		{
			patterns: []string{"permission", "denied"},
			info: ErrorInfo{
				Message:     "Permission denied",
				Suggestions: []string{"Check file permissions of the catalog and config directories"},
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
// Hints attached with errors.WithHint take precedence over the generic suggestions.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	hints := errors.GetAllHints(err)

	info, ok := matchError(err)
	if !ok {
		info = ErrorInfo{
			Message:     "Operation failed",
			Suggestions: []string{"Run with --verbose for more details"},
		}
	}

	if len(hints) > 0 {
		info.Suggestions = append(hints, info.Suggestions...)
	}

	info.ShowDetails = verbose

	return info
}

func matchError(err error) (ErrorInfo, bool) {
	matchers := getErrorMatchers()

	for _, matcher := range matchers {
		if matcher.sentinel != nil && errors.Is(err, matcher.sentinel) {
			return cloneInfo(matcher.info), true
		}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range matchers {
		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				return cloneInfo(matcher.info), true
			}
		}
	}

	return ErrorInfo{}, false
}

func cloneInfo(info ErrorInfo) ErrorInfo {
	info.Suggestions = append([]string(nil), info.Suggestions...)

	return info
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
