// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
	"path/filepath"
	"strings"
)

// Format identifies the encoding of a catalog payload.
type Format string

// Supported catalog formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension. Unknown extensions are JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType picks a format from an HTTP Content-Type header.
func FormatFromContentType(contentType string) Format {
	contentType = strings.ToLower(contentType)
	if strings.Contains(contentType, "yaml") {
		return FormatYAML
	}

	return FormatJSON
}

// CatalogSource supplies raw catalog bytes from somewhere outside the binary.
// Implemented by the HTTP and file adapters in the catalog package.
type CatalogSource interface {
	// Fetch retrieves the payload and its format.
	Fetch(ctx context.Context) ([]byte, Format, error)

	// Describe returns a human readable location for logs and errors.
	Describe() string
}

// ClipboardWriter puts text on a clipboard of some kind.
type ClipboardWriter interface {
	// Name identifies the mechanism in results and logs.
	Name() string

	// WriteText writes text to the clipboard.
	WriteText(text string) error
}

// Notifier tells the user how a copy went.
type Notifier interface {
	Notify(result CopyResult)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(CopyResult)

// Notify calls f.
func (f NotifierFunc) Notify(result CopyResult) {
	f(result)
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	// Theme returns the stored theme, or DefaultTheme when nothing is stored.
	Theme() (Theme, error)

	// SetTheme persists theme.
	SetTheme(theme Theme) error
}
