// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides testify mocks for the domain ports.
package testutil

import (
	"context"

	"github.com/janderssonse/tecken/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockCatalogSource mocks the CatalogSource port for testing.
type MockCatalogSource struct {
	mock.Mock
}

// Fetch mocks fetching a catalog payload.
func (m *MockCatalogSource) Fetch(ctx context.Context) ([]byte, domain.Format, error) {
	args := m.Called(ctx)

	data, _ := args.Get(0).([]byte)
	format, _ := args.Get(1).(domain.Format)

	return data, format, args.Error(2)
}

// Describe mocks the source description.
func (m *MockCatalogSource) Describe() string {
	args := m.Called()

	return args.String(0)
}

// MockClipboardWriter mocks the ClipboardWriter port for testing.
type MockClipboardWriter struct {
	mock.Mock
}

// Name mocks the writer name.
func (m *MockClipboardWriter) Name() string {
	args := m.Called()

	return args.String(0)
}

// WriteText mocks writing to the clipboard.
func (m *MockClipboardWriter) WriteText(text string) error {
	args := m.Called(text)

	return args.Error(0)
}

// MockNotifier mocks the Notifier port for testing.
type MockNotifier struct {
	mock.Mock
}

// Notify records the copy result.
func (m *MockNotifier) Notify(result domain.CopyResult) {
	m.Called(result)
}

// MockThemeStore mocks the ThemeStore port for testing.
type MockThemeStore struct {
	mock.Mock
}

// Theme mocks reading the stored theme.
func (m *MockThemeStore) Theme() (domain.Theme, error) {
	args := m.Called()

	theme, _ := args.Get(0).(domain.Theme)

	return theme, args.Error(1)
}

// SetTheme mocks persisting the theme.
func (m *MockThemeStore) SetTheme(theme domain.Theme) error {
	args := m.Called(theme)

	return args.Error(0)
}

// StaticSource serves a fixed payload. Handy where mock expectations add noise.
type StaticSource struct {
	Data   string
	Format domain.Format
	Err    error
	Name   string
}

// Fetch implements domain.CatalogSource.
func (s StaticSource) Fetch(context.Context) ([]byte, domain.Format, error) {
	if s.Err != nil {
		return nil, "", s.Err
	}

	format := s.Format
	if format == "" {
		format = domain.FormatJSON
	}

	return []byte(s.Data), format, nil
}

// Describe implements domain.CatalogSource.
func (s StaticSource) Describe() string {
	if s.Name == "" {
		return "static"
	}

	return s.Name
}
