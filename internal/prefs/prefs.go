// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package prefs persists user preferences that survive restarts. Today that
// is only the colour theme.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

const themeKey = "theme"

// Store reads and writes prefs.toml. Unknown keys in the file are preserved.
type Store struct {
	path string
}

// NewStore creates a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewDefaultStore uses $XDG_CONFIG_HOME/tecken/prefs.toml.
func NewDefaultStore() *Store {
	return NewStore(platform.PrefsFilePath())
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Theme implements domain.ThemeStore. A missing file or key yields the
// default theme; a corrupt file yields the default theme and an error.
func (s *Store) Theme() (domain.Theme, error) {
	values, err := s.read()
	if err != nil {
		return domain.DefaultTheme, err
	}

	raw, ok := values[themeKey].(string)
	if !ok {
		return domain.DefaultTheme, nil
	}

	return domain.ParseTheme(raw)
}

// SetTheme implements domain.ThemeStore.
func (s *Store) SetTheme(theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}

	return s.update(func(map[string]interface{}) domain.Theme {
		return theme
	})
}

// Toggle flips the stored theme and returns the new value.
func (s *Store) Toggle() (domain.Theme, error) {
	var next domain.Theme

	err := s.update(func(values map[string]interface{}) domain.Theme {
		current := domain.DefaultTheme
		if raw, ok := values[themeKey].(string); ok {
			if parsed, err := domain.ParseTheme(raw); err == nil {
				current = parsed
			}
		}

		next = current.Toggle()

		return next
	})

	return next, err
}

func (s *Store) update(apply func(map[string]interface{}) domain.Theme) error {
	if err := platform.EnsureDir(filepath.Dir(s.path)); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return errors.Wrap(err, "failed to lock preferences")
	}

	defer func() {
		_ = lock.Unlock()
	}()

	values, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write.
		values = map[string]interface{}{}
	}

	values[themeKey] = string(apply(values))

	data, err := toml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "failed to encode preferences")
	}

	if err := platform.WriteFileAtomic(s.path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write preferences")
	}

	return nil
}

func (s *Store) read() (map[string]interface{}, error) {
	values := map[string]interface{}{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}

	if err != nil {
		return values, errors.Wrapf(err, "failed to read %s", s.path)
	}

	if err := toml.Unmarshal(data, &values); err != nil {
		return map[string]interface{}{}, errors.Wrapf(err, "failed to parse %s", s.path)
	}

	return values, nil
}
