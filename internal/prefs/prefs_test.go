// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package prefs

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/janderssonse/tecken/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeDefaultsToLight(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "tecken", "prefs.toml"))

	theme, err := store.Theme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestSetThemePersists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tecken", "prefs.toml")

	require.NoError(t, NewStore(path).SetTheme(domain.ThemeDark))

	theme, err := NewStore(path).Theme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	require.ErrorIs(t, NewStore(path).SetTheme("sepia"), domain.ErrInvalidTheme)
}

func TestToggle(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "prefs.toml"))

	theme, err := store.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	theme, err = store.Toggle()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestUnknownKeysArePreserved(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\nfavourite = \"π\"\n"), 0o600))

	require.NoError(t, NewStore(path).SetTheme(domain.ThemeDark))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "favourite")
	assert.Contains(t, string(data), "dark")
}

func TestCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = = ="), 0o600))

	store := NewStore(path)

	theme, err := store.Theme()
	require.Error(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	// A write recovers the file.
	require.NoError(t, store.SetTheme(domain.ThemeDark))

	theme, err = store.Theme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestInvalidStoredTheme(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("theme = \"neon\"\n"), 0o600))

	theme, err := NewStore(path).Theme()
	require.ErrorIs(t, err, domain.ErrInvalidTheme)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestConcurrentToggles(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prefs.toml")

	var wg sync.WaitGroup

	for range 10 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := NewStore(path).Toggle()
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	// An even number of serialized toggles lands back on the default.
	theme, err := NewStore(path).Theme()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}
