// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG and TECKEN_* at an empty environment.
func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	for _, key := range []string{"TECKEN_CATALOG_SOURCE", "TECKEN_CATALOG_MERGE", "TECKEN_UI_LOCALE", "TECKEN_LOG_LEVEL"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Empty(t, cfg.Catalog.Source)
	assert.False(t, cfg.Catalog.Merge)
	assert.True(t, cfg.Catalog.Watch)
	assert.False(t, cfg.Catalog.HideOtherCategory)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "zh", cfg.UI.Locale)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.SearchDebounce)
	assert.Equal(t, 2*time.Second, cfg.UI.NotifyDuration)
	assert.Equal(t, 1500*time.Millisecond, cfg.UI.CopiedDuration)
	assert.Equal(t, filepath.Join(dir, "state", "tecken", "tecken.log"), cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)

	configDir := filepath.Join(dir, "config", "tecken")
	require.NoError(t, os.MkdirAll(configDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`
[catalog]
source = "https://example.com/file.json"
merge = true
timeout = "3s"

[ui]
locale = "en"
search_debounce = "150ms"
`), 0o600))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/file.json", cfg.Catalog.Source)
	assert.True(t, cfg.Catalog.Merge)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout)
	assert.Equal(t, "en", cfg.UI.Locale)
	assert.Equal(t, 150*time.Millisecond, cfg.UI.SearchDebounce)

	t.Setenv("TECKEN_CATALOG_SOURCE", "https://example.com/env.json")

	cfg, err = Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/env.json", cfg.Catalog.Source)

	cfg, err = Load(LoadOptions{Overrides: map[string]interface{}{
		KeyCatalogSource: "./flag.yaml",
		KeyLocale:        "zh",
	}})
	require.NoError(t, err)
	assert.Equal(t, "./flag.yaml", cfg.Catalog.Source)
	assert.Equal(t, "zh", cfg.UI.Locale)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o600))

	cfg, err := Load(LoadOptions{File: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load(LoadOptions{File: filepath.Join(dir, "missing.toml")})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[catalog\nsource = "), 0o600))

	_, err := Load(LoadOptions{File: path})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "english", mutate: func(c *Config) { c.UI.Locale = "en" }},
		{name: "unknown locale", mutate: func(c *Config) { c.UI.Locale = "de" }, wantErr: "ui.locale"},
		{name: "zero timeout", mutate: func(c *Config) { c.Catalog.Timeout = 0 }, wantErr: "catalog.timeout"},
		{name: "negative debounce", mutate: func(c *Config) { c.UI.SearchDebounce = -time.Second }, wantErr: "ui.search_debounce"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "chatty" }, wantErr: "log.level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
