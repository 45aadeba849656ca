// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXDGDirs(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "/custom/config", GetXDGConfigHomeWithEnv("/custom/config"))
	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHomeWithEnv(""))
	assert.Equal(t, filepath.Join(home, ".config"), GetXDGConfigHomeWithEnv("relative/dir"))
	assert.Equal(t, "/custom/state", GetXDGStateHomeWithEnv("/custom/state"))
	assert.Equal(t, filepath.Join(home, ".local", "state"), GetXDGStateHomeWithEnv(""))
}

func TestAppPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	assert.Equal(t, filepath.Join(dir, "config", "tecken", "config.toml"), ConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "config", "tecken", "prefs.toml"), PrefsFilePath())
	assert.Equal(t, filepath.Join(dir, "state", "tecken", "tecken.log"), LogFilePath())
	assert.Equal(t, filepath.Join(dir, "config")+"/tecken/symbols.json", ExpandPath("$XDG_CONFIG_HOME/tecken/symbols.json"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	require.NoError(t, WriteFileAtomic(path, []byte("theme = 'dark'\n"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("theme = 'light'\n"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "theme = 'light'\n", string(data))
	assert.True(t, FileExists(path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
