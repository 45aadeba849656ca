// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides filesystem locations and file helpers for Tecken.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the directory name used below the XDG base directories.
const AppName = "tecken"

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	return xdgDir(xdgConfigHome, ".config")
}

// GetXDGStateHome returns XDG state directory.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns XDG state directory with custom environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	return xdgDir(xdgStateHome, filepath.Join(".local", "state"))
}

func xdgDir(override, homeRelative string) string {
	// Relative values are invalid per the XDG base directory spec.
	if override != "" && filepath.IsAbs(override) {
		return override
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, homeRelative)
	}

	return ""
}

// ConfigDir returns the Tecken config directory.
func ConfigDir() string {
	return filepath.Join(GetXDGConfigHome(), AppName)
}

// StateDir returns the Tecken state directory (logs).
func StateDir() string {
	return filepath.Join(GetXDGStateHome(), AppName)
}

// ConfigFilePath returns the default location of config.toml.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// PrefsFilePath returns the default location of the persisted preferences.
func PrefsFilePath() string {
	return filepath.Join(ConfigDir(), "prefs.toml")
}

// LogFilePath returns the default log file used by the TUI.
func LogFilePath() string {
	return filepath.Join(StateDir(), AppName+".log")
}

// ExpandPath expands ~ and the XDG variables Tecken documents.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		return GetXDGConfigHome() + after
	}

	if after, found := strings.CutPrefix(path, "$XDG_STATE_HOME"); found {
		return GetXDGStateHome() + after
	}

	return path
}
