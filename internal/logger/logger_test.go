// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Tests in this file mutate the global logger and must not run in parallel.

func TestInitializeJSON(t *testing.T) {
	defer Cleanup()

	var buf bytes.Buffer

	require.NoError(t, Initialize(Options{JSON: true, Writer: &buf}))

	Infow("catalog loaded", FieldCount, 3, FieldOrigin, "default")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "catalog loaded", entry["msg"])
	assert.InDelta(t, 3, entry[FieldCount], 0)
	assert.Equal(t, "default", entry[FieldOrigin])
}

func TestInitializeLevelFilters(t *testing.T) {
	defer Cleanup()

	var buf bytes.Buffer

	require.NoError(t, Initialize(Options{Level: "warn", Writer: &buf}))

	Infow("hidden")
	Warnw("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "WARN")
}

func TestInitializeFile(t *testing.T) {
	defer Cleanup()

	path := filepath.Join(t.TempDir(), "state", "tecken.log")

	require.NoError(t, Initialize(Options{File: path}))
	Errorw("copy failed", FieldMethod, "osc52")
	Cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "copy failed")
	assert.Contains(t, string(data), "osc52")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level)

	level, err = ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	restore := Replace(zap.New(core))

	Debugw("Catalog loaded", FieldLoadID, "abc")
	restore()
	Debugw("after restore")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()[FieldLoadID])
}
