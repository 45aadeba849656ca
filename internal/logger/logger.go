// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package logger provides the process-wide structured logger.
//
// The logger is a no-op until Initialize is called, so library code can log
// unconditionally. The CLI logs to stderr; the TUI logs to a file so that the
// alternate screen is never written to.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for consistent structured logging.
const (
	FieldLoadID   = "load_id"
	FieldSource   = "source"
	FieldOrigin   = "origin"
	FieldCount    = "count"
	FieldDropped  = "dropped"
	FieldMethod   = "method"
	FieldError    = "error"
	FieldPath     = "path"
	FieldCategory = "category"
	FieldQuery    = "query"
	FieldTheme    = "theme"
	FieldPosition = "position"
)

// Options selects where and how log entries are written.
type Options struct {
	JSON   bool      // JSON encoder instead of the console encoder
	Level  string    // debug, info, warn, error
	File   string    // append to this file instead of Writer
	Writer io.Writer // defaults to os.Stderr
}

var (
	mu      sync.Mutex
	current = zap.NewNop()
	sugar   = current.Sugar()
	closer  io.Closer
)

// Initialize replaces the global logger according to opts.
func Initialize(opts Options) error {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	var (
		sink     io.Writer = os.Stderr
		fileSink io.Closer
	)

	if opts.Writer != nil {
		sink = opts.Writer
	}

	if opts.File != "" {
		file, err := openLogFile(opts.File)
		if err != nil {
			return err
		}

		sink = file
		fileSink = file
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(sink), level)

	set(zap.New(core), fileSink)

	return nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zapcore.InfoLevel, nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zapcore.InfoLevel, errors.WithHint(
			errors.Wrapf(err, "invalid log level %q", name),
			"valid levels are debug, info, warn and error",
		)
	}

	return level, nil
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	// #nosec G304 -- path comes from configuration
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	return file, nil
}

// Replace installs l as the global logger and returns a function restoring the previous one.
// Intended for tests.
func Replace(l *zap.Logger) func() {
	mu.Lock()
	previous := current
	mu.Unlock()

	set(l, nil)

	return func() { set(previous, nil) }
}

func set(l *zap.Logger, c io.Closer) {
	mu.Lock()
	defer mu.Unlock()

	if closer != nil {
		_ = current.Sync()
		_ = closer.Close()
	}

	current = l
	sugar = l.Sugar()
	closer = c
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()

	return sugar
}

// Cleanup flushes buffered entries and closes the log file, if any.
func Cleanup() {
	set(zap.NewNop(), nil)
}

// Debugw logs a debug message with structured fields.
func Debugw(msg string, keysAndValues ...interface{}) {
	L().Debugw(msg, keysAndValues...)
}

// Infow logs an info message with structured fields.
func Infow(msg string, keysAndValues ...interface{}) {
	L().Infow(msg, keysAndValues...)
}

// Warnw logs a warning with structured fields.
func Warnw(msg string, keysAndValues ...interface{}) {
	L().Warnw(msg, keysAndValues...)
}

// Errorw logs an error with structured fields.
func Errorw(msg string, keysAndValues ...interface{}) {
	L().Errorw(msg, keysAndValues...)
}
