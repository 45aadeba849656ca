// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package clipboard copies symbols to the system clipboard, falling back to
// the OSC 52 terminal escape when no system clipboard is reachable.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"golang.org/x/term"
)

// Method names reported in copy results.
const (
	MethodSystem = "system"
	MethodOSC52  = "osc52"
)

// SystemWriter writes to the desktop clipboard (xclip, xsel, wl-copy, pbcopy, ...).
type SystemWriter struct{}

// Name implements domain.ClipboardWriter.
func (SystemWriter) Name() string { return MethodSystem }

// WriteText implements domain.ClipboardWriter.
func (SystemWriter) WriteText(text string) error {
	if clipboard.Unsupported {
		return errors.Wrap(domain.ErrClipboardUnavailable, "no clipboard utility found")
	}

	if err := clipboard.WriteAll(text); err != nil {
		return errors.Mark(errors.Wrap(err, "system clipboard"), domain.ErrClipboardUnavailable)
	}

	return nil
}

// OSC52Writer asks the terminal emulator to set the clipboard.
type OSC52Writer struct {
	out  io.Writer
	open func() (io.WriteCloser, error)
	tmux bool
}

// NewOSC52Writer writes escapes to out, wrapped for tmux when tmux is set.
func NewOSC52Writer(out io.Writer, tmux bool) *OSC52Writer {
	return &OSC52Writer{out: out, tmux: tmux}
}

// NewTerminalOSC52Writer targets the controlling terminal, or stderr when
// stderr is a terminal, and detects tmux from the environment. The terminal
// is opened for each write and closed afterwards.
func NewTerminalOSC52Writer() *OSC52Writer {
	return &OSC52Writer{
		open: func() (io.WriteCloser, error) { return terminalOutput(openTTY, os.Stderr) },
		tmux: os.Getenv("TMUX") != "",
	}
}

func openTTY() (*os.File, error) {
	// #nosec G304 -- fixed device path
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// terminalOutput picks where escapes go. A redirected stderr is never used:
// the escape would land in a log file and the copy would be reported as done.
func terminalOutput(tty func() (*os.File, error), stderr *os.File) (io.WriteCloser, error) {
	if file, err := tty(); err == nil {
		return file, nil
	}

	if stderr != nil && term.IsTerminal(int(stderr.Fd())) {
		return nopCloser{stderr}, nil
	}

	return nil, errors.Wrap(domain.ErrClipboardUnavailable, "no terminal for osc52")
}

// Name implements domain.ClipboardWriter.
func (w *OSC52Writer) Name() string { return MethodOSC52 }

// WriteText implements domain.ClipboardWriter.
func (w *OSC52Writer) WriteText(text string) error {
	out := w.out

	if w.open != nil {
		target, err := w.open()
		if err != nil {
			return err
		}

		defer func() { _ = target.Close() }()

		out = target
	}

	if out == nil {
		return errors.Wrap(domain.ErrClipboardUnavailable, "no terminal for osc52")
	}

	seq := osc52.New(text)
	if w.tmux {
		seq = seq.Tmux()
	}

	if _, err := seq.WriteTo(out); err != nil {
		return errors.Mark(errors.Wrap(err, "write osc52 sequence"), domain.ErrClipboardUnavailable)
	}

	return nil
}

// Copier tries each writer in order and reports the outcome exactly once.
type Copier struct {
	writers  []domain.ClipboardWriter
	notifier domain.Notifier
}

// NewCopier creates a copier using writers in order of preference.
func NewCopier(notifier domain.Notifier, writers ...domain.ClipboardWriter) *Copier {
	return &Copier{writers: writers, notifier: notifier}
}

// NewDefaultCopier uses the system clipboard with an OSC 52 fallback.
func NewDefaultCopier(notifier domain.Notifier) *Copier {
	return NewCopier(notifier, SystemWriter{}, NewTerminalOSC52Writer())
}

// SetNotifier replaces the notifier. Not safe for use concurrently with Copy.
func (c *Copier) SetNotifier(notifier domain.Notifier) {
	c.notifier = notifier
}

// Copy writes text to the first writer that accepts it. It never returns an
// error; failures are reported through the result and the notifier.
func (c *Copier) Copy(text string) domain.CopyResult {
	result := c.copy(text)

	if result.OK {
		logger.Debugw("Copied symbol", logger.FieldMethod, result.Method)
	} else {
		result.Message = result.Err.Error()
		logger.Warnw("Copy failed", logger.FieldError, result.Err)
	}

	if c.notifier != nil {
		c.notifier.Notify(result)
	}

	return result
}

func (c *Copier) copy(text string) domain.CopyResult {
	result := domain.CopyResult{Symbol: text}

	if text == "" {
		result.Err = errors.Wrap(domain.ErrCopyFailed, "nothing to copy")

		return result
	}

	var lastErr error

	for _, writer := range c.writers {
		err := writer.WriteText(text)
		if err == nil {
			result.OK = true
			result.Method = writer.Name()

			return result
		}

		logger.Debugw("Clipboard writer failed", logger.FieldMethod, writer.Name(), logger.FieldError, err)
		lastErr = err
	}

	if lastErr == nil {
		result.Err = errors.Wrap(domain.ErrCopyFailed, "no clipboard writer configured")

		return result
	}

	result.Err = errors.WithHint(
		errors.Mark(errors.Wrap(lastErr, "copy failed"), domain.ErrCopyFailed),
		"install xclip, xsel or wl-clipboard, or use a terminal with OSC 52 support",
	)

	return result
}
