// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the picker screen and its overlays using Bubble Tea.
package models

import (
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/domain"
)

// GoodbyeMessage is shown when the program exits.
const GoodbyeMessage = "Goodbye!\n"

// CatalogLoadedMsg carries a finished catalog load into the update loop.
type CatalogLoadedMsg struct {
	Snapshot *catalog.Snapshot
}

// CopiedMsg carries the outcome of one copy. The clipboard notifier sends it.
type CopiedMsg struct {
	Result domain.CopyResult
}

// ThemeChangedMsg reports a persisted theme change.
type ThemeChangedMsg struct {
	Theme domain.Theme
	Err   error
}

// AboutToggleMsg asks the root model to show or hide the about overlay.
type AboutToggleMsg struct{}

// searchTickMsg fires after the debounce delay. Only the tick whose seq is
// still current applies the query.
type searchTickMsg struct {
	seq int
}

// clearNotificationMsg hides the notification it was scheduled for.
type clearNotificationMsg struct {
	seq int
}

// clearCopiedMsg removes the copied marker it was scheduled for.
type clearCopiedMsg struct {
	seq int
}
