// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "sync/atomic"

// Store holds the current snapshot. Swaps are atomic, so a reader sees either
// the old or the new catalog, never a mix.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store holding initial, or the bundled defaults when initial is nil.
func NewStore(initial *Snapshot) *Store {
	if initial == nil {
		initial = DefaultSnapshot()
	}

	store := &Store{}
	store.current.Store(initial)

	return store
}

// Current returns the installed snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// Replace installs snapshot. Nil is ignored.
func (s *Store) Replace(snapshot *Snapshot) {
	if snapshot != nil {
		s.current.Store(snapshot)
	}
}
