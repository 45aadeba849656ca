// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/stringutil"
)

// SearchMode governs which records a search query is evaluated against.
type SearchMode int

// Search modes.
const (
	SearchAllCategories  SearchMode = iota // search the whole catalog
	SearchWithinCategory                   // search only the selected category
)

// String returns the wire name of the mode.
func (m SearchMode) String() string {
	if m == SearchWithinCategory {
		return "category"
	}

	return "all"
}

// Toggle returns the other search mode.
func (m SearchMode) Toggle() SearchMode {
	if m == SearchWithinCategory {
		return SearchAllCategories
	}

	return SearchWithinCategory
}

// ParseSearchMode parses a search mode name.
func ParseSearchMode(value string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "all", "all-categories":
		return SearchAllCategories, nil
	case "category", "within-category":
		return SearchWithinCategory, nil
	default:
		return SearchAllCategories, errors.Wrapf(ErrInvalidSearchMode, "%q", value)
	}
}

// SelectionState is the transient, per-session view selection.
type SelectionState struct {
	Category string     `json:"category"`
	Query    string     `json:"query"`
	Mode     SearchMode `json:"-"`
}

// NewSelectionState returns the default selection: all categories, no query.
func NewSelectionState() SelectionState {
	return SelectionState{
		Category: AllCategory,
		Query:    "",
		Mode:     SearchAllCategories,
	}
}

// SetCategory selects a category. An empty name selects "all".
func (s *SelectionState) SetCategory(name string) {
	if name == "" {
		name = AllCategory
	}

	s.Category = name
}

// SetQuery stores the trimmed, case-folded form of text.
func (s *SelectionState) SetQuery(text string) {
	s.Query = stringutil.FoldQuery(text)
}

// SetMode changes the search mode.
func (s *SelectionState) SetMode(mode SearchMode) {
	s.Mode = mode
}
