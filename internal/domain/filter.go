// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "github.com/janderssonse/tecken/internal/stringutil"

// Filter derives the visible records of c under s. The result is freshly
// allocated and keeps catalog insertion order.
func Filter(c Catalog, s SelectionState) []SymbolRecord {
	byCategory := filterCategory(c, s.Category)

	if s.Query == "" {
		return byCategory
	}

	universe := byCategory
	if s.Mode == SearchAllCategories {
		universe = c
	}

	// Query is folded on write, but callers may build a SelectionState by hand.
	query := stringutil.FoldQuery(s.Query)
	if query == "" {
		return byCategory
	}

	result := make([]SymbolRecord, 0, len(universe))

	for _, record := range universe {
		if Matches(record, query) {
			result = append(result, record)
		}
	}

	return result
}

// Matches reports whether record matches an already folded, non-empty query.
func Matches(record SymbolRecord, foldedQuery string) bool {
	return stringutil.ContainsFold(record.Name, foldedQuery) ||
		stringutil.ContainsFold(record.Symbol, foldedQuery) ||
		stringutil.ContainsAnyFold(record.Keywords, foldedQuery)
}

func filterCategory(c Catalog, category string) []SymbolRecord {
	result := make([]SymbolRecord, 0, len(c))

	if category == AllCategory || category == "" {
		return append(result, c...)
	}

	for _, record := range c {
		if record.Category == category {
			result = append(result, record)
		}
	}

	return result
}
