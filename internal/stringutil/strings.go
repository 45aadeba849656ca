// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string utility functions for Tecken.
package stringutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the Unicode case-folded NFC form of text, so canonically
// equivalent spellings compare equal.
// A new Caser is created per call since Casers are not safe for concurrent use.
func Fold(text string) string {
	return cases.Fold().String(norm.NFC.String(text))
}

// FoldQuery trims, NFC-normalizes and case-folds a search query.
func FoldQuery(query string) string {
	return Fold(strings.TrimSpace(query))
}

// ContainsFold reports whether text contains the already folded substr, ignoring case.
func ContainsFold(text, foldedSubstr string) bool {
	return strings.Contains(Fold(text), foldedSubstr)
}

// ContainsAnyFold reports whether any of texts contains the already folded substr.
func ContainsAnyFold(texts []string, foldedSubstr string) bool {
	for _, text := range texts {
		if ContainsFold(text, foldedSubstr) {
			return true
		}
	}

	return false
}

// Clean trims surrounding whitespace and applies NFC normalization.
func Clean(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
