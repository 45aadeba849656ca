// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain contains the core types and rules of the symbol picker.
package domain

// AllCategory is the synthetic category that places no restriction on the catalog.
const AllCategory = "all"

// SymbolRecord is one catalog entry. The symbol doubles as the copy payload.
type SymbolRecord struct {
	Symbol   string   `json:"symbol"             toml:"symbol"             yaml:"symbol"`
	Name     string   `json:"name"               toml:"name"               yaml:"name"`
	Category string   `json:"category"           toml:"category"           yaml:"category"`
	Keywords []string `json:"keywords,omitempty" toml:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Key returns the de-duplication key used when merging catalogs.
func (r SymbolRecord) Key() RecordKey {
	return RecordKey{Symbol: r.Symbol, Name: r.Name}
}

// RecordKey identifies "the same" entry across two catalogs.
type RecordKey struct {
	Symbol string
	Name   string
}

// Catalog is an ordered collection of symbol records in load-source order.
type Catalog []SymbolRecord

// Clone returns a copy of the catalog that shares no backing array with c.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return Catalog{}
	}

	out := make(Catalog, len(c))
	copy(out, c)

	return out
}

// CategoryCount pairs a category with the number of records in it.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryIndex lists the categories of a catalog, "all" first, then the real
// categories in order of first appearance.
type CategoryIndex []CategoryCount

// BuildCategoryIndex derives the category index of c.
func BuildCategoryIndex(c Catalog) CategoryIndex {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, record := range c {
		if _, seen := counts[record.Category]; !seen {
			order = append(order, record.Category)
		}

		counts[record.Category]++
	}

	index := make(CategoryIndex, 0, len(order)+1)
	index = append(index, CategoryCount{Name: AllCategory, Count: len(c)})

	for _, name := range order {
		index = append(index, CategoryCount{Name: name, Count: counts[name]})
	}

	return index
}

// Has reports whether name is part of the index.
func (idx CategoryIndex) Has(name string) bool {
	return idx.Position(name) >= 0
}

// Count returns the record count of name, or 0 when absent.
func (idx CategoryIndex) Count(name string) int {
	if pos := idx.Position(name); pos >= 0 {
		return idx[pos].Count
	}

	return 0
}

// Position returns the index of name, or -1.
func (idx CategoryIndex) Position(name string) int {
	for i, entry := range idx {
		if entry.Name == name {
			return i
		}
	}

	return -1
}

// Names returns the category names in index order.
func (idx CategoryIndex) Names() []string {
	names := make([]string, 0, len(idx))
	for _, entry := range idx {
		names = append(names, entry.Name)
	}

	return names
}

// Without returns the index with the named category removed. "all" is never removed
// and its count is left untouched, since the records still belong to the catalog.
func (idx CategoryIndex) Without(name string) CategoryIndex {
	if name == AllCategory {
		return idx
	}

	out := make(CategoryIndex, 0, len(idx))
	for _, entry := range idx {
		if entry.Name != name {
			out = append(out, entry)
		}
	}

	return out
}
