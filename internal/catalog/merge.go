// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "github.com/janderssonse/tecken/internal/domain"

// Merge combines an external catalog with the defaults. External entries keep
// their order and come first; defaults follow unless the external catalog
// already has an entry with the same symbol and name.
func Merge(external, defaults domain.Catalog) domain.Catalog {
	seen := make(map[domain.RecordKey]struct{}, len(external))
	merged := make(domain.Catalog, 0, len(external)+len(defaults))

	for _, record := range external {
		seen[record.Key()] = struct{}{}
		merged = append(merged, record)
	}

	for _, record := range defaults {
		if _, dup := seen[record.Key()]; dup {
			continue
		}

		merged = append(merged, record)
	}

	return merged
}
