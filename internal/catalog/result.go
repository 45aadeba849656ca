// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "github.com/janderssonse/tecken/internal/domain"

// Result is the outcome of loading an external catalog: either a usable
// catalog or the reason there is none.
type Result struct {
	catalog domain.Catalog
	err     error
}

// Ok wraps a successfully loaded catalog.
func Ok(c domain.Catalog) Result {
	return Result{catalog: c}
}

// Err wraps a load failure.
func Err(err error) Result {
	return Result{err: err}
}

// IsOk reports whether the result holds a catalog.
func (r Result) IsOk() bool {
	return r.err == nil
}

// Error returns the failure, or nil.
func (r Result) Error() error {
	return r.err
}

// Catalog returns the loaded catalog, or nil on failure.
func (r Result) Catalog() domain.Catalog {
	return r.catalog
}

// Resolve returns the catalog on success and fallback() otherwise.
func (r Result) Resolve(fallback func() domain.Catalog) domain.Catalog {
	if r.err != nil {
		return fallback()
	}

	return r.catalog
}
