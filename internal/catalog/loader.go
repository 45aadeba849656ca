// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
)

// Origin records where the records of a snapshot came from.
type Origin string

// Snapshot origins.
const (
	OriginDefault  Origin = "default"
	OriginExternal Origin = "external"
	OriginMerged   Origin = "merged"
)

// Snapshot is one immutable load outcome. Readers share snapshots and must not
// modify them.
type Snapshot struct {
	Catalog  domain.Catalog
	Index    domain.CategoryIndex
	Origin   Origin
	Source   string
	Err      error // external load failure that caused a fallback, if any
	Dropped  int
	LoadID   string
	LoadedAt time.Time
}

func newSnapshot(c domain.Catalog, origin Origin) *Snapshot {
	return &Snapshot{
		Catalog:  c,
		Index:    domain.BuildCategoryIndex(c),
		Origin:   origin,
		LoadID:   uuid.NewString(),
		LoadedAt: time.Now(),
	}
}

// DefaultSnapshot wraps the bundled catalog.
func DefaultSnapshot() *Snapshot {
	return newSnapshot(Default(), OriginDefault)
}

// Report summarizes the snapshot.
func (s *Snapshot) Report() domain.LoadReport {
	report := domain.LoadReport{
		LoadID:   s.LoadID,
		Source:   s.Source,
		Origin:   string(s.Origin),
		Usable:   len(s.Catalog),
		Dropped:  s.Dropped,
		LoadedAt: s.LoadedAt,
	}

	if s.Err != nil {
		report.Error = s.Err.Error()
	}

	return report
}

// LoaderOptions configures a Loader.
type LoaderOptions struct {
	Source domain.CatalogSource // nil means bundled defaults only
	Merge  bool                 // merge a successful external load with the defaults
	Labels Labels
}

// Loader produces snapshots from an optional external source.
type Loader struct {
	source domain.CatalogSource
	merge  bool
	labels Labels
}

// NewLoader creates a loader.
func NewLoader(opts LoaderOptions) *Loader {
	labels := opts.Labels
	if labels.UnnamedFormat == "" {
		labels = LabelsFor(LocaleChinese)
	}

	return &Loader{
		source: opts.Source,
		merge:  opts.Merge,
		labels: labels,
	}
}

// Source returns the configured external source, or nil.
func (l *Loader) Source() domain.CatalogSource {
	return l.source
}

// Fetch loads the external source without any fallback. The dropped count is
// the number of entries discarded during normalization.
func (l *Loader) Fetch(ctx context.Context) (Result, int) {
	if l.source == nil {
		return Err(errors.WithHint(
			errors.Wrap(domain.ErrSourceUnavailable, "no catalog source configured"),
			"pass --source or set catalog.source in the config file",
		)), 0
	}

	data, format, err := l.source.Fetch(ctx)
	if err != nil {
		return Err(errors.Mark(err, domain.ErrLoadFailed)), 0
	}

	raw, err := Decode(data, format)
	if err != nil {
		return Err(errors.Mark(errors.Wrapf(err, "decode %s", l.source.Describe()), domain.ErrLoadFailed)), 0
	}

	catalog, dropped := Normalize(raw, l.labels)
	if len(catalog) == 0 {
		return Err(errors.Mark(
			errors.Wrapf(domain.ErrEmptyCatalog, "%s (%d entries dropped)", l.source.Describe(), dropped),
			domain.ErrLoadFailed,
		)), dropped
	}

	return Ok(catalog), dropped
}

// Load never fails: when the external source is missing or broken the
// snapshot holds the bundled defaults and records the failure in Err.
func (l *Loader) Load(ctx context.Context) *Snapshot {
	if l.source == nil {
		snapshot := DefaultSnapshot()
		logger.Debugw("Catalog loaded", logger.FieldLoadID, snapshot.LoadID,
			logger.FieldOrigin, snapshot.Origin, logger.FieldCount, len(snapshot.Catalog))

		return snapshot
	}

	result, dropped := l.Fetch(ctx)

	origin := OriginExternal
	catalog := result.Resolve(Default)

	switch {
	case !result.IsOk():
		origin = OriginDefault
	case l.merge:
		origin = OriginMerged
		catalog = Merge(catalog, Default())
	}

	snapshot := newSnapshot(catalog, origin)
	snapshot.Source = l.source.Describe()
	snapshot.Err = result.Error()
	snapshot.Dropped = dropped

	if snapshot.Err != nil {
		logger.Warnw("Catalog source failed, using bundled defaults",
			logger.FieldLoadID, snapshot.LoadID,
			logger.FieldSource, snapshot.Source,
			logger.FieldError, snapshot.Err)
	} else {
		logger.Infow("Catalog loaded",
			logger.FieldLoadID, snapshot.LoadID,
			logger.FieldSource, snapshot.Source,
			logger.FieldOrigin, snapshot.Origin,
			logger.FieldCount, len(snapshot.Catalog),
			logger.FieldDropped, snapshot.Dropped)
	}

	return snapshot
}

// Reload loads again and installs the result in store. Concurrent reloads
// resolve as last write wins.
func (l *Loader) Reload(ctx context.Context, store *Store) *Snapshot {
	snapshot := l.Load(ctx)
	store.Replace(snapshot)

	return snapshot
}
