// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package application contains the use cases behind the TUI and CLI.
package application

import (
	"context"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"github.com/sahilm/fuzzy"
)

// Copier copies text and reports the outcome. Implemented by clipboard.Copier.
type Copier interface {
	Copy(text string) domain.CopyResult
}

// PickerOptions configures a PickerService.
type PickerOptions struct {
	Labels            catalog.Labels
	HideOtherCategory bool // drop the placeholder category from Categories
}

// PickerService owns the catalog, the current selection and the copy path of
// one picker session.
type PickerService struct {
	store  *catalog.Store
	loader *catalog.Loader
	copier Copier
	opts   PickerOptions

	mu        sync.RWMutex
	selection domain.SelectionState
}

// NewPickerService creates a picker service. The store initially holds
// whatever snapshot the caller put in it, typically the bundled defaults.
func NewPickerService(store *catalog.Store, loader *catalog.Loader, copier Copier, opts PickerOptions) *PickerService {
	if opts.Labels.UnnamedFormat == "" {
		opts.Labels = catalog.LabelsFor(catalog.LocaleChinese)
	}

	return &PickerService{
		store:     store,
		loader:    loader,
		copier:    copier,
		opts:      opts,
		selection: domain.NewSelectionState(),
	}
}

// Labels returns the locale labels in use.
func (s *PickerService) Labels() catalog.Labels {
	return s.opts.Labels
}

// Snapshot returns the current catalog snapshot.
func (s *PickerService) Snapshot() *catalog.Snapshot {
	return s.store.Current()
}

// Selection returns a copy of the current selection.
func (s *PickerService) Selection() domain.SelectionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.selection
}

// Categories returns the category index shown to the user.
func (s *PickerService) Categories() domain.CategoryIndex {
	index := s.store.Current().Index
	if s.opts.HideOtherCategory {
		return index.Without(s.opts.Labels.OtherCategory)
	}

	return index
}

// Visible returns the records matching the current selection.
func (s *PickerService) Visible() []domain.SymbolRecord {
	return domain.Filter(s.store.Current().Catalog, s.Selection())
}

// OnCategorySelected selects a category. Unknown categories are rejected and
// leave the selection unchanged.
func (s *PickerService) OnCategorySelected(id string) error {
	if id == "" {
		id = domain.AllCategory
	}

	categories := s.Categories()
	if !categories.Has(id) {
		err := errors.Wrapf(domain.ErrUnknownCategory, "%q", id)
		if suggestion := closestCategory(id, categories.Names()); suggestion != "" {
			err = errors.WithHint(err, "did you mean "+suggestion+"?")
		}

		return err
	}

	s.mu.Lock()
	s.selection.SetCategory(id)
	s.mu.Unlock()

	logger.Debugw("Category selected", logger.FieldCategory, id)

	return nil
}

// OnSearchChanged sets the search query.
func (s *PickerService) OnSearchChanged(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SetQuery(text)
}

// OnSearchModeChanged sets the search mode.
func (s *PickerService) OnSearchModeChanged(mode domain.SearchMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.SetMode(mode)
}

// CycleCategory moves the selection delta steps through the category index,
// wrapping around at either end, and returns the new category.
func (s *PickerService) CycleCategory(delta int) string {
	names := s.Categories().Names()

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := 0

	for i, name := range names {
		if name == s.selection.Category {
			pos = i

			break
		}
	}

	next := ((pos+delta)%len(names) + len(names)) % len(names)
	s.selection.SetCategory(names[next])

	return names[next]
}

// Reload fetches the catalog again and installs it. The selection is kept even
// when its category no longer exists; the view is then simply empty.
func (s *PickerService) Reload(ctx context.Context) *catalog.Snapshot {
	return s.loader.Reload(ctx, s.store)
}

// Install swaps in a snapshot produced elsewhere, e.g. by an async load.
func (s *PickerService) Install(snapshot *catalog.Snapshot) {
	s.store.Replace(snapshot)
}

// Loader returns the loader used by Reload.
func (s *PickerService) Loader() *catalog.Loader {
	return s.loader
}

// Copy puts symbol on the clipboard. The copier notifies exactly once.
func (s *PickerService) Copy(symbol string) domain.CopyResult {
	return s.copier.Copy(symbol)
}

// Resolve finds the record a user most likely means by arg: an exact symbol
// in the selected category first, otherwise the first record matching arg as
// a query under the current selection. Whitespace symbols only resolve by
// exact match.
func (s *PickerService) Resolve(arg string) (domain.SymbolRecord, error) {
	selection := s.Selection()

	byCategory := selection
	byCategory.Query = ""

	for _, record := range domain.Filter(s.store.Current().Catalog, byCategory) {
		if record.Symbol == arg {
			return record, nil
		}
	}

	if strings.TrimSpace(arg) == "" {
		return domain.SymbolRecord{}, errors.Wrap(domain.ErrNotFound, "no whitespace symbol matches the argument")
	}

	selection.SetQuery(arg)

	if matches := domain.Filter(s.store.Current().Catalog, selection); len(matches) > 0 {
		return matches[0], nil
	}

	return domain.SymbolRecord{}, errors.WithHint(
		errors.Wrapf(domain.ErrNotFound, "no symbol matches %q", arg),
		"try 'tecken list --query <text>' to browse matches",
	)
}

func closestCategory(input string, names []string) string {
	matches := fuzzy.Find(input, names)
	if len(matches) == 0 {
		return ""
	}

	return matches[0].Str
}
