// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package application_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/application"
	"github.com/janderssonse/tecken/internal/catalog"
	"github.com/janderssonse/tecken/internal/clipboard"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
	{"symbol":"+","name":"Plus","category":"Math"},
	{"symbol":"π","name":"Pi","category":"Math"},
	{"symbol":"π","name":"Pi","category":"Greek"},
	{"symbol":"★"}
]`

func newService(t *testing.T, source domain.CatalogSource, opts application.PickerOptions) (*application.PickerService, *testutil.MockClipboardWriter, *testutil.MockNotifier) {
	t.Helper()

	writer := &testutil.MockClipboardWriter{}
	notifier := &testutil.MockNotifier{}

	loader := catalog.NewLoader(catalog.LoaderOptions{Source: source, Labels: catalog.LabelsFor(catalog.LocaleEnglish)})
	store := catalog.NewStore(loader.Load(context.Background()))
	copier := clipboard.NewCopier(notifier, writer)

	if opts.Labels.UnnamedFormat == "" {
		opts.Labels = catalog.LabelsFor(catalog.LocaleEnglish)
	}

	return application.NewPickerService(store, loader, copier, opts), writer, notifier
}

func visibleSymbols(service *application.PickerService) []string {
	out := []string{}
	for _, record := range service.Visible() {
		out = append(out, record.Symbol+"/"+record.Category)
	}

	return out
}

func TestPickerScenarioSearchAllCategories(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})

	require.NoError(t, service.OnCategorySelected("Math"))
	service.OnSearchChanged("pi")
	service.OnSearchModeChanged(domain.SearchAllCategories)

	assert.Equal(t, []string{"π/Math", "π/Greek"}, visibleSymbols(service))
}

func TestPickerScenarioSearchWithinCategory(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})

	require.NoError(t, service.OnCategorySelected("Math"))
	service.OnSearchChanged("pi")
	service.OnSearchModeChanged(domain.SearchWithinCategory)

	assert.Equal(t, []string{"π/Math"}, visibleSymbols(service))
}

func TestPickerCategories(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})
	assert.Equal(t, []string{"all", "Math", "Greek", "Other"}, service.Categories().Names())
	assert.Equal(t, 4, service.Categories().Count(domain.AllCategory))

	hidden, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{HideOtherCategory: true})
	assert.Equal(t, []string{"all", "Math", "Greek"}, hidden.Categories().Names())
	assert.Len(t, hidden.Visible(), 4, "hidden category records stay reachable under all")
}

func TestPickerUnknownCategory(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})
	require.NoError(t, service.OnCategorySelected("Greek"))

	err := service.OnCategorySelected("Mth")
	require.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Contains(t, errors.GetAllHints(err), "did you mean Math?")
	assert.Equal(t, "Greek", service.Selection().Category)

	require.NoError(t, service.OnCategorySelected(""))
	assert.Equal(t, domain.AllCategory, service.Selection().Category)
}

func TestPickerCycleCategory(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})

	assert.Equal(t, "Math", service.CycleCategory(1))
	assert.Equal(t, "Greek", service.CycleCategory(1))
	assert.Equal(t, "Math", service.CycleCategory(-1))
	assert.Equal(t, "Other", service.CycleCategory(-2))
	assert.Equal(t, domain.AllCategory, service.CycleCategory(1))
}

func TestPickerCopyNotifiesOnce(t *testing.T) {
	t.Parallel()

	service, writer, notifier := newService(t, nil, application.PickerOptions{})

	writer.On("WriteText", "π").Return(nil).Once()
	writer.On("Name").Return("fake")
	notifier.On("Notify", mock.MatchedBy(func(r domain.CopyResult) bool {
		return r.OK && r.Symbol == "π" && r.Method == "fake"
	})).Once()

	result := service.Copy("π")

	assert.True(t, result.OK)
	writer.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestPickerCopyFailureNotifiesOnce(t *testing.T) {
	t.Parallel()

	service, writer, notifier := newService(t, nil, application.PickerOptions{})

	writer.On("WriteText", "π").Return(domain.ErrClipboardUnavailable).Once()
	writer.On("Name").Return("fake")
	notifier.On("Notify", mock.MatchedBy(func(r domain.CopyResult) bool { return !r.OK })).Once()

	result := service.Copy("π")

	assert.False(t, result.OK)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestPickerReloadKeepsMissingCategory(t *testing.T) {
	t.Parallel()

	source := &testutil.MockCatalogSource{}
	source.On("Describe").Return("mock")
	source.On("Fetch", mock.Anything).Return([]byte(sampleJSON), domain.FormatJSON, nil).Once()
	source.On("Fetch", mock.Anything).Return([]byte(`[{"symbol":"✓","category":"Marks"}]`), domain.FormatJSON, nil).Once()

	service, _, _ := newService(t, source, application.PickerOptions{})
	require.NoError(t, service.OnCategorySelected("Greek"))

	snapshot := service.Reload(context.Background())

	assert.Same(t, snapshot, service.Snapshot())
	assert.Equal(t, "Greek", service.Selection().Category)
	assert.Empty(t, service.Visible())
	assert.Equal(t, []string{"all", "Marks"}, service.Categories().Names())
	source.AssertExpectations(t)
}

func TestPickerReloadFallsBackOnFailure(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Err: errors.Mark(errors.New("offline"), domain.ErrSourceUnavailable)}, application.PickerOptions{})

	snapshot := service.Snapshot()
	assert.Equal(t, catalog.OriginDefault, snapshot.Origin)
	require.ErrorIs(t, snapshot.Err, domain.ErrSourceUnavailable)
	assert.Equal(t, catalog.Default(), snapshot.Catalog)
}

func TestPickerResolve(t *testing.T) {
	t.Parallel()

	service, _, _ := newService(t, testutil.StaticSource{Data: sampleJSON}, application.PickerOptions{})

	record, err := service.Resolve("π")
	require.NoError(t, err)
	assert.Equal(t, "Math", record.Category)

	record, err = service.Resolve("plus")
	require.NoError(t, err)
	assert.Equal(t, "+", record.Symbol)

	require.NoError(t, service.OnCategorySelected("Greek"))
	service.OnSearchModeChanged(domain.SearchWithinCategory)

	record, err = service.Resolve("π")
	require.NoError(t, err)
	assert.Equal(t, "Greek", record.Category)

	_, err = service.Resolve("plus")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPickerResolveWhitespaceSymbol(t *testing.T) {
	t.Parallel()

	source := testutil.StaticSource{Data: `[{"symbol":"+","name":"Plus"},{"symbol":"\u00a0","name":"No-break space"}]`}
	service, writer, notifier := newService(t, source, application.PickerOptions{})

	record, err := service.Resolve("\u00a0")
	require.NoError(t, err)
	assert.Equal(t, "No-break space", record.Name)

	writer.On("WriteText", "\u00a0").Return(nil).Once()
	writer.On("Name").Return("fake")
	notifier.On("Notify", mock.Anything).Return()

	result := service.Copy(record.Symbol)
	require.True(t, result.OK)
	writer.AssertExpectations(t)

	_, err = service.Resolve(" ")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
