// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"strings"

	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/stringutil"
)

// RawRecord is a catalog entry as decoded from a source, before any field is
// validated or defaulted.
type RawRecord struct {
	Symbol   string   `json:"symbol"   yaml:"symbol"`
	Name     string   `json:"name"     yaml:"name"`
	Category string   `json:"category" yaml:"category"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Labels holds the locale dependent placeholder texts.
type Labels struct {
	Locale        string
	UnnamedFormat string // fmt pattern taking the 1-based source position
	OtherCategory string
	AllLabel      string
}

// Supported locales.
const (
	LocaleChinese = "zh"
	LocaleEnglish = "en"
)

// LabelsFor returns the labels of locale. Unknown locales get the Chinese set.
func LabelsFor(locale string) Labels {
	if strings.EqualFold(strings.TrimSpace(locale), LocaleEnglish) {
		return Labels{
			Locale:        LocaleEnglish,
			UnnamedFormat: "Unnamed character %d",
			OtherCategory: "Other",
			AllLabel:      "All characters",
		}
	}

	return Labels{
		Locale:        LocaleChinese,
		UnnamedFormat: "字符%d",
		OtherCategory: "其他",
		AllLabel:      "所有字符",
	}
}

// ValidLocale reports whether locale has a label set.
func ValidLocale(locale string) bool {
	return locale == LocaleChinese || locale == LocaleEnglish
}

// DisplayCategory returns the label shown for a category name.
func (l Labels) DisplayCategory(name string) string {
	if name == domain.AllCategory {
		return l.AllLabel
	}

	return name
}

// Normalize turns raw entries into valid records. Entries without a symbol are
// dropped and counted; a missing name or category gets a placeholder. The
// symbol is the copy payload and is kept byte for byte, so whitespace symbols
// and compatibility characters such as U+212B survive.
func Normalize(raw []RawRecord, labels Labels) (domain.Catalog, int) {
	catalog := make(domain.Catalog, 0, len(raw))
	dropped := 0

	for i, entry := range raw {
		symbol := entry.Symbol
		if symbol == "" {
			dropped++

			continue
		}

		name := stringutil.Clean(entry.Name)
		if name == "" {
			name = fmt.Sprintf(labels.UnnamedFormat, i+1)
		}

		category := strings.TrimSpace(entry.Category)
		if category == "" {
			category = labels.OtherCategory
		}

		catalog = append(catalog, domain.SymbolRecord{
			Symbol:   symbol,
			Name:     name,
			Category: category,
			Keywords: cleanKeywords(entry.Keywords),
		})
	}

	return catalog, dropped
}

func cleanKeywords(keywords []string) []string {
	if len(keywords) == 0 {
		return nil
	}

	out := make([]string, 0, len(keywords))

	for _, keyword := range keywords {
		if keyword = stringutil.Clean(keyword); keyword != "" {
			out = append(out, keyword)
		}
	}

	if len(out) == 0 {
		return nil
	}

	return out
}
