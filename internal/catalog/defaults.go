// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	_ "embed"
	"sync"

	"github.com/janderssonse/tecken/internal/domain"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var bundled = sync.OnceValue(func() domain.Catalog {
	raw, err := Decode(defaultsYAML, domain.FormatYAML)
	if err != nil {
		panic("catalog: bundled defaults are malformed: " + err.Error())
	}

	catalog, _ := Normalize(raw, LabelsFor(LocaleChinese))

	return catalog
})

// Default returns the catalog compiled into the binary. Each call returns a fresh copy.
func Default() domain.Catalog {
	return bundled().Clone()
}
