// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii upper", input: "ALPHA", want: "alpha"},
		{name: "trimmed", input: "  Pi  ", want: "pi"},
		{name: "greek capital", input: "Ω", want: "ω"},
		{name: "empty", input: "   ", want: ""},
		{name: "cjk untouched", input: "数学", want: "数学"},
		{name: "decomposed composes", input: " E\u0301 ", want: "\u00e9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FoldQuery(tt.input))
		})
	}
}

func TestContainsFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsFold("Alpha (大写)", "alpha"))
	assert.True(t, ContainsFold("OMEGA", "meg"))
	assert.False(t, ContainsFold("Beta", "alpha"))
	assert.True(t, ContainsFold("anything", ""))
	assert.True(t, ContainsFold("caf\u00e9", FoldQuery("cafe\u0301")))
	assert.True(t, ContainsFold("cafe\u0301", FoldQuery("CAF\u00c9")))
	assert.False(t, ContainsFold("cafe", FoldQuery("caf\u00e9")))
}

func TestContainsAnyFold(t *testing.T) {
	t.Parallel()

	assert.True(t, ContainsAnyFold([]string{"circle", "PI"}, "pi"))
	assert.False(t, ContainsAnyFold([]string{"circle"}, "pi"))
	assert.False(t, ContainsAnyFold(nil, "pi"))
}

func TestClean(t *testing.T) {
	t.Parallel()

	// "e" followed by a combining acute accent composes to "é".
	assert.Equal(t, "\u00e9", Clean(" e\u0301 "))
	assert.Equal(t, "π", Clean("π"))
}
