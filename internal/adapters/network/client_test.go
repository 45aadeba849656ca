// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	t.Parallel()

	client := NewHTTPClient(5 * time.Second)

	assert.Equal(t, 5*time.Second, client.Timeout())

	transport, ok := client.client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.NotNil(t, transport.Proxy)
}

func TestGet(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte("- {symbol: x}"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("a", MaxBodySize+10)))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client := NewHTTPClient(time.Second)

	body, contentType, err := client.Get(context.Background(), server.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "- {symbol: x}", string(body))
	assert.Equal(t, "application/yaml", contentType)

	_, _, err = client.Get(context.Background(), server.URL+"/missing")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Status)

	_, _, err = client.Get(context.Background(), server.URL+"/big")
	require.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestGetHonoursContext(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err := NewHTTPClient(time.Minute).Get(ctx, server.URL)
	require.Error(t, err)
}
