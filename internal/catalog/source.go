// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/adapters/network"
	"github.com/janderssonse/tecken/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a remote fetch when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// HTTPSource fetches a catalog over HTTP(S).
type HTTPSource struct {
	url     string
	client  *network.HTTPClient
	limiter *rate.Limiter
}

// NewHTTPSource creates a source for url. Consecutive fetches are spaced at
// least one second apart so that a user hammering retry cannot flood the server.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPSource{
		url:     url,
		client:  network.NewHTTPClient(timeout),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Fetch implements domain.CatalogSource.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, domain.Format, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, "", errors.Mark(errors.Wrap(err, "rate limited"), domain.ErrSourceUnavailable)
	}

	body, contentType, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, "", errors.WithHint(
			errors.Mark(errors.Wrapf(err, "fetch %s", s.url), domain.ErrSourceUnavailable),
			"check the catalog URL and your network connection",
		)
	}

	format := domain.FormatFromContentType(contentType)
	if domain.FormatFromPath(s.url) == domain.FormatYAML {
		format = domain.FormatYAML
	}

	return body, format, nil
}

// Describe implements domain.CatalogSource.
func (s *HTTPSource) Describe() string {
	return s.url
}

// FileSource reads a catalog from a local JSON or YAML file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file path being read.
func (s *FileSource) Path() string {
	return s.path
}

// Fetch implements domain.CatalogSource.
func (s *FileSource) Fetch(_ context.Context) ([]byte, domain.Format, error) {
	// #nosec G304 -- path is user configuration
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, "", errors.Mark(errors.Wrapf(err, "read %s", s.path), domain.ErrSourceUnavailable)
	}

	return data, domain.FormatFromPath(s.path), nil
}

// Describe implements domain.CatalogSource.
func (s *FileSource) Describe() string {
	return s.path
}

// NewSource picks a source for ref: URLs are fetched over HTTP, anything else
// is a file path. An empty ref means no external source and returns nil.
func NewSource(ref string, timeout time.Duration) domain.CatalogSource {
	ref = strings.TrimSpace(ref)

	switch {
	case ref == "":
		return nil
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return NewHTTPSource(ref, timeout)
	default:
		return NewFileSource(expandHome(ref))
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
