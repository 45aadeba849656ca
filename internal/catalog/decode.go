// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/domain"
	"github.com/janderssonse/tecken/internal/logger"
	"gopkg.in/yaml.v3"
)

// Decode parses a catalog payload. The payload must be a list. Each element
// is decoded on its own; an element that is not a valid record becomes an
// empty RawRecord, so Normalize drops and counts it and later positions keep
// their index.
func Decode(data []byte, format domain.Format) ([]RawRecord, error) {
	if format == domain.FormatYAML {
		return decodeYAML(data)
	}

	return decodeJSON(data)
}

func decodeJSON(data []byte) ([]RawRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.WithHint(
			errors.Wrap(domain.ErrInvalidShape, "json payload is not an array"),
			"wrap the records in a top-level [ ... ] array",
		)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode json catalog"), domain.ErrInvalidShape)
	}

	raw := make([]RawRecord, len(items))

	for i, item := range items {
		if err := json.Unmarshal(item, &raw[i]); err != nil {
			logger.Debugw("Skipping malformed catalog entry", logger.FieldPosition, i+1, logger.FieldError, err)

			raw[i] = RawRecord{}
		}
	}

	return raw, nil
}

func decodeYAML(data []byte) ([]RawRecord, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode yaml catalog"), domain.ErrInvalidShape)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.SequenceNode {
		return nil, errors.WithHint(
			errors.Wrap(domain.ErrInvalidShape, "yaml payload is not a sequence"),
			"the document must be a top-level list of records",
		)
	}

	items := doc.Content[0].Content
	raw := make([]RawRecord, len(items))

	for i, item := range items {
		if item.Kind != yaml.MappingNode {
			logger.Debugw("Skipping catalog entry that is not a mapping", logger.FieldPosition, i+1)

			continue
		}

		if err := item.Decode(&raw[i]); err != nil {
			logger.Debugw("Skipping malformed catalog entry", logger.FieldPosition, i+1, logger.FieldError, err)

			raw[i] = RawRecord{}
		}
	}

	return raw, nil
}
