// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "time"

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data interface{}) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Progress outputs progress information for long-running operations
	Progress(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// ListResult represents the records visible under a selection.
type ListResult struct {
	Category  string         `json:"category"`
	Query     string         `json:"query,omitempty"`
	Mode      string         `json:"mode"`
	Symbols   []SymbolRecord `json:"symbols"`
	Total     int            `json:"total"`
	Origin    string         `json:"origin"`
	Timestamp time.Time      `json:"timestamp"`
}

// CategoriesResult represents the category index of the loaded catalog.
type CategoriesResult struct {
	Categories []CategoryCount `json:"categories"`
	Origin     string          `json:"origin"`
	Timestamp  time.Time       `json:"timestamp"`
}

// CopyResult represents the outcome of one copy attempt.
type CopyResult struct {
	Symbol  string `json:"symbol"`
	Method  string `json:"method,omitempty"`
	OK      bool   `json:"ok"`
	Err     error  `json:"-"`
	Message string `json:"error,omitempty"`
}

// LoadReport summarizes a catalog load for `catalog validate` and logs.
type LoadReport struct {
	LoadID   string    `json:"load_id"`
	Source   string    `json:"source,omitempty"`
	Origin   string    `json:"origin"`
	Usable   int       `json:"usable"`
	Dropped  int       `json:"dropped"`
	Error    string    `json:"error,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}
