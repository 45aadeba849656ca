// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for Tecken.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/janderssonse/tecken/internal/cli"
	"github.com/janderssonse/tecken/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI()

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *domain.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)
			}

			return exitErr.Code
		}

		if ctx.Err() != nil {
			return cli.ExitInterruptError
		}

		// Flag parsing and other framework errors.
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'tecken --help' for usage.\n")

		return cli.ExitUsageError
	}

	return cli.ExitSuccess
}
