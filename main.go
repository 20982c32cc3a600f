// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Tasagare.
//
// Usage:
//
//	go run . [command] [flags]
//	./tasagare fingerprint
//
// See --help for the available commands.
package main

import (
	"errors"
	"os"

	"github.com/toeirei/tasagare/internal/logging"
	"github.com/toeirei/tasagare/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if cli.IsSilentExit(err) {
			return
		}
		// A mismatch has already been reported on stdout.
		if !errors.Is(err, cli.ErrMismatch) {
			logging.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
