// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"bytes"
	"testing"

	"github.com/toeirei/tasagare/internal/logging"
)

// seedEnv lists every variable that can carry configuration into a test run.
var seedEnv = []string{
	"TASAGARE_REARRANGE_SEED",
	"TASAGARE_REARRANGE_GRANULARITY",
	"TASAGARE_LANGUAGE",
	"TASAGARE_LOG_LEVEL",
	"RE_SEED",
}

// IsolateEnv points every config search path at a fresh temp dir, clears the
// Tasagare environment and makes the temp dir the working directory. It
// returns the temp dir.
func IsolateEnv(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	for _, name := range seedEnv {
		t.Setenv(name, "")
	}
	t.Chdir(tmp)
	return tmp
}

// CaptureLogs redirects the package logger into a buffer until the test ends.
func CaptureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logging.L
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.L = prev })
	return &buf
}
