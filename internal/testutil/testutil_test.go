// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/tasagare/internal/logging"
)

func TestIsolateEnv(t *testing.T) {
	t.Setenv("RE_SEED", "outer")
	tmp := IsolateEnv(t)

	if os.Getenv("RE_SEED") != "" {
		t.Fatal("RE_SEED not cleared")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	want, _ := filepath.EvalSymlinks(tmp)
	got, _ := filepath.EvalSymlinks(wd)
	if got != want {
		t.Fatalf("working dir %s, want %s", got, want)
	}
}

func TestCaptureLogs(t *testing.T) {
	buf := CaptureLogs(t)
	logging.Warnf("captured %d", 1)
	if !strings.Contains(buf.String(), "captured 1") {
		t.Fatalf("log not captured: %q", buf.String())
	}
}
