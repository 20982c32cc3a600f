// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestExport(t *testing.T) {
	at := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local)
	var buf bytes.Buffer
	export(&buf, "", at, []string{"password1", "correct horse battery staple"})
	out := buf.String()

	for _, want := range []string{
		"default seed: true",
		"fingerprint: 8f2dced42f616762494fe1ec3c2c2bb5b6e203247d8d284ca2c7ff92ceb18359a8aa3f85d5762f36def6ff65beb35e0f",
		`rearrange/day: "yehra ceeotaptcr sortrsb etl"`,
		`rearrange/year: "a c teorpteratscyhrsbo lreet"`,
		"day   bucket=2128698",
		"year  bucket=200574",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "none ") {
		t.Errorf("unbounded granularity should not be exported:\n%s", out)
	}
}

func TestExport_Deterministic(t *testing.T) {
	at := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.Local)
	var a, b bytes.Buffer
	export(&a, "seed", at, []string{"x"})
	export(&b, "seed", at, []string{"x"})
	if a.String() != b.String() {
		t.Fatal("export not deterministic for a fixed instant")
	}
}
