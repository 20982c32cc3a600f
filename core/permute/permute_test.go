// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package permute

import (
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/toeirei/tasagare/core/seed"
)

const constantSeed = "UIUAG8RWIUSHSZ'/FPEJBDFVO;JBDEIRODF"

func TestRearrange_SeedVectors(t *testing.T) {
	cases := []struct{ in, want string }{
		{"password", "orsspadw"},
		{"password1", "1saodprsw"},
		{"password2", "2saodprsw"},
		{"hunter2", "rthuen2"},
		{"héllo wörld ✓", " örldh wéllo✓"},
	}
	for _, tc := range cases {
		if got := Rearrange(tc.in, WithSeed(constantSeed)); got != tc.want {
			t.Errorf("Rearrange(%q): got %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestRearrange_GeneratedSeedVectors(t *testing.T) {
	clock := seed.FixedClock(time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local))
	gen := seed.NewGenerator(seed.WithClock(clock))
	const in = "correct horse battery staple"

	cases := []struct {
		g    seed.Granularity
		want string
	}{
		{seed.Day, "yehra ceeotaptcr sortrsb etl"},
		{seed.Year, "a c teorpteratscyhrsbo lreet"},
	}
	for _, tc := range cases {
		got := Rearrange(in, WithGenerator(gen), WithGranularity(tc.g))
		if got != tc.want {
			t.Errorf("%s: got %q want %q", tc.g, got, tc.want)
		}
	}
}

func TestRearrange_Empty(t *testing.T) {
	if got := Rearrange(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := Rearrange("", WithSeed("x")); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRearrange_PreservesMultiset(t *testing.T) {
	inputs := []string{
		"a",
		"ab",
		"password",
		"aaaaaaaaab",
		"The quick brown fox jumps over the lazy dog",
		"日本語のパスワード",
		"mixed\x00bytes\xff\xfeend",
	}
	for _, in := range inputs {
		for _, opts := range [][]Option{
			nil,
			{WithSeed(constantSeed)},
			{WithGranularity(seed.Day)},
			{WithGranularity(seed.Month)},
		} {
			out := Rearrange(in, opts...)
			if len(out) != len(in) {
				t.Fatalf("length changed for %q: %d -> %d", in, len(in), len(out))
			}
			if !sameMultiset(in, out) {
				t.Fatalf("multiset changed for %q: got %q", in, out)
			}
		}
	}
}

func TestRearrange_DeterministicWithSeed(t *testing.T) {
	in := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 4)
	first := Rearrange(in, WithSeed("fixed"))
	for i := 0; i < 50; i++ {
		if got := Rearrange(in, WithSeed("fixed")); got != first {
			t.Fatalf("call %d differs: %q vs %q", i, got, first)
		}
	}
	if Rearrange(in, WithSeed("other")) == first {
		t.Fatalf("different seeds produced the same arrangement")
	}
}

func TestRearrange_SeedOverridesGranularity(t *testing.T) {
	in := "override priority"
	want := Rearrange(in, WithSeed(constantSeed))
	got := Rearrange(in, WithGranularity(seed.Day), WithSeed(constantSeed))
	if got != want {
		t.Fatalf("explicit seed should win over granularity: %q vs %q", got, want)
	}
}

func TestRearrange_EmptySeedIsStillASeed(t *testing.T) {
	in := "empty seed string"
	if Rearrange(in, WithSeed("")) != Rearrange(in, WithSeed("")) {
		t.Fatal("an explicit empty seed must be deterministic")
	}
}

func TestRearrange_UnseededVaries(t *testing.T) {
	in := strings.Repeat("0123456789", 5)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		seen[Rearrange(in)] = true
	}
	if len(seen) < 2 {
		t.Fatal("unseeded rearrangement should not repeat every time")
	}
}

func TestRearrange_ConcurrentCallsAgree(t *testing.T) {
	in := "concurrent callers must not share generator state"
	want := Rearrange(in, WithSeed(constantSeed))

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Rearrange(in, WithSeed(constantSeed)); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Errorf("concurrent result differs: %q", got)
	}
}

func sameMultiset(a, b string) bool {
	x, y := []byte(a), []byte(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
