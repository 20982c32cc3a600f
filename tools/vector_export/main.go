// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// vector_export prints reference vectors for the seed generator, the
// rearrangement and the fingerprint so they can be compared against another
// deployment. Usage:
//
//	go run ./tools/vector_export -seed "$RE_SEED" -at 2026-10-19T09:00:00Z password1 hunter2
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/toeirei/tasagare/core/fingerprint"
	"github.com/toeirei/tasagare/core/permute"
	"github.com/toeirei/tasagare/core/seed"
)

func main() {
	seedFlag := flag.String("seed", "", "fingerprinting seed (empty uses the built-in default)")
	atFlag := flag.String("at", "", "RFC3339 instant for periodic seeds (default now)")
	flag.Parse()

	at := time.Now()
	if *atFlag != "" {
		t, err := time.Parse(time.RFC3339, *atFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -at: %v\n", err)
			os.Exit(2)
		}
		at = t.Local()
	}

	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"", "password", "password1", "hunter2"}
	}
	export(os.Stdout, *seedFlag, at, inputs)
}

func export(w io.Writer, fpSeed string, at time.Time, inputs []string) {
	gen := seed.NewGenerator(seed.WithClock(seed.FixedClock(at)))
	f := fingerprint.New(fpSeed)

	fmt.Fprintf(w, "instant: %s\n", at.Format(time.RFC3339Nano))
	fmt.Fprintln(w, "-- seeds --")
	for _, g := range seed.Granularities() {
		if !g.Periodic() {
			continue
		}
		fmt.Fprintf(w, "%-5s bucket=%d seed=%q\n", g, seed.Bucket(g, at), gen.Generate(g))
	}

	fmt.Fprintf(w, "-- fingerprints (default seed: %v) --\n", f.UsesDefaultSeed())
	for _, in := range inputs {
		fmt.Fprintf(w, "%q\n", in)
		for _, g := range []seed.Granularity{seed.Day, seed.Year} {
			fmt.Fprintf(w, "  rearrange/%s: %q\n", g, permute.Rearrange(in, permute.WithGenerator(gen), permute.WithGranularity(g)))
		}
		fmt.Fprintf(w, "  fingerprint: %s\n", f.Fingerprint(in))
	}
}
