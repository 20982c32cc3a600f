// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks for missing or orphaned translation keys.
// It scans the Go source code for i18n.T() calls and compares them against
// the YAML locale files to ensure consistency. It also checks that every
// translation carries the same format verbs as the primary locale, since a
// dropped %d silently garbles the message at runtime.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found key.
type Location struct {
	Filepath string
	Line     int
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	keyCallRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	verbRe    = regexp.MustCompile(`%[-+# 0]*[0-9]*(?:\.[0-9]+)?[a-zA-Z]`)
)

// report collects the findings of one run.
type report struct {
	Undefined map[string]Location // used in code, absent from the primary locale
	Orphaned  []string            // in the primary locale, never used
	Missing   map[string][]string // locale file -> keys absent there
	Verbs     map[string][]string // locale file -> keys whose verbs differ
}

func (r report) failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0 || len(r.Verbs) > 0
}

func main() {
	fmt.Println("Running i18n linter...")
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	printReport(r)
	if r.failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	r := report{
		Undefined: map[string]Location{},
		Missing:   map[string][]string{},
		Verbs:     map[string][]string{},
	}

	used, err := findUsedKeys(root)
	if err != nil {
		return r, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadMessages(filepath.Join(locales, primaryLocale))
	if err != nil {
		return r, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	for key, loc := range used {
		if _, ok := primary[key]; !ok {
			r.Undefined[key] = loc
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return r, err
	}
	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		other, err := loadMessages(file)
		if err != nil {
			return r, fmt.Errorf("loading %s: %w", file, err)
		}
		name := filepath.Base(file)
		for key, msg := range primary {
			translated, ok := other[key]
			if !ok {
				r.Missing[name] = append(r.Missing[name], key)
				continue
			}
			if !slices.Equal(formatVerbs(msg), formatVerbs(translated)) {
				r.Verbs[name] = append(r.Verbs[name], key)
			}
		}
		sort.Strings(r.Missing[name])
		sort.Strings(r.Verbs[name])
	}
	for name, keys := range r.Missing {
		if len(keys) == 0 {
			delete(r.Missing, name)
		}
	}
	for name, keys := range r.Verbs {
		if len(keys) == 0 {
			delete(r.Verbs, name)
		}
	}
	return r, nil
}

func printReport(r report) {
	fmt.Println("--- Keys used in code but not defined ---")
	if len(r.Undefined) == 0 {
		fmt.Println("  None found.")
	}
	for _, key := range sortedKeys(r.Undefined) {
		loc := r.Undefined[key]
		fmt.Printf("  - Undefined: %s (%s:%d)\n", key, loc.Filepath, loc.Line)
	}

	fmt.Println("--- Orphaned keys ---")
	if len(r.Orphaned) == 0 {
		fmt.Println("  None found.")
	}
	for _, key := range r.Orphaned {
		fmt.Printf("  - Orphaned: %s\n", key)
	}

	fmt.Println("--- Missing translations ---")
	if len(r.Missing) == 0 {
		fmt.Println("  All keys present.")
	}
	for _, file := range sortedKeys(r.Missing) {
		for _, key := range r.Missing[file] {
			fmt.Printf("  - %s: %s\n", file, key)
		}
	}

	fmt.Println("--- Format verb mismatches ---")
	if len(r.Verbs) == 0 {
		fmt.Println("  None found.")
	}
	for _, file := range sortedKeys(r.Verbs) {
		for _, key := range r.Verbs[file] {
			fmt.Printf("  - %s: %s\n", file, key)
		}
	}

	switch {
	case r.failed():
		fmt.Println("Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Println("Found orphaned keys. Please consider removing them.")
	default:
		fmt.Println("All translation files are consistent!")
	}
}

// findUsedKeys scans all non-test .go files for i18n.T("key") calls and
// records where each key is first used.
func findUsedKeys(root string) (map[string]Location, error) {
	keys := make(map[string]Location)
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for i, line := range strings.Split(string(content), "\n") {
			for _, m := range keyCallRe.FindAllStringSubmatch(line, -1) {
				if _, seen := keys[m[1]]; !seen {
					keys[m[1]] = Location{Filepath: path, Line: i + 1}
				}
			}
		}
		return nil
	})
	return keys, err
}

// loadMessages reads a YAML locale and returns its messages keyed by their
// flattened, dot-separated IDs.
func loadMessages(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	flattenYAML("", data, out)
	return out, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, out)
		}
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, out)
		}
	default:
		if prefix != "" {
			out[prefix] = fmt.Sprint(v)
		}
	}
}

// formatVerbs returns the verbs of msg in order, ignoring literal %%.
func formatVerbs(msg string) []string {
	return verbRe.FindAllString(strings.ReplaceAll(msg, "%%", ""), -1)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
