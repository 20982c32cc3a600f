// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.

package seed

import "strings"

// Granularity selects the calendar bucket a generated seed is bound to.
type Granularity int

const (
	// None produces a practically unique seed on every call.
	None Granularity = iota
	Day
	Week
	Month
	Year
)

var granularityNames = [...]string{
	None:  "none",
	Day:   "day",
	Week:  "week",
	Month: "month",
	Year:  "year",
}

func (g Granularity) String() string {
	if g < None || g > Year {
		return "unknown"
	}
	return granularityNames[g]
}

// Periodic reports whether seeds of this granularity repeat within a bucket.
func (g Granularity) Periodic() bool {
	return g >= Day && g <= Year
}

// ParseGranularity maps a case-insensitive name to a Granularity. The empty
// string maps to None.
func ParseGranularity(s string) (Granularity, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return None, true
	}
	for g, name := range granularityNames {
		if name == s {
			return Granularity(g), true
		}
	}
	return None, false
}

// Granularities lists every value in priority order.
func Granularities() []Granularity {
	return []Granularity{Day, Week, Month, Year, None}
}
