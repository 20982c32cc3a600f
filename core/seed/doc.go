// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package seed derives the seed strings that drive string rearrangement.
// A seed is either bound to a calendar bucket (day, week, month or year), in
// which case every call inside that bucket returns the same value, or built
// from the current timestamp plus fresh random characters, in which case it is
// practically unique.
package seed
