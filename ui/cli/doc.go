// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the tasagare command line with Cobra. It loads the
// configuration once, builds the fingerprint Finalizer from it and delegates
// every computation to the `core` packages.
package cli
