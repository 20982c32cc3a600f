// Copyright (c) 2026 Tasagare Team
// Tasagare - credential fingerprinting
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security holds plaintext credentials between the moment they are
// read from a user and the moment they are fingerprinted. A Secret refuses to
// print itself, so accidental logging or JSON encoding shows a placeholder.
package security
