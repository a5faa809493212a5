// Package textutil provides text processing utilities for name
// canonicalization and similarity scoring.
//
// The primary use cases are:
//   - Normalizing free-text player names into comparison keys
//   - Computing a matching-block similarity ratio between two names
//
// Normalization applies Unicode canonical decomposition, strips combining
// diacritical marks, lowercases, removes punctuation, and collapses
// whitespace, so "Müller" and "Muller" produce the same key. Similarity is
// computed over already-normalized names.
package textutil
