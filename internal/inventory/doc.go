// Package inventory implements the in-memory book inventory store.
//
// Books are keyed by a canonical form of their title: trimmed, NFC
// normalized, and lower-cased. Lookup is an exact match on that key -
// case and Unicode representation differences are ignored, nothing is
// fuzzy-matched. The store holds at most one book per canonical title.
//
// Insertion order is preserved so listings and persisted files stay stable
// across load/save cycles. All mutating operations either fully apply or
// leave the store untouched.
package inventory
