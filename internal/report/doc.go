// Package report derives read-only summaries, descriptive statistics, and
// sales trends from inventory and ledger snapshots.
//
// Reporting never mutates either store: every function takes plain slices
// (the engine's snapshot accessors) and computes from those. Joins between
// sales and books use the canonical title key, so case differences between
// a recorded sale and the current inventory do not break the join.
//
// All output orderings are deterministic (sorted, with title tie-breaks) so
// rendered reports are stable and golden-testable.
package report
