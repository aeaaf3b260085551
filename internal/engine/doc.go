// Package engine implements the ledger engine: the orchestrating component
// that keeps the inventory store and the sales ledger consistent.
//
// The engine owns one inventory store and one sales ledger per process and
// serializes every operation (single-writer design, no locking). Each
// operation validates its raw string inputs, mutates the in-memory stores,
// and write-through persists the affected tables before returning.
//
// Recording a sale walks a fixed sequence: validate the quantity, check the
// title exists, check stock, then commit (decrement stock, append the
// transaction at the current price, persist both tables). Any rejection
// before the commit leaves both stores and both files untouched.
//
// Every operation is stamped with a UUIDv7 op token that appears in the
// structured log lines, so a log stream can be correlated back to
// individual operations.
package engine
