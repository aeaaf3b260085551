// Package testutil provides shared test doubles.
package testutil

import "time"

// FixedClock implements engine.Clock with a preset date, so tests can
// assert the exact date stamped onto sale transactions.
type FixedClock struct {
	T time.Time
}

// Today returns the preset time.
func (c FixedClock) Today() time.Time {
	return c.T
}

// Date is a shorthand for building a UTC day-granularity time.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
