package engine

import "time"

// Clock supplies the calendar date stamped onto sale transactions.
//
// Sales are recorded at day granularity using the wall-clock date at commit
// time. Tests substitute a fixed clock so recorded dates are deterministic.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return time.Now()
}

// SystemClock returns the production clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

// dateOnly truncates a time to midnight UTC, the granularity stored in the
// sales ledger. The UTC calendar date is used, so a local wall clock near
// midnight agrees with everything else that stamps UTC dates.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
