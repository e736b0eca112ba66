// Package clock provides an injectable time source. Loan dates and overdue
// computations must never read ambient wall-clock time directly, so that
// date arithmetic stays deterministic under test.
//
// All times are UTC; storage and transport never carry a local timezone.
package clock

import "time"

// Clock yields the current instant in UTC.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System returns a Clock backed by the OS wall clock, normalized to UTC.
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed returns a Clock frozen at the given instant. Intended for tests.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
