package service

import "time"

// Clock abstracts wall-clock time so that time-dependent policy (past-month
// classification, cost date defaulting) is deterministically testable.
type Clock interface {
	Now() time.Time
}

// systemClock is the production Clock reading the real wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
