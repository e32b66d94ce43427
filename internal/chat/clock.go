package chat

import "time"

// Scheduler provides time and delayed callbacks. Tests substitute a
// virtual implementation to advance time deterministically.
type Scheduler interface {
	// Now returns current UTC time.
	Now() time.Time
	// AfterFunc runs fn on its own goroutine after d. The returned stop
	// function cancels the call and reports whether it was in time.
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

type systemScheduler struct{}

// Now returns current UTC time.
func (systemScheduler) Now() time.Time {
	return time.Now().UTC()
}

// AfterFunc schedules fn on a system timer.
func (systemScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	timer := time.AfterFunc(d, fn)
	return timer.Stop
}
