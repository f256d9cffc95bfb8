// Package clock abstracts the time source used for session expiry and
// match timestamps.
package clock

import "time"

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// New returns the wall clock
func New() SystemClock {
	return SystemClock{}
}

// Now returns the current time in UTC so stored timestamps compare cleanly
// across memory and redis storage
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
