// Package cputime reads the CPU time consumed by the current process.
package cputime

import "time"

// Clock is a reading of the process CPU clock: the user and system time spent
// by all threads of this process since it started.
type Clock time.Duration

// Sub returns the CPU time spent between the two readings.
func (c Clock) Sub(earlier Clock) time.Duration {
	return time.Duration(c - earlier)
}

// Now reads the process CPU clock.
func Now() (Clock, error) {
	return now()
}
