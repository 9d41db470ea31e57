package testutil

import "time"

// NowAt returns a clock frozen at t, for handlers and services that take a now func.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

