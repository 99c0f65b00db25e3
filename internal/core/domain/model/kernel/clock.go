package kernel

import "time"

// Clock supplies "now" to operations whose outcome depends on the current time:
// price resolution, shelf-life computation and history timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Used by tests and batch tools
// that evaluate data at a given reference date.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

// StartOfDay truncates t to midnight UTC. Effective dates and manufacturing
// dates are calendar dates and are always compared at this granularity.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
