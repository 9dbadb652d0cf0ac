package ads

import "time"

// Clock supplies the current date. Lifecycle operations take it as a
// dependency so scheduling math stays deterministic under test.
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SystemClock returns a Clock backed by the wall clock, truncated to the day.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock always reports the same date.
type FixedClock struct {
	Date time.Time
}

func (f FixedClock) Today() time.Time {
	return f.Date
}
