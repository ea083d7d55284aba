package clock

import "time"

// Clock abstracts time so turn timestamps are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in UTC. Answer history is stored in
// UTC and rendered in whatever zone the terminal wants.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
