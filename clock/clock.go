package clock

import "time"

// Clock lets callers inject the current-time source. The registry reads it
// once at the start of every call and never advances time itself.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystem returns a clock backed by time.Now.
func NewSystem() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
