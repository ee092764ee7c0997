package engine

import "time"

// Scheduler runs callbacks after a delay
// All callbacks from one Scheduler execute on a single goroutine, one at a time
type Scheduler interface {
	After(d time.Duration, fn func())
}

// TimeProvider reports the scheduler's notion of now
type TimeProvider interface {
	Now() time.Time
}
