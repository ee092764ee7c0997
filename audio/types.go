package audio

import (
	"errors"
)

// Event identifies one of the reveal sounds
type Event int

const (
	EventTick        Event = iota // Rail step click
	EventSmallPing                // Near-miss candidate blip
	EventRevealChime              // Final reveal bell
	eventCount
)

var eventNames = [eventCount]string{"tick", "ping", "chime"}

func (e Event) String() string {
	if e < 0 || e >= eventCount {
		return "unknown"
	}
	return eventNames[e]
}

// Sentinel errors
var (
	ErrNoSink       = errors.New("no audio output available")
	ErrUnknownEvent = errors.New("unknown audio event")
)
