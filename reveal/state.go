package reveal

import "time"

// State is the session lifecycle position
type State int

const (
	StateIdle State = iota
	StateRunning
	StateRevealing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateRevealing:
		return "revealing"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// CloseReason records which path terminated a session
type CloseReason int

const (
	CloseNone      CloseReason = iota
	CloseCompleted             // Natural reveal at the final index
	CloseSkipped               // Skip request forced the reveal
	CloseCancelled             // Abandoned without reveal guarantee
	CloseExhausted             // Ran off the end of the rail
)

func (r CloseReason) String() string {
	switch r {
	case CloseCompleted:
		return "completed"
	case CloseSkipped:
		return "skipped"
	case CloseCancelled:
		return "cancelled"
	case CloseExhausted:
		return "exhausted"
	default:
		return "none"
	}
}

// AnimationState is the mutable progress of one session
type AnimationState struct {
	CurrentIndex int
	StepDelay    time.Duration
	Revealed     bool
}

// Input is an event delivered by the input source
type Input int

const (
	InputSkip   Input = iota // Reveal now
	InputCancel              // Abort
)
