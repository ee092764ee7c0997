package constants

import "time"

// Sequence Shape
const (
	// SequenceBaseLength is the number of random cards before the final reveal card
	SequenceBaseLength = 24

	// SequencePaddingLength is the number of trailing cards after the reveal card
	SequencePaddingLength = 4

	// TentativeWindowLow and TentativeWindowHigh bound the near-miss position as a fraction of base length
	TentativeWindowLow  = 0.60
	TentativeWindowHigh = 0.85
)

// Animation Timing
const (
	// RevealInitialPause is the delay between session start and the first step
	RevealInitialPause = 200 * time.Millisecond

	// RevealBaseSpeed is the starting inter-step delay
	RevealBaseSpeed = 90 * time.Millisecond

	// RevealCandidateDuration is how long the near-miss card keeps its candidate mark
	RevealCandidateDuration = 340 * time.Millisecond

	// RevealCloseDelay is the delay between a natural reveal and session close
	RevealCloseDelay = 500 * time.Millisecond

	// RevealSkipCloseDelay is the delay between a skip request and session close
	RevealSkipCloseDelay = 400 * time.Millisecond
)

// Deceleration
const (
	// DecelerationThreshold is the fraction of the sequence after which steps slow down
	DecelerationThreshold = 0.45

	// DecelerationBaseMs is the fixed per-step delay increase once past the threshold
	DecelerationBaseMs = 20

	// DecelerationScaleMs scales the progress-proportional per-step delay increase
	DecelerationScaleMs = 35
)

// Rail Geometry
const (
	// SlotWidth is the horizontal size of one card on the rail, in surface units
	SlotWidth = 7

	// SlotHeight is the vertical size of one card on the rail
	SlotHeight = 5
)

// Particles
const (
	// ParticleCount is the default number of particles per burst
	ParticleCount = 20

	// ParticleLifetime is how long a burst stays on the surface
	ParticleLifetime = 1400 * time.Millisecond

	// ParticleMaxDelay bounds the random stagger before a particle becomes visible
	ParticleMaxDelay = 60 * time.Millisecond

	// ParticleSpread is the radius of the initial offset around the burst anchor
	ParticleSpread = 3.0

	// ParticleDrift is the distance a particle travels outward over its lifetime
	ParticleDrift = 6.0
)

// Host loop
const (
	// FrameUpdateInterval is the redraw period while particles are live
	FrameUpdateInterval = 33 * time.Millisecond

	// LoopTaskBuffer is the loop's pending task capacity
	LoopTaskBuffer = 256

	// ResultHoldDuration keeps the revealed value on screen after the overlay closes
	ResultHoldDuration = 1500 * time.Millisecond
)
