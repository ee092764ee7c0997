package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the default output sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0.0-1.0)
	AudioMasterVolume = 1.0

	// EnvelopeFloor is the near-zero level exponential ramps start from and decay to
	EnvelopeFloor = 0.0001
)

// Tick Sound
const (
	TickDuration      = 60 * time.Millisecond
	TickNoiseAttack   = 5 * time.Millisecond
	TickNoisePeak     = 0.06
	TickNoiseLength   = 30 * time.Millisecond
	TickNoiseMinFreq  = 1200.0
	TickNoiseFreqSpan = 800.0
	TickToneAttack    = 4 * time.Millisecond
	TickTonePeak      = 0.08
	TickToneMinFreq   = 1000.0
	TickToneFreqSpan  = 600.0
	TickFilterQ       = 1.0
)

// Small Ping Sound
const (
	PingDuration = 200 * time.Millisecond
	PingAttack   = 6 * time.Millisecond
	PingDecayEnd = 180 * time.Millisecond
	PingPeak     = 0.06
	PingFreq     = 880.0
)

// Reveal Chime Sound
const (
	ChimeDuration       = 1200 * time.Millisecond
	ChimeAttack         = 20 * time.Millisecond
	ChimePeak           = 0.12
	ChimeLowFreq        = 660.0
	ChimeLowStop        = 900 * time.Millisecond
	ChimeHighFreq       = 990.0
	ChimeHighDetune     = 8.0 // cents
	ChimeHighStart      = 10 * time.Millisecond
	ChimeHighStop       = 950 * time.Millisecond
	ChimeCarrierFreq    = 420.0
	ChimeModulatorFreq  = 220.0
	ChimeModulatorDepth = 40.0 // Hz of carrier deviation
	ChimeMetalPeak      = 0.03
	ChimeMetalDecayEnd  = 900 * time.Millisecond
	ChimeMetalStop      = 950 * time.Millisecond
)
