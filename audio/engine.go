package audio

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/grade-unboxing/rng"
)

// Sink accepts finished streamers for playback
type Sink interface {
	Play(s beep.Streamer)
}

// AudioEngine synthesizes reveal sounds and hands them to a sink
// With no sink every Play is a silent no-op
type AudioEngine struct {
	config *Config
	sink   Sink
	src    rng.Source

	muted      atomic.Bool
	silentMode atomic.Bool
	played     atomic.Uint64
	dropped    atomic.Uint64

	mu sync.Mutex // Protects src
}

// NewAudioEngine creates an engine writing to sink, a nil sink runs silent
func NewAudioEngine(cfg *Config, sink Sink, src rng.Source) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	if src == nil {
		src = rng.NewRandom()
	}

	ae := &AudioEngine{
		config: cfg,
		sink:   sink,
		src:    src,
	}
	ae.muted.Store(!cfg.Enabled)
	ae.silentMode.Store(sink == nil)
	return ae
}

// OpenAudioEngine opens the system speaker, falling back to silent mode when it is unavailable
func OpenAudioEngine(cfg *Config, src rng.Source) *AudioEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()

	if !cfg.Enabled {
		return NewAudioEngine(cfg, nil, src)
	}

	sink, err := OpenSpeaker(beep.SampleRate(cfg.SampleRate))
	if err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
		return NewAudioEngine(cfg, nil, src)
	}
	return NewAudioEngine(cfg, sink, src)
}

// Play synthesizes ev and queues it, returns false when nothing was played
func (ae *AudioEngine) Play(ev Event) bool {
	if ae.muted.Load() || ae.silentMode.Load() {
		ae.dropped.Add(1)
		return false
	}

	ae.mu.Lock()
	s, err := GetSoundEffect(ev, ae.config, ae.src)
	ae.mu.Unlock()
	if err != nil {
		log.Printf("audio: %v", err)
		ae.dropped.Add(1)
		return false
	}

	ae.sink.Play(s)
	ae.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if now enabled
func (ae *AudioEngine) ToggleMute() bool {
	newMute := !ae.muted.Load()
	ae.muted.Store(newMute)
	return !newMute
}

// IsMuted returns current mute state
func (ae *AudioEngine) IsMuted() bool {
	return ae.muted.Load()
}

// IsEnabled returns true if a sink is attached and unmuted
func (ae *AudioEngine) IsEnabled() bool {
	return !ae.muted.Load() && !ae.silentMode.Load()
}

// GetStats returns played and dropped counts
func (ae *AudioEngine) GetStats() (played, dropped uint64) {
	return ae.played.Load(), ae.dropped.Load()
}

// Close releases the sink if it holds resources
func (ae *AudioEngine) Close() {
	if c, ok := ae.sink.(interface{ Close() }); ok {
		c.Close()
	}
	ae.silentMode.Store(true)
}
