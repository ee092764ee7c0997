package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/grade-unboxing/constants"
)

// SpeakerSink plays streamers on the system speaker
type SpeakerSink struct {
	mu     sync.Mutex
	closed bool
}

// OpenSpeaker initializes the speaker at rate
func OpenSpeaker(rate beep.SampleRate) (*SpeakerSink, error) {
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSink, err)
	}
	return &SpeakerSink{}, nil
}

// Play queues s on the speaker mixer
func (s *SpeakerSink) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Play(st)
}

// Close stops playback and releases the device
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}
