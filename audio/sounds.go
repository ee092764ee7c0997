package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/rng"
)

// Sound effect generators

// CreateTickSound generates a percussive click: band-passed noise over a short triangle transient
// Both center frequencies are drawn from src on every call
func CreateTickSound(rate beep.SampleRate, src rng.Source) beep.Streamer {
	noiseCenter := rng.Range(src, constants.TickNoiseMinFreq, constants.TickNoiseFreqSpan)
	toneFreq := rng.Range(src, constants.TickToneMinFreq, constants.TickToneFreqSpan)

	noise := NewFadingNoise(constants.TickNoiseLength, rate, src)
	filtered := NewBandPass(noise, noiseCenter, constants.TickFilterQ, rate)
	noiseShaped := NewExpEnvelope(filtered, constants.TickNoiseAttack, constants.TickDuration,
		constants.TickNoisePeak, constants.EnvelopeFloor, rate)

	tone := NewTriangle(toneFreq, constants.TickDuration, rate)
	toneShaped := NewExpEnvelope(tone, constants.TickToneAttack, constants.TickDuration,
		constants.TickTonePeak, constants.EnvelopeFloor, rate)

	return beep.Mix(noiseShaped, toneShaped)
}

// CreatePingSound generates the short triangle blip played on the near-miss card
func CreatePingSound(rate beep.SampleRate) beep.Streamer {
	tone := NewTriangle(constants.PingFreq, constants.PingDuration, rate)
	return NewExpEnvelope(tone, constants.PingAttack, constants.PingDecayEnd,
		constants.PingPeak, constants.EnvelopeFloor, rate)
}

// CreateChimeSound generates the reveal bell: a detuned sine pair plus a quiet FM overtone
func CreateChimeSound(rate beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(rate, constants.ChimeLowFreq)
	if err != nil {
		return nil, fmt.Errorf("chime low tone: %w", err)
	}
	high, err := generators.SineTone(rate, Detune(constants.ChimeHighFreq, constants.ChimeHighDetune))
	if err != nil {
		return nil, fmt.Errorf("chime high tone: %w", err)
	}

	highDelay := rate.N(constants.ChimeHighStart)
	pair := beep.Mix(
		beep.Take(rate.N(constants.ChimeLowStop), low),
		beep.Seq(
			beep.Silence(highDelay),
			beep.Take(rate.N(constants.ChimeHighStop)-highDelay, high),
		),
	)
	bell := NewExpEnvelope(pair, constants.ChimeAttack, constants.ChimeDuration,
		constants.ChimePeak, constants.EnvelopeFloor, rate)

	metal := NewFMOscillator(constants.ChimeCarrierFreq, constants.ChimeModulatorFreq,
		constants.ChimeModulatorDepth, constants.ChimeMetalStop, rate)
	metalShaped := NewExpEnvelope(metal, constants.ChimeAttack, constants.ChimeMetalDecayEnd,
		constants.ChimeMetalPeak, constants.EnvelopeFloor, rate)

	return beep.Mix(bell, metalShaped), nil
}

// GetSoundEffect returns the streamer for ev scaled by its configured volume
func GetSoundEffect(ev Event, cfg *Config, src rng.Source) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch ev {
	case EventTick:
		s = CreateTickSound(rate, src)
	case EventSmallPing:
		s = CreatePingSound(rate)
	case EventRevealChime:
		chime, err := CreateChimeSound(rate)
		if err != nil {
			return nil, err
		}
		s = chime
	default:
		return nil, fmt.Errorf("event %d: %w", ev, ErrUnknownEvent)
	}

	return newVolume(s, cfg.EffectVolume(ev)*cfg.MasterVolume), nil
}
