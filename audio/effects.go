package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/grade-unboxing/rng"
)

// triangle is a triangle-wave oscillator for short blips
type triangle struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewTriangle creates a triangle tone at freq Hz lasting duration
func NewTriangle(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &triangle{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *triangle) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		val := 1 - 4*math.Abs(o.phase-0.5)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *triangle) Err() error { return nil }

// fadingNoise is white noise under a linear fade, a short percussive burst
type fadingNoise struct {
	length   int
	position int
	src      rng.Source
}

// NewFadingNoise creates a noise burst that fades linearly to silence over duration
func NewFadingNoise(duration time.Duration, rate beep.SampleRate, src rng.Source) beep.Streamer {
	return &fadingNoise{length: rate.N(duration), src: src}
}

func (f *fadingNoise) Stream(samples [][2]float64) (n int, ok bool) {
	if f.position >= f.length {
		return 0, false
	}
	for i := range samples {
		if f.position >= f.length {
			return i, true
		}
		val := (f.src.Float64()*2 - 1) * (1 - float64(f.position)/float64(f.length))
		samples[i][0] = val
		samples[i][1] = val
		f.position++
	}
	return len(samples), true
}

func (f *fadingNoise) Err() error { return nil }

// fmOscillator is a sine carrier whose frequency is modulated by a sine source
type fmOscillator struct {
	carrier  float64
	modFreq  float64
	depth    float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewFMOscillator creates a carrier at carrier Hz deviating by depth Hz at modFreq Hz
func NewFMOscillator(carrier, modFreq, depth float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fmOscillator{
		carrier:  carrier,
		modFreq:  modFreq,
		depth:    depth,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *fmOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}
		t := float64(o.position) / float64(o.rate)
		freq := o.carrier + o.depth*math.Sin(2*math.Pi*o.modFreq*t)

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *fmOscillator) Err() error { return nil }

// expEnvelope ramps gain exponentially from floor to peak, then back to floor
// Gain holds at floor after decayEnd until the wrapped stream finishes
type expEnvelope struct {
	streamer beep.Streamer
	position int
	attack   int
	decayEnd int
	peak     float64
	floor    float64
}

// NewExpEnvelope shapes s with an exponential attack to peak and exponential decay ending at decayEnd
func NewExpEnvelope(s beep.Streamer, attack, decayEnd time.Duration, peak, floor float64, rate beep.SampleRate) beep.Streamer {
	att := rate.N(attack)
	end := rate.N(decayEnd)
	if end < att {
		end = att
	}
	return &expEnvelope{
		streamer: s,
		attack:   att,
		decayEnd: end,
		peak:     peak,
		floor:    floor,
	}
}

// gain returns the envelope level at sample position p
func (e *expEnvelope) gain(p int) float64 {
	switch {
	case p < e.attack:
		return e.floor * math.Pow(e.peak/e.floor, float64(p)/float64(e.attack))
	case p < e.decayEnd:
		return e.peak * math.Pow(e.floor/e.peak, float64(p-e.attack)/float64(e.decayEnd-e.attack))
	default:
		return e.floor
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.position)
		samples[i][0] *= g
		samples[i][1] *= g
		e.position++
	}
	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }

// bandPass is a biquad band-pass filter with 0 dB peak gain
type bandPass struct {
	streamer beep.Streamer

	b0, b2, a1, a2 float64
	x1, x2, y1, y2 [2]float64
}

// NewBandPass filters s around center Hz with quality q
func NewBandPass(s beep.Streamer, center, q float64, rate beep.SampleRate) beep.Streamer {
	w0 := 2 * math.Pi * center / float64(rate)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha

	return &bandPass{
		streamer: s,
		b0:       alpha / a0,
		b2:       -alpha / a0,
		a1:       -2 * math.Cos(w0) / a0,
		a2:       (1 - alpha) / a0,
	}
}

func (f *bandPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			x := samples[i][c]
			y := f.b0*x + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]
			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}
	return n, ok
}

func (f *bandPass) Err() error { return f.streamer.Err() }

// Detune shifts freq by cents
func Detune(freq, cents float64) float64 {
	return freq * math.Pow(2, cents/1200)
}

// newVolume scales s linearly by vol, zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
