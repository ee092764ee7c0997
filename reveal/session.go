package reveal

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/grade-unboxing/audio"
	"github.com/lixenwraith/grade-unboxing/particle"
	"github.com/lixenwraith/grade-unboxing/sequence"
)

// Session is one run of the animation, from Start to StateClosed
type Session struct {
	ID uuid.UUID

	mgr        *Manager
	seq        *sequence.Sequence
	state      State
	reason     CloseReason
	anim       AnimationState
	generation uint64

	viewport int // Queried once at start
	offset   int // Last rail offset sent to the surface

	done chan struct{}
}

// State returns the lifecycle state
func (s *Session) State() State {
	return s.state
}

// Reason returns why the session closed, CloseNone while open
func (s *Session) Reason() CloseReason {
	return s.reason
}

// Animation returns a copy of the animation progress
func (s *Session) Animation() AnimationState {
	return s.anim
}

// Sequence returns the session's rail
func (s *Session) Sequence() *sequence.Sequence {
	return s.seq
}

// Done is closed when the session reaches StateClosed
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// step advances one card; runs only from a scheduled continuation while Running
func (s *Session) step() {
	if s.state != StateRunning {
		return
	}
	m := s.mgr

	p := planStep(s.anim, s.seq, m.opts.SlotWidth, s.viewport)
	s.anim.CurrentIndex = p.index

	if p.exhausted {
		m.close(s, CloseExhausted)
		return
	}

	s.offset = p.offset
	m.surface.Highlight(p.highlight)
	m.surface.ScrollTo(p.offset)
	m.sound.Play(audio.EventTick)

	if p.candidate {
		idx := p.highlight
		m.surface.MarkCandidate(idx)
		m.sound.Play(audio.EventSmallPing)
		m.schedule(s, m.opts.CandidateDuration, func() {
			m.surface.Unmark(idx)
		})
	}

	if p.reveal {
		s.reveal()
		return
	}

	s.anim.StepDelay = p.nextDelay
	m.schedule(s, s.anim.StepDelay, s.step)
}

// reveal lands on the final card and schedules the natural close
func (s *Session) reveal() {
	if s.anim.Revealed || s.state == StateClosed {
		return
	}
	m := s.mgr

	s.anim.Revealed = true
	s.state = StateRevealing

	final := s.seq.FinalIndex
	m.surface.Reveal(final, s.seq.Outcome.String())
	m.surface.Burst(particle.NewBurst(s.slotAnchor(final), m.opts.ParticleCount, m.src))
	m.sound.Play(audio.EventRevealChime)

	m.schedule(s, m.opts.CloseDelay, func() {
		m.close(s, CloseCompleted)
	})
}

// slotAnchor returns the on-surface point a third of the way down slot index
func (s *Session) slotAnchor(index int) particle.Point {
	w := s.mgr.opts.SlotWidth
	return particle.Point{
		X: float64(index*w-s.offset) + float64(w)/2,
		Y: float64(s.mgr.opts.SlotHeight) / 3,
	}
}

// Skip reveals immediately and closes after the shorter skip delay
// No-op once revealed or closed
func (s *Session) Skip() {
	if s.state == StateClosed || s.anim.Revealed {
		return
	}
	m := s.mgr

	s.reveal()
	m.schedule(s, m.opts.SkipCloseDelay, func() {
		m.close(s, CloseSkipped)
	})
}

// Cancel closes the session now without forcing a reveal
func (s *Session) Cancel() {
	s.mgr.close(s, CloseCancelled)
}
