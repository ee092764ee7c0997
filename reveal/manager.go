// Package reveal drives the unboxing animation: it steps through a generated
// rail on scheduler timers, slows down toward the end, fakes a near-miss and
// lands on the committed outcome.
//
// Only one session is active per Manager. Every scheduled continuation carries
// the generation it was armed under; closing a session bumps the generation so
// timers armed earlier become no-ops even if the scheduler still delivers them.
package reveal

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/grade-unboxing/engine"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/rng"
	"github.com/lixenwraith/grade-unboxing/sequence"
)

// Manager owns the exclusive session slot
// Not safe for concurrent use: call it from the scheduler's goroutine
type Manager struct {
	opts    Options
	sched   engine.Scheduler
	surface Surface
	sound   Sounder
	src     rng.Source

	active     *Session
	generation uint64
	started    uint64

	// OnClose is called after a session reaches StateClosed
	OnClose func(*Session)
}

// NewManager creates a manager; a nil sound plays nothing, a nil src is randomly seeded
func NewManager(opts Options, sched engine.Scheduler, surface Surface, sound Sounder, src rng.Source) *Manager {
	if sound == nil {
		sound = silentSounder{}
	}
	if src == nil {
		src = rng.NewRandom()
	}
	return &Manager{
		opts:    opts,
		sched:   sched,
		surface: surface,
		sound:   sound,
		src:     src,
	}
}

// Start opens a session revealing outcome
// Returns nil, nil when a session is already active; the active session is unaffected
func (m *Manager) Start(outcome grade.Symbol) (*Session, error) {
	if m.active != nil {
		log.Printf("reveal: start %v rejected, session %s active", outcome, m.active.ID)
		return nil, nil
	}

	seq, err := sequence.Generate(outcome, m.opts.Sequence, m.src)
	if err != nil {
		return nil, err
	}

	m.generation++
	m.started++
	s := &Session{
		ID:         uuid.New(),
		mgr:        m,
		seq:        seq,
		state:      StateIdle,
		generation: m.generation,
		done:       make(chan struct{}),
		anim: AnimationState{
			CurrentIndex: 0,
			StepDelay:    m.opts.BaseSpeed,
		},
	}
	m.active = s

	s.viewport = m.surface.ViewportWidth()
	s.state = StateRunning
	m.surface.InitSlots(seq.Symbols)
	m.schedule(s, m.opts.InitialPause, s.step)

	log.Printf("reveal: session %s started outcome=%v cards=%d tentative=%d final=%d",
		s.ID, outcome, seq.Len(), seq.TentativeIndex, seq.FinalIndex)
	return s, nil
}

// Active returns the running session, nil when idle
func (m *Manager) Active() *Session {
	return m.active
}

// State returns the active session's state, StateIdle when none
func (m *Manager) State() State {
	if m.active == nil {
		return StateIdle
	}
	return m.active.state
}

// Started returns the number of sessions opened
func (m *Manager) Started() uint64 {
	return m.started
}

// Skip forces the active session to reveal now
func (m *Manager) Skip() {
	if m.active != nil {
		m.active.Skip()
	}
}

// Cancel abandons the active session
func (m *Manager) Cancel() {
	if m.active != nil {
		m.active.Cancel()
	}
}

// HandleInput routes an input event to the active session
func (m *Manager) HandleInput(in Input) {
	switch in {
	case InputSkip:
		m.Skip()
	case InputCancel:
		m.Cancel()
	}
}

// schedule arms fn for s, dropping it if s is closed or superseded by then
func (m *Manager) schedule(s *Session, d time.Duration, fn func()) {
	gen := s.generation
	m.sched.After(d, func() {
		if !m.current(s, gen) {
			return
		}
		fn()
	})
}

func (m *Manager) current(s *Session, gen uint64) bool {
	return m.active == s && m.generation == gen && s.state != StateClosed
}

// close moves s to StateClosed exactly once and frees the slot
func (m *Manager) close(s *Session, reason CloseReason) {
	if s.state == StateClosed {
		return
	}
	s.state = StateClosed
	s.reason = reason
	if m.active == s {
		m.active = nil
		m.generation++
	}

	m.surface.Close()
	close(s.done)

	log.Printf("reveal: session %s closed reason=%v index=%d revealed=%t",
		s.ID, reason, s.anim.CurrentIndex, s.anim.Revealed)

	if m.OnClose != nil {
		m.OnClose(s)
	}
}
