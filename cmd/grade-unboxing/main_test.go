package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grade-unboxing/audio"
	"github.com/lixenwraith/grade-unboxing/engine"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/reveal"
	"github.com/lixenwraith/grade-unboxing/rng"
)

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want keyAction
		ok   bool
	}{
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), actionSkip, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), actionSkip, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionCancel, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), actionCancel, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionCancel, true},
		{"m", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), actionMute, true},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := actionFor(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestHandleEventMute verifies the mute key toggles audio without touching the session
func TestHandleEventMute(t *testing.T) {
	sched := engine.NewManualScheduler(time.Time{})
	rec := reveal.NewRecorder(80)
	mgr := reveal.NewManager(fastOptions(), sched, rec, nil, rng.New(2))
	if _, err := mgr.Start(grade.B); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ae := audio.NewAudioEngine(audio.DefaultAudioConfig(), nil, rng.New(2))
	loop := engine.NewLoop(1)
	key := tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone)

	handleEvent(key, mgr, ae, nil, loop)
	if !ae.IsMuted() {
		t.Error("Expected first mute key to mute audio")
	}
	handleEvent(key, mgr, ae, nil, loop)
	if ae.IsMuted() {
		t.Error("Expected second mute key to unmute audio")
	}

	if mgr.State() != reveal.StateRunning {
		t.Errorf("Expected session still running, got %v", mgr.State())
	}
	if !loop.Post(func() {}) {
		t.Error("Expected loop not stopped by mute key")
	}
}

func fastOptions() reveal.Options {
	opts := reveal.DefaultOptions()
	opts.InitialPause = 0
	opts.BaseSpeed = time.Millisecond
	opts.CandidateDuration = time.Millisecond
	opts.CloseDelay = time.Millisecond
	opts.SkipCloseDelay = time.Millisecond
	return opts
}

// TestPlayRunsSessionToCompletion drives a real loop and timers end to end
func TestPlayRunsSessionToCompletion(t *testing.T) {
	loop := engine.NewLoop(64)
	rec := reveal.NewRecorder(80)
	mgr := reveal.NewManager(fastOptions(), loop, rec, nil, rng.New(3))
	mgr.OnClose = func(*reveal.Session) { loop.Stop() }

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	session, err := play(ctx, loop, mgr, grade.D)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session == nil {
		t.Fatal("Expected a session")
	}
	if session.Reason() != reveal.CloseCompleted {
		t.Errorf("Expected completed, got %v", session.Reason())
	}
	if n := rec.Count(reveal.CmdClose); n != 1 {
		t.Errorf("Expected 1 close, got %d", n)
	}
	if last := rec.Commands[len(rec.Commands)-1]; last.Kind != reveal.CmdClose {
		t.Errorf("Expected close as last command, got %v", last)
	}
}

func TestPlayInvalidOutcome(t *testing.T) {
	loop := engine.NewLoop(8)
	mgr := reveal.NewManager(fastOptions(), loop, reveal.NewRecorder(80), nil, rng.New(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := play(ctx, loop, mgr, grade.Symbol('Z'))
	if !errors.Is(err, grade.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}
