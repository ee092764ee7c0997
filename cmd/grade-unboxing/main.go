package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grade-unboxing/audio"
	"github.com/lixenwraith/grade-unboxing/config"
	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/core"
	"github.com/lixenwraith/grade-unboxing/engine"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/render"
	"github.com/lixenwraith/grade-unboxing/reveal"
	"github.com/lixenwraith/grade-unboxing/rng"
)

var (
	gradeFlag    = flag.String("grade", "", "Grade to reveal (A-F)")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 seeds randomly")
	headlessFlag = flag.Bool("headless", false, "Print surface commands instead of drawing")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/")
	configFlag   = flag.String("config", "", "YAML config file")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
	widthFlag    = flag.Int("width", 80, "Viewport width in headless mode")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	// Flags override file and environment
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	outcome, err := grade.Parse(*gradeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: grade-unboxing -grade <A-F>: %v\n", err)
		os.Exit(2)
	}

	src := rng.NewRandom()
	if cfg.Seed != 0 {
		src = rng.New(cfg.Seed)
	}

	// Audio draws its micro-variation from its own stream so the rail stays reproducible per seed
	audioSrc := rng.NewRandom()
	if cfg.Seed != 0 {
		audioSrc = rng.New(cfg.Seed + 1)
	}
	sound := audio.OpenAudioEngine(&cfg.Audio, audioSrc)
	defer sound.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var session *reveal.Session
	if *headlessFlag {
		session, err = runHeadless(ctx, cfg, outcome, sound, src)
	} else {
		session, err = runTerminal(ctx, cfg, outcome, sound, src)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "grade-unboxing: %v\n", err)
		os.Exit(1)
	}

	if session != nil {
		played, dropped := sound.GetStats()
		log.Printf("main: session %s %v, sounds played=%d dropped=%d", session.ID, session.Reason(), played, dropped)
		result := "hidden"
		if session.Animation().Revealed {
			result = outcome.String()
		}
		fmt.Printf("Result: %s (%v)\n", result, session.Reason())
	}
}

// runHeadless plays one session against a log surface on stdout
func runHeadless(ctx context.Context, cfg *config.Config, outcome grade.Symbol, sound reveal.Sounder, src rng.Source) (*reveal.Session, error) {
	loop := engine.NewLoop(constants.LoopTaskBuffer)
	surface := render.NewLogSurface(os.Stdout, *widthFlag, loop)

	mgr := reveal.NewManager(cfg.Reveal, loop, surface, sound, src)
	mgr.OnClose = func(*reveal.Session) {
		loop.Stop()
	}

	return play(ctx, loop, mgr, outcome)
}

// runTerminal draws the overlay with tcell and maps keys to reveal inputs
func runTerminal(ctx context.Context, cfg *config.Config, outcome grade.Symbol, sound *audio.AudioEngine, src rng.Source) (*reveal.Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()
	defer core.SetResetHook(nil)

	loop := engine.NewLoop(constants.LoopTaskBuffer)
	surface := render.NewTerminalSurface(screen, loop, cfg.Reveal.SlotWidth, cfg.Reveal.SlotHeight)

	mgr := reveal.NewManager(cfg.Reveal, loop, surface, sound, src)
	mgr.OnClose = func(*reveal.Session) {
		// Keep the result visible briefly before leaving
		loop.After(constants.ResultHoldDuration, loop.Stop)
	}

	// Input polling; PollEvent returns nil once the screen is finalized
	loop.Go(func(stop <-chan struct{}) {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !loop.Post(func() { handleEvent(ev, mgr, sound, surface, loop) }) {
				return
			}
		}
	})

	loop.Go(func(stop <-chan struct{}) {
		ticker := time.NewTicker(constants.FrameUpdateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if !loop.Post(surface.Frame) {
					return
				}
			}
		}
	})

	return play(ctx, loop, mgr, outcome)
}

// keyAction is what a key asks the program to do
type keyAction int

const (
	actionSkip keyAction = iota
	actionCancel
	actionMute
)

// muter toggles audio, reporting whether sound is now on
type muter interface {
	ToggleMute() bool
}

// handleEvent runs on the loop goroutine
func handleEvent(ev tcell.Event, mgr *reveal.Manager, sound muter, surface *render.TerminalSurface, loop *engine.Loop) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		surface.Resize()
	case *tcell.EventKey:
		action, ok := actionFor(e)
		if !ok {
			return
		}
		if action == actionMute {
			log.Printf("main: audio enabled=%t", sound.ToggleMute())
			return
		}
		if mgr.Active() == nil {
			// Skip or cancel leaves once the overlay is gone
			loop.Stop()
			return
		}
		if action == actionSkip {
			mgr.HandleInput(reveal.InputSkip)
		} else {
			mgr.HandleInput(reveal.InputCancel)
		}
	}
}

// actionFor maps a key to an action
func actionFor(e *tcell.EventKey) (keyAction, bool) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionCancel, true
	case tcell.KeyEnter:
		return actionSkip, true
	case tcell.KeyRune:
		switch e.Rune() {
		case ' ':
			return actionSkip, true
		case 'q':
			return actionCancel, true
		case 'm':
			return actionMute, true
		}
	}
	return 0, false
}

// play starts a session for outcome on the loop and runs the loop until it stops
func play(ctx context.Context, loop *engine.Loop, mgr *reveal.Manager, outcome grade.Symbol) (*reveal.Session, error) {
	var session *reveal.Session
	var startErr error
	if !loop.Post(func() {
		session, startErr = mgr.Start(outcome)
		if startErr != nil {
			loop.Stop()
		}
	}) {
		return nil, engine.ErrLoopStopped
	}

	err := loop.Run(ctx)
	if startErr != nil {
		return nil, fmt.Errorf("start: %w", startErr)
	}
	if err != nil && !errors.Is(err, engine.ErrLoopStopped) && !errors.Is(err, context.Canceled) {
		return nil, err
	}
	return session, nil
}
