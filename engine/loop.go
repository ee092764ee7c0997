package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/grade-unboxing/core"
)

// ErrLoopStopped is returned by Run after Stop
var ErrLoopStopped = errors.New("loop stopped")

// Loop is a single-goroutine task runner
// Timers and input producers post closures; Run executes them in order on the caller's goroutine
type Loop struct {
	tasks    chan func()
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool
}

// NewLoop creates a loop with the given task buffer
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		tasks:    make(chan func(), buffer),
		stopChan: make(chan struct{}),
	}
}

// Post queues fn for execution, returns false if the loop has stopped
// Blocks while the buffer is full
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopChan:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.stopChan:
		return false
	}
}

// After posts fn once d has elapsed
func (l *Loop) After(d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		l.Post(fn)
	})
}

// Now returns wall time
func (l *Loop) Now() time.Time {
	return time.Now()
}

// Go runs producer on its own goroutine with crash handling
func (l *Loop) Go(producer func(stop <-chan struct{})) {
	core.Go(func() {
		producer(l.stopChan)
	})
}

// Run executes posted tasks until ctx is done or Stop is called
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("loop already running")
	}
	defer l.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.stopChan:
			return ErrLoopStopped
		case fn := <-l.tasks:
			fn()
		}
	}
}

// Stop halts the loop, pending tasks are discarded
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
