package engine

import (
	"sort"
	"sync"
	"time"
)

type timedTask struct {
	due time.Duration
	seq uint64
	fn  func()
}

// ManualScheduler provides a controllable clock and timer queue for testing
// Tasks run only inside Advance/RunUntilIdle, in due order, FIFO for equal deadlines
type ManualScheduler struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
	seq     uint64
	tasks   []timedTask
}

// NewManualScheduler creates a scheduler whose clock starts at startTime
func NewManualScheduler(startTime time.Time) *ManualScheduler {
	return &ManualScheduler{start: startTime}
}

// After queues fn to run once the clock has advanced by d
func (m *ManualScheduler) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	m.tasks = append(m.tasks, timedTask{due: m.elapsed + d, seq: m.seq, fn: fn})
}

// Now returns the current mocked time
func (m *ManualScheduler) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.start.Add(m.elapsed)
}

// Elapsed returns time advanced since creation
func (m *ManualScheduler) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Pending returns the number of queued tasks
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// NextDue returns the delay until the earliest task, false if none queued
func (m *ManualScheduler) NextDue() (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.tasks) == 0 {
		return 0, false
	}
	m.sortLocked()
	return m.tasks[0].due - m.elapsed, true
}

// Advance moves the clock forward by d, running every task that comes due
// Tasks scheduled by running tasks also run if they fall within the window
func (m *ManualScheduler) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.elapsed + d
	m.mu.Unlock()

	for {
		task, ok := m.popDue(target)
		if !ok {
			break
		}
		task.fn()
	}

	m.mu.Lock()
	m.elapsed = target
	m.mu.Unlock()
}

// RunUntilIdle advances through queued tasks until none remain or limit tasks have run
// Returns the number of tasks executed
func (m *ManualScheduler) RunUntilIdle(limit int) int {
	ran := 0
	for ran < limit {
		m.mu.Lock()
		if len(m.tasks) == 0 {
			m.mu.Unlock()
			return ran
		}
		m.sortLocked()
		task := m.tasks[0]
		m.tasks = m.tasks[1:]
		if task.due > m.elapsed {
			m.elapsed = task.due
		}
		m.mu.Unlock()

		task.fn()
		ran++
	}
	return ran
}

func (m *ManualScheduler) popDue(target time.Duration) (timedTask, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.tasks) == 0 {
		return timedTask{}, false
	}
	m.sortLocked()
	task := m.tasks[0]
	if task.due > target {
		return timedTask{}, false
	}
	m.tasks = m.tasks[1:]
	if task.due > m.elapsed {
		m.elapsed = task.due
	}
	return task, true
}

func (m *ManualScheduler) sortLocked() {
	sort.Slice(m.tasks, func(i, j int) bool {
		if m.tasks[i].due != m.tasks[j].due {
			return m.tasks[i].due < m.tasks[j].due
		}
		return m.tasks[i].seq < m.tasks[j].seq
	})
}
