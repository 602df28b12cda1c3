package modal

import (
	"sort"
	"sync"
	"time"
)

// Scheduler runs a function after a delay. It is the only asynchronous
// boundary in the controller: payment latency, modal close animations, the
// copy toast and the donation auto-close all go through it, so tests can
// substitute a manual implementation and drive time explicitly.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
}

// Handle is a cancellable scheduled task.
type Handle interface {
	// Stop cancels the task. It reports whether the task was still pending.
	Stop() bool
}

// TimerScheduler is the production Scheduler backed by time.AfterFunc.
type TimerScheduler struct{}

// After schedules fn to run after d on its own goroutine.
func (TimerScheduler) After(d time.Duration, fn func()) Handle {
	return timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h timerHandle) Stop() bool {
	return h.timer.Stop()
}

// ManualScheduler is a deterministic Scheduler for tests. Tasks fire only
// when Advance moves the virtual clock past their due time, in due order.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	tasks  []*manualTask
}

type manualTask struct {
	sched   *ManualScheduler
	id      int
	due     time.Duration
	fn      func()
	stopped bool
}

// NewManualScheduler creates an empty manual scheduler at time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After registers fn to fire once the virtual clock advances by d.
func (s *ManualScheduler) After(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	task := &manualTask{sched: s, id: s.nextID, due: s.now + d, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Advance moves the virtual clock forward and runs every task that becomes
// due, in due order. Tasks may schedule further tasks; those run too if they
// fall within the advanced window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		task := s.popDueLocked(target)
		if task == nil {
			break
		}
		s.mu.Unlock()
		task.fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// Pending returns the number of tasks still waiting to fire.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, task := range s.tasks {
		if !task.stopped {
			n++
		}
	}
	return n
}

// popDueLocked removes and returns the earliest task due at or before target,
// advancing the clock to its due time.
func (s *ManualScheduler) popDueLocked(target time.Duration) *manualTask {
	var next *manualTask
	idx := -1
	for i, task := range s.tasks {
		if task.stopped || task.due > target {
			continue
		}
		if next == nil || task.due < next.due || (task.due == next.due && task.id < next.id) {
			next = task
			idx = i
		}
	}
	if next == nil {
		return nil
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	if next.due > s.now {
		s.now = next.due
	}
	sort.SliceStable(s.tasks, func(i, j int) bool { return s.tasks[i].due < s.tasks[j].due })
	return next
}

// Stop cancels a manually scheduled task.
func (t *manualTask) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.stopped {
		return false
	}
	for i, task := range t.sched.tasks {
		if task == t {
			t.sched.tasks = append(t.sched.tasks[:i], t.sched.tasks[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}
