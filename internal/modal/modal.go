// Package modal implements the shared overlay dialog lifecycle.
//
// Both the payment confirmation dialog and the per-cause donation dialog are
// instances of the same state machine: open renders content and suppresses
// background scrolling, close runs in two phases (an animate-out period
// followed by full removal), and a pointer interaction on the backdrop counts
// as a close request.
package modal

import (
	"sync"
	"time"

	"gitlab.com/donate4khmer/donationflow/internal/logger"
)

// State is the lifecycle state of a modal.
type State string

// Modal lifecycle states.
const (
	StateClosed  State = "closed"
	StateOpening State = "opening"
	StateOpen    State = "open"
	StateClosing State = "closing"
)

// ClickTarget distinguishes where inside the overlay a pointer event landed.
type ClickTarget string

// Click targets for HandleClick.
const (
	TargetBackdrop ClickTarget = "backdrop"
	TargetContent  ClickTarget = "content"
)

// Modal is one overlay dialog instance.
type Modal struct {
	name       string
	closeDelay time.Duration
	sched      Scheduler
	lock       *ScrollLock

	// onHidden runs once the modal is fully hidden, after the close
	// animation. Dialogs use it to reset their form fields.
	onHidden func()

	mu         sync.Mutex
	state      State
	content    any
	closeTimer Handle
}

// New creates a closed modal. closeDelay is the animate-out duration of the
// two-phase close; zero closes immediately. The payment confirmation dialog
// has no close animation, the donation dialog matches its 300ms CSS
// transition.
func New(name string, closeDelay time.Duration, sched Scheduler, lock *ScrollLock) *Modal {
	return &Modal{
		name:       name,
		closeDelay: closeDelay,
		sched:      sched,
		lock:       lock,
		state:      StateClosed,
	}
}

// SetOnHidden registers a callback invoked when the modal becomes fully
// hidden. Must be called before first use.
func (m *Modal) SetOnHidden(fn func()) {
	m.onHidden = fn
}

// Open renders content and makes the modal visible, suppressing background
// scrolling. Opening while the close animation is still playing cancels the
// close and keeps the scroll lock held.
func (m *Modal) Open(content any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateClosed:
		m.lock.Acquire()
	case StateClosing:
		// Reopened mid-animation. The lock is released only on full hide,
		// so it is still held.
		if m.closeTimer != nil {
			m.closeTimer.Stop()
			m.closeTimer = nil
		}
	case StateOpen, StateOpening:
		// Replacing content on an already visible modal.
	}

	m.content = content
	m.state = StateOpen
	logger.Log.Debug().Str("modal", m.name).Msg("Modal opened")
}

// Close starts the two-phase close. With a zero close delay the modal hides
// immediately; otherwise it enters the closing state and fully hides once the
// animation duration elapses.
func (m *Modal) Close() {
	m.mu.Lock()

	if m.state != StateOpen && m.state != StateOpening {
		m.mu.Unlock()
		return
	}

	if m.closeDelay <= 0 {
		m.finishCloseLocked()
		return
	}

	m.state = StateClosing
	m.closeTimer = m.sched.After(m.closeDelay, m.finishClose)
	m.mu.Unlock()
}

// finishClose completes the close after the animation.
func (m *Modal) finishClose() {
	m.mu.Lock()
	if m.state != StateClosing {
		m.mu.Unlock()
		return
	}
	m.finishCloseLocked()
}

// finishCloseLocked hides the modal, releases the scroll lock and fires the
// hidden callback. Expects m.mu held; releases it.
func (m *Modal) finishCloseLocked() {
	m.state = StateClosed
	m.content = nil
	m.closeTimer = nil
	onHidden := m.onHidden
	m.mu.Unlock()

	m.lock.Release()
	logger.Log.Debug().Str("modal", m.name).Msg("Modal hidden")
	if onHidden != nil {
		onHidden()
	}
}

// HandleClick interprets a pointer interaction inside the overlay. A click on
// the backdrop closes the modal; a click on the content does nothing.
func (m *Modal) HandleClick(target ClickTarget) {
	if target == TargetBackdrop {
		m.Close()
	}
}

// State returns the current lifecycle state.
func (m *Modal) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Content returns the rendered content, or nil when hidden.
func (m *Modal) Content() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.content
}

// Visible reports whether the modal occupies the screen (open or animating
// out).
func (m *Modal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == StateOpen || m.state == StateOpening || m.state == StateClosing
}
