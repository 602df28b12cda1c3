package modal

import "sync"

// ScrollLock suppresses background scrolling while any modal is open.
//
// A single shared flag toggled from both modals would let closing one
// re-enable scrolling while the other is still open. Counting holders
// removes that race: scrolling resumes only once every holder has released.
type ScrollLock struct {
	mu      sync.Mutex
	holders int
}

// Acquire suppresses scrolling for one more holder.
func (l *ScrollLock) Acquire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.holders++
}

// Release drops one holder. Releasing below zero is ignored.
func (l *ScrollLock) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.holders > 0 {
		l.holders--
	}
}

// Locked reports whether background scrolling is currently suppressed.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}
