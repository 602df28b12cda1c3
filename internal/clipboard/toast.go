package clipboard

import (
	"sync"
	"time"

	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// ToastState is the visibility state of the copy toast.
type ToastState string

// Toast states. The toast fades out before it is removed from the render
// tree; removal waits for the fade to complete rather than racing it on a
// second bare timer, which would flash the element.
const (
	ToastHidden  ToastState = "hidden"
	ToastVisible ToastState = "visible"
	ToastFading  ToastState = "fading"
)

// Toast messages.
const (
	MsgCopied     = "Details copied!"
	MsgCopyFailed = "Could not copy details."
)

// ToastView is the render description of the toast.
type ToastView struct {
	State   ToastState
	Message string
}

// Toast is the transient copy-status notification.
type Toast struct {
	sched   modal.Scheduler
	visible time.Duration
	fade    time.Duration

	mu      sync.Mutex
	state   ToastState
	message string
	timer   modal.Handle
}

// NewToast creates a hidden toast. visible is how long the toast stays fully
// shown, fade the transition duration before removal.
func NewToast(sched modal.Scheduler, visible, fade time.Duration) *Toast {
	return &Toast{sched: sched, visible: visible, fade: fade, state: ToastHidden}
}

// Show displays a message, restarting the dismiss cycle if the toast is
// already up.
func (t *Toast) Show(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.state = ToastVisible
	t.message = message
	t.timer = t.sched.After(t.visible, t.startFade)
}

// startFade begins the fade-out transition.
func (t *Toast) startFade() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != ToastVisible {
		return
	}
	t.state = ToastFading
	t.timer = t.sched.After(t.fade, t.remove)
}

// remove takes the toast out of the render tree once the fade has completed.
func (t *Toast) remove() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != ToastFading {
		return
	}
	t.state = ToastHidden
	t.message = ""
	t.timer = nil
}

// View returns the render description of the toast.
func (t *Toast) View() ToastView {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ToastView{State: t.state, Message: t.message}
}

// Copier couples a clipboard writer with the toast feedback.
type Copier struct {
	writer Writer
	toast  *Toast
}

// NewCopier creates a copier reporting through the given toast.
func NewCopier(writer Writer, toast *Toast) *Copier {
	return &Copier{writer: writer, toast: toast}
}

// CopyBankDetails copies the account block for the given payload. Methods
// without bank details are a no-op. Clipboard failure is surfaced only
// through the toast, never as an error to the caller.
func (c *Copier) CopyBankDetails(payload models.MethodPayload) {
	if payload.Bank == nil || !payload.Copyable {
		return
	}

	if err := c.writer.Write(BlockFor(*payload.Bank)); err != nil {
		logger.Log.Warn().Err(err).Msg("Clipboard copy failed")
		c.toast.Show(MsgCopyFailed)
		return
	}
	c.toast.Show(MsgCopied)
}
