// Package donation implements the per-cause donation dialog flow: field
// validation, applying accepted donations to the ledger, and the success
// acknowledgment with automatic close.
package donation

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/flow"
	"gitlab.com/donate4khmer/donationflow/internal/ledger"
	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
)

// Form is the donation dialog's field values as entered.
type Form struct {
	DonorName string
	Amount    string
	CauseID   string
}

// FieldErrors marks each failed check independently; several can be set at
// once.
type FieldErrors struct {
	DonorName bool
	Amount    bool
	Cause     bool
}

// Any reports whether any field failed.
func (e FieldErrors) Any() bool {
	return e.DonorName || e.Amount || e.Cause
}

// CauseOption is one entry of the cause dropdown.
type CauseOption struct {
	ID       string
	Title    string
	Selected bool
}

// View is the render description of the donation dialog.
type View struct {
	Causes      []CauseOption
	Errors      FieldErrors
	ShowSuccess bool
}

// Flow drives one donation dialog. Each submission runs
// editing -> validating -> rejected | accepted.
type Flow struct {
	ledger    *ledger.Ledger
	dialog    *modal.Modal
	sched     modal.Scheduler
	autoClose time.Duration

	mu          sync.Mutex
	causes      []CauseOption
	errors      FieldErrors
	showSuccess bool
}

// NewFlow wires the donation submission flow to its dialog and the ledger.
// The flow registers itself as the dialog's hidden callback so form state is
// reset once the close animation finishes.
func NewFlow(l *ledger.Ledger, dialog *modal.Modal, sched modal.Scheduler, autoClose time.Duration) *Flow {
	f := &Flow{ledger: l, dialog: dialog, sched: sched, autoClose: autoClose}
	dialog.SetOnHidden(f.reset)
	return f
}

// Open shows the dialog. The cause dropdown is rebuilt from the live project
// list on every open so it reflects current titles; the preselect is honored
// only if that id is still present.
func (f *Flow) Open(preselect string) {
	options := make([]CauseOption, 0, 8)
	for _, p := range f.ledger.List() {
		options = append(options, CauseOption{
			ID:       p.ID,
			Title:    p.Title,
			Selected: p.ID == preselect,
		})
	}

	f.mu.Lock()
	f.causes = options
	f.errors = FieldErrors{}
	f.showSuccess = false
	f.mu.Unlock()

	f.dialog.Open(f.snapshot())
}

// Submit validates the form and, when accepted, applies the amount to the
// ledger, shows the success acknowledgment and schedules the automatic
// close. On rejection the dialog stays open with per-field indicators set.
func (f *Flow) Submit(form Form) {
	if !f.dialog.Visible() {
		return
	}

	errs := f.validate(form)

	f.mu.Lock()
	f.errors = errs
	if errs.Any() {
		f.mu.Unlock()
		logger.Log.Debug().
			Bool("name_error", errs.DonorName).
			Bool("amount_error", errs.Amount).
			Bool("cause_error", errs.Cause).
			Msg("Donation form rejected")
		f.refreshDialog()
		return
	}
	f.showSuccess = true
	f.mu.Unlock()

	amount, _ := flow.ParseAmount(form.Amount)
	f.ledger.ApplyDonation(form.CauseID, amount)
	f.refreshDialog()
	f.sched.After(f.autoClose, f.dialog.Close)
}

// validate runs the three independent field checks.
func (f *Flow) validate(form Form) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(form.DonorName) == "" {
		errs.DonorName = true
	}

	amount, ok := flow.ParseAmount(form.Amount)
	if !ok || amount.LessThanOrEqual(decimal.Zero) {
		errs.Amount = true
	}

	if form.CauseID == "" {
		errs.Cause = true
	} else if _, known := f.ledger.Get(form.CauseID); !known {
		errs.Cause = true
	}

	return errs
}

// Close requests the dialog's two-phase close.
func (f *Flow) Close() {
	f.dialog.Close()
}

// View returns the render description of the dialog.
func (f *Flow) View() View {
	return f.snapshot()
}

// snapshot copies the current dialog state.
func (f *Flow) snapshot() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	causes := make([]CauseOption, len(f.causes))
	copy(causes, f.causes)
	return View{Causes: causes, Errors: f.errors, ShowSuccess: f.showSuccess}
}

// refreshDialog re-renders the dialog content in place.
func (f *Flow) refreshDialog() {
	if f.dialog.Visible() {
		f.dialog.Open(f.snapshot())
	}
}

// reset clears form-derived state once the dialog is fully hidden.
func (f *Flow) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.causes = nil
	f.errors = FieldErrors{}
	f.showSuccess = false
}
