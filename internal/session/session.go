// Package session wires every component of the donation page controller into
// one session-scoped context: preference store, selectors, ledger, payment
// and donation flows, modals and the copy toast. Nothing is ambient; every
// component receives its collaborators explicitly so the whole flow runs
// without a rendering surface.
package session

import (
	"time"

	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/clipboard"
	"gitlab.com/donate4khmer/donationflow/internal/config"
	"gitlab.com/donate4khmer/donationflow/internal/donation"
	"gitlab.com/donate4khmer/donationflow/internal/flow"
	"gitlab.com/donate4khmer/donationflow/internal/ledger"
	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
	"gitlab.com/donate4khmer/donationflow/internal/models"
	"gitlab.com/donate4khmer/donationflow/internal/prefs"
)

// donationAutoClose is how long the success acknowledgment stays up before
// the donation dialog closes itself.
const donationAutoClose = 2 * time.Second

// Session is one visitor session of the donation page controller.
type Session struct {
	store prefs.Store

	ScrollLock    *modal.ScrollLock
	Ledger        *ledger.Ledger
	Amounts       *flow.AmountSelector
	Methods       *flow.MethodSelector
	Payment       *flow.PaymentFlow
	Donation      *donation.Flow
	Toast         *clipboard.Toast
	ConfirmModal  *modal.Modal
	DonationModal *modal.Modal

	copier *clipboard.Copier
}

// New builds a session. The outcome source and clipboard writer are injected
// so tests can force deterministic payments and observe copied text. Stored
// preferences are loaded once here; absence falls back to an empty amount
// and the credit card method.
func New(
	cfg *config.Config,
	store prefs.Store,
	sched modal.Scheduler,
	outcome flow.OutcomeSource,
	writer clipboard.Writer,
) *Session {
	s := &Session{store: store}

	s.ScrollLock = &modal.ScrollLock{}
	s.ConfirmModal = modal.New("payment-confirm", 0, sched, s.ScrollLock)
	s.DonationModal = modal.New("donation-cause", cfg.ModalCloseDelay, sched, s.ScrollLock)

	s.Ledger = ledger.NewSeeded()
	s.Amounts = flow.NewAmountSelector(s.persistPrefs)
	s.Methods = flow.NewMethodSelector(s.persistPrefs)
	s.Payment = flow.NewPaymentFlow(
		s.Amounts, s.Methods, outcome, sched, cfg.PaymentLatency, s.ConfirmModal, s.persistPrefs,
	)
	s.ConfirmModal.SetOnHidden(s.Payment.ClearAttempt)
	s.Donation = donation.NewFlow(s.Ledger, s.DonationModal, sched, donationAutoClose)

	s.Toast = clipboard.NewToast(sched, cfg.ToastVisible, cfg.ToastFade)
	s.copier = clipboard.NewCopier(writer, s.Toast)

	if stored, ok := store.Load(); ok {
		s.Amounts.Restore(stored.Amount)
		s.Methods.Restore(stored.Method)
		logger.Log.Debug().
			Str("amount", stored.Amount).
			Str("method", string(stored.Method)).
			Msg("Preferences restored")
	}

	return s
}

// persistPrefs writes the current raw amount and method to the store. Called
// on every amount or method mutation and before each payment submission.
func (s *Session) persistPrefs() {
	s.store.Save(models.Preferences{
		Amount: s.Amounts.Raw(),
		Method: s.Methods.Active(),
	})
}

// EnterAmount handles free-text amount entry.
func (s *Session) EnterAmount(raw string) {
	s.Amounts.SetAmount(raw)
}

// SelectQuickAmount handles a quick-amount button press.
func (s *Session) SelectQuickAmount(value decimal.Decimal) {
	s.Amounts.SelectQuickAmount(value)
}

// SelectMethod handles a payment method card selection.
func (s *Session) SelectMethod(m models.PaymentMethod) {
	s.Methods.Select(m)
}

// Pay handles the pay action.
func (s *Session) Pay() {
	s.Payment.Submit()
}

// CopyMethodDetails copies the active method's account details, if it has
// any, reporting through the toast.
func (s *Session) CopyMethodDetails() {
	s.copier.CopyBankDetails(s.Methods.View().Payload)
}

// OpenDonationDialog opens the per-cause donation dialog, optionally with a
// cause preselected from its project card.
func (s *Session) OpenDonationDialog(preselect string) {
	s.Donation.Open(preselect)
}

// SubmitDonation handles the donation form submit.
func (s *Session) SubmitDonation(form donation.Form) {
	s.Donation.Submit(form)
}

// View is the full render description of the page controller's state.
type View struct {
	Amount        flow.AmountView
	Method        flow.MethodView
	PayButton     flow.ButtonView
	Cards         []ledger.Card
	Toast         clipboard.ToastView
	ConfirmState  modal.State
	Confirm       *flow.ConfirmContent
	DonationState modal.State
	Donation      donation.View
	ScrollLocked  bool
}

// Render assembles the current view of every component.
func (s *Session) Render() View {
	v := View{
		Amount:        s.Amounts.View(),
		Method:        s.Methods.View(),
		PayButton:     s.Payment.Button(),
		Cards:         s.Ledger.Cards(),
		Toast:         s.Toast.View(),
		ConfirmState:  s.ConfirmModal.State(),
		DonationState: s.DonationModal.State(),
		Donation:      s.Donation.View(),
		ScrollLocked:  s.ScrollLock.Locked(),
	}
	if content, ok := s.ConfirmModal.Content().(flow.ConfirmContent); ok {
		v.Confirm = &content
	}
	return v
}
