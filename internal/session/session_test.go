package session

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gitlab.com/donate4khmer/donationflow/internal/clipboard"
	"gitlab.com/donate4khmer/donationflow/internal/config"
	"gitlab.com/donate4khmer/donationflow/internal/donation"
	"gitlab.com/donate4khmer/donationflow/internal/flow"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
	"gitlab.com/donate4khmer/donationflow/internal/models"
	"gitlab.com/donate4khmer/donationflow/internal/prefs"
)

type captureWriter struct {
	written []string
}

func (w *captureWriter) Write(text string) error {
	w.written = append(w.written, text)
	return nil
}

type sessionFixture struct {
	session *Session
	store   *prefs.MemStore
	sched   *modal.ManualScheduler
	writer  *captureWriter
	cfg     *config.Config
}

func newSessionFixture(outcome flow.OutcomeSource, store *prefs.MemStore) *sessionFixture {
	if store == nil {
		store = &prefs.MemStore{}
	}
	fx := &sessionFixture{
		store:  store,
		sched:  modal.NewManualScheduler(),
		writer: &captureWriter{},
		cfg: &config.Config{
			PrefsPath:          "unused",
			PaymentSuccessRate: config.DefaultSuccessRate,
			PaymentLatency:     config.DefaultLatency,
			ModalCloseDelay:    config.DefaultModalClose,
			ToastVisible:       config.DefaultToastVisible,
			ToastFade:          config.DefaultToastFade,
		},
	}
	fx.session = New(fx.cfg, fx.store, fx.sched, outcome, fx.writer)
	return fx
}

func TestNewSessionDefaults(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)
	view := fx.session.Render()

	require.Equal(t, "", view.Amount.Raw)
	require.False(t, view.Amount.ShowError)
	require.Equal(t, models.MethodCreditCard, view.Method.Active)
	require.Equal(t, "Card Donation Details", view.Method.Payload.Title)
	require.Equal(t, flow.ButtonView{Enabled: true, Label: flow.PayLabelIdle}, view.PayButton)
	require.Len(t, view.Cards, 6)
	require.Equal(t, clipboard.ToastHidden, view.Toast.State)
	require.Equal(t, modal.StateClosed, view.ConfirmState)
	require.Nil(t, view.Confirm)
	require.Equal(t, modal.StateClosed, view.DonationState)
	require.False(t, view.ScrollLocked)
}

func TestNewSessionRestoresStoredPreferences(t *testing.T) {
	t.Parallel()

	store := &prefs.MemStore{}
	store.Save(models.Preferences{Amount: "25", Method: models.MethodBankTransfer})

	fx := newSessionFixture(flow.FixedOutcome(true), store)
	view := fx.session.Render()

	require.Equal(t, "25", view.Amount.Raw)
	require.Equal(t, models.MethodBankTransfer, view.Method.Active)

	var active []string
	for _, preset := range view.Amount.Presets {
		if preset.Active {
			active = append(active, preset.Value.String())
		}
	}
	require.Equal(t, []string{"25"}, active)
}

func TestNewSessionFallsBackOnUnknownStoredMethod(t *testing.T) {
	t.Parallel()

	store := &prefs.MemStore{}
	store.Save(models.Preferences{Amount: "abc", Method: "paypal"})

	fx := newSessionFixture(flow.FixedOutcome(true), store)
	view := fx.session.Render()

	// The raw text comes back verbatim; the method falls back to the default.
	require.Equal(t, "abc", view.Amount.Raw)
	require.Equal(t, models.MethodCreditCard, view.Method.Active)
}

func TestMutationsPersistPreferences(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	fx.session.EnterAmount("12.50")
	fx.session.SelectMethod(models.MethodWingMoney)

	stored, ok := fx.store.Load()
	require.True(t, ok)
	require.Equal(t, models.Preferences{Amount: "12.50", Method: models.MethodWingMoney}, stored)

	fx.session.SelectQuickAmount(decimal.NewFromInt(50))
	stored, _ = fx.store.Load()
	require.Equal(t, "50", stored.Amount)
}

func TestSuccessfulPaymentEndToEnd(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	fx.session.EnterAmount("25")
	fx.session.SelectMethod(models.MethodBankTransfer)
	fx.session.Pay()

	view := fx.session.Render()
	require.Equal(t, flow.ButtonView{Label: flow.PayLabelBusy, Spinner: true}, view.PayButton)
	require.Equal(t, modal.StateClosed, view.ConfirmState)

	fx.sched.Advance(fx.cfg.PaymentLatency)

	view = fx.session.Render()
	require.Equal(t, modal.StateOpen, view.ConfirmState)
	require.NotNil(t, view.Confirm)
	require.True(t, view.Confirm.Success)
	require.Contains(t, view.Confirm.Message, "$25.00")
	require.Contains(t, view.Confirm.Message, "Bank Transfer")
	require.True(t, view.Confirm.ShowSecondary)
	require.True(t, view.ScrollLocked)
	require.Equal(t, flow.ButtonView{Enabled: true, Label: flow.PayLabelIdle}, view.PayButton)

	// Dismissing the confirmation clears the attempt and unlocks scrolling.
	fx.session.Payment.DonateAgain()

	view = fx.session.Render()
	require.Equal(t, modal.StateClosed, view.ConfirmState)
	require.Nil(t, view.Confirm)
	require.False(t, view.ScrollLocked)
	_, pending := fx.session.Payment.Attempt()
	require.False(t, pending)
}

func TestFailedPaymentEndToEnd(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(false), nil)

	fx.session.EnterAmount("10")
	fx.session.Pay()
	fx.sched.Advance(fx.cfg.PaymentLatency)

	view := fx.session.Render()
	require.Equal(t, modal.StateOpen, view.ConfirmState)
	require.NotNil(t, view.Confirm)
	require.False(t, view.Confirm.Success)
	require.False(t, view.Confirm.ShowSecondary)
	require.Equal(t, "Donation Failed", view.Confirm.Title)
}

func TestPayWithInvalidAmountShowsInlineError(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	fx.session.EnterAmount("abc")
	fx.session.Pay()

	view := fx.session.Render()
	require.True(t, view.Amount.ShowError)
	require.Equal(t, modal.StateClosed, view.ConfirmState)
	require.Equal(t, flow.ButtonView{Enabled: true, Label: flow.PayLabelIdle}, view.PayButton)
	require.Zero(t, fx.sched.Pending())
}

func TestCopyMethodDetails(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	// Only bank transfer exposes copyable details.
	fx.session.CopyMethodDetails()
	require.Empty(t, fx.writer.written)

	fx.session.SelectMethod(models.MethodBankTransfer)
	fx.session.CopyMethodDetails()

	require.Equal(t, []string{clipboard.BlockFor(models.OrgBankAccount)}, fx.writer.written)
	view := fx.session.Render()
	require.Equal(t, clipboard.ToastVisible, view.Toast.State)
	require.Equal(t, clipboard.MsgCopied, view.Toast.Message)

	// The toast dismisses itself after the visible and fade periods.
	fx.sched.Advance(fx.cfg.ToastVisible + fx.cfg.ToastFade)
	require.Equal(t, clipboard.ToastHidden, fx.session.Render().Toast.State)
}

func TestDonationDialogEndToEnd(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	before, ok := fx.session.Ledger.Get("education")
	require.True(t, ok)

	fx.session.OpenDonationDialog("education")

	view := fx.session.Render()
	require.Equal(t, modal.StateOpen, view.DonationState)
	require.True(t, view.ScrollLocked)
	require.Len(t, view.Donation.Causes, 6)

	fx.session.SubmitDonation(donation.Form{
		DonorName: "Dara",
		Amount:    "50",
		CauseID:   "education",
	})

	after, _ := fx.session.Ledger.Get("education")
	require.True(t, after.CurrentAmount.Equal(before.CurrentAmount.Add(decimal.NewFromInt(50))))
	require.True(t, fx.session.Render().Donation.ShowSuccess)

	// The dialog closes itself: 2s acknowledgment, then the close animation.
	fx.sched.Advance(donationAutoClose)
	require.Equal(t, modal.StateClosing, fx.session.Render().DonationState)

	fx.sched.Advance(fx.cfg.ModalCloseDelay)
	view = fx.session.Render()
	require.Equal(t, modal.StateClosed, view.DonationState)
	require.False(t, view.ScrollLocked)
	require.False(t, view.Donation.ShowSuccess)
}

func TestConcurrentModalsShareScrollLock(t *testing.T) {
	t.Parallel()

	fx := newSessionFixture(flow.FixedOutcome(true), nil)

	fx.session.EnterAmount("5")
	fx.session.Pay()
	fx.sched.Advance(fx.cfg.PaymentLatency)
	fx.session.OpenDonationDialog("")

	require.True(t, fx.session.Render().ScrollLocked)

	// Closing one overlay keeps the page locked while the other is up.
	fx.session.Payment.DonateAgain()
	require.True(t, fx.session.Render().ScrollLocked)

	fx.session.Donation.Close()
	fx.sched.Advance(fx.cfg.ModalCloseDelay)
	require.False(t, fx.session.Render().ScrollLocked)
}
