package flow

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/modal"
	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// PaymentState is the observable state of the pay action.
type PaymentState string

// Payment flow states. Validation runs synchronously inside Submit, so the
// machine is only ever observed idle or submitting.
const (
	PayStateIdle       PaymentState = "idle"
	PayStateSubmitting PaymentState = "submitting"
)

// Pay button labels.
const (
	PayLabelIdle = "Donate Now"
	PayLabelBusy = "Processing..."
)

// ButtonView is the render description of the pay action.
type ButtonView struct {
	Enabled bool
	Label   string
	Spinner bool
}

// ConfirmContent is the content of the payment confirmation modal.
type ConfirmContent struct {
	Success bool
	Title   string
	Message string
	// ShowSecondary controls the "donate again" action, present only on
	// success.
	ShowSecondary bool
}

// PaymentFlow drives one simulated payment attempt at a time: validate,
// disable the pay action, wait out the simulated gateway latency, resolve
// the outcome, present the confirmation modal and restore the button.
type PaymentFlow struct {
	amounts *AmountSelector
	methods *MethodSelector
	outcome OutcomeSource
	sched   modal.Scheduler
	latency time.Duration
	confirm *modal.Modal
	persist func()

	mu      sync.Mutex
	state   PaymentState
	attempt *models.PaymentAttempt
}

// NewPaymentFlow wires the payment submission flow. confirm is the payment
// confirmation modal; persist stores the current preferences before
// submission begins.
func NewPaymentFlow(
	amounts *AmountSelector,
	methods *MethodSelector,
	outcome OutcomeSource,
	sched modal.Scheduler,
	latency time.Duration,
	confirm *modal.Modal,
	persist func(),
) *PaymentFlow {
	return &PaymentFlow{
		amounts: amounts,
		methods: methods,
		outcome: outcome,
		sched:   sched,
		latency: latency,
		confirm: confirm,
		persist: persist,
		state:   PayStateIdle,
	}
}

// Submit runs one pay action. An invalid amount keeps the flow idle with the
// inline error showing and never opens a modal. While an attempt is in
// flight the pay action is disabled, so a second submit is a no-op.
func (p *PaymentFlow) Submit() {
	p.mu.Lock()
	if p.state != PayStateIdle {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	v := p.amounts.Validate()
	if !v.Valid {
		logger.Log.Debug().Str("raw", p.amounts.Raw()).Msg("Pay blocked by invalid amount")
		return
	}

	if p.persist != nil {
		p.persist()
	}

	method := p.methods.Active()
	attempt := &models.PaymentAttempt{
		ID:        uuid.NewString(),
		Amount:    v.Amount,
		Method:    method,
		Outcome:   models.OutcomePending,
		StartedAt: time.Now(),
	}

	p.mu.Lock()
	if p.state != PayStateIdle {
		p.mu.Unlock()
		return
	}
	p.state = PayStateSubmitting
	p.attempt = attempt
	p.mu.Unlock()

	logger.Log.Info().
		Str("attempt_id", attempt.ID).
		Str("amount", attempt.Amount.StringFixed(2)).
		Str("method", string(attempt.Method)).
		Msg("Payment attempt started")

	p.sched.After(p.latency, p.resolve)
}

// resolve finishes the in-flight attempt: draws the outcome, opens the
// confirmation modal and restores the pay action. The restore is
// unconditional so the button can never be left stuck disabled, even if
// modal presentation panics.
func (p *PaymentFlow) resolve() {
	p.mu.Lock()
	if p.state != PayStateSubmitting || p.attempt == nil {
		p.mu.Unlock()
		return
	}
	attempt := p.attempt
	success := p.outcome.Draw()
	if success {
		attempt.Outcome = models.OutcomeSuccess
	} else {
		attempt.Outcome = models.OutcomeFailure
	}
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.state = PayStateIdle
		p.mu.Unlock()
	}()

	logger.Log.Info().
		Str("attempt_id", attempt.ID).
		Str("outcome", string(attempt.Outcome)).
		Msg("Payment attempt resolved")

	p.confirm.Open(confirmContentFor(attempt))
}

// confirmContentFor builds the confirmation modal content for a resolved
// attempt.
func confirmContentFor(attempt *models.PaymentAttempt) ConfirmContent {
	if attempt.Outcome == models.OutcomeSuccess {
		return ConfirmContent{
			Success: true,
			Title:   "Donation Successful!",
			Message: fmt.Sprintf(
				"Your donation of $%s USD via %s was successful! Thank you deeply for your generosity.",
				attempt.Amount.StringFixed(2),
				attempt.Method.DisplayName(),
			),
			ShowSecondary: true,
		}
	}
	return ConfirmContent{
		Title:   "Donation Failed",
		Message: "The payment could not be completed. Please check your details or try again.",
	}
}

// DonateAgain is the confirmation modal's secondary action. It only closes
// the modal.
func (p *PaymentFlow) DonateAgain() {
	p.confirm.Close()
}

// ClearAttempt drops the ephemeral attempt. Wired to the confirmation
// modal's hidden callback.
func (p *PaymentFlow) ClearAttempt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attempt = nil
}

// State returns the current flow state.
func (p *PaymentFlow) State() PaymentState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Attempt returns a copy of the current attempt, if one exists.
func (p *PaymentFlow) Attempt() (models.PaymentAttempt, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attempt == nil {
		return models.PaymentAttempt{}, false
	}
	return *p.attempt, true
}

// Button returns the render description of the pay action for the current
// state.
func (p *PaymentFlow) Button() ButtonView {
	if p.State() == PayStateSubmitting {
		return ButtonView{Label: PayLabelBusy, Spinner: true}
	}
	return ButtonView{Enabled: true, Label: PayLabelIdle}
}
