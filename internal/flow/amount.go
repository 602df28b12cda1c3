// Package flow implements the donation amount and payment method selection
// state and the simulated payment submission state machine.
package flow

import (
	"regexp"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// amountRegex matches the leading numeric portion of the typed text: "25",
// "25.50", "25.", ".5", "1e3" and sign prefixes all parse, trailing garbage
// is ignored.
var amountRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// ParseAmount extracts a decimal amount from raw text. ok is false when no
// leading number exists.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	match := amountRegex.FindString(raw)
	if match == "" {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// AmountValidation is the result of validating the amount field.
type AmountValidation struct {
	Valid  bool
	Amount decimal.Decimal
}

// PresetView describes one quick-amount button.
type PresetView struct {
	Value  decimal.Decimal
	Active bool
}

// AmountView is the render description of the amount field and its presets.
type AmountView struct {
	Raw       string
	ShowError bool
	Presets   []PresetView
}

// AmountSelector owns the donation amount as typed. The raw text is kept
// verbatim (and persisted verbatim, valid or not) so the field always echoes
// exactly what the visitor entered.
type AmountSelector struct {
	mu        sync.Mutex
	raw       string
	showError bool
	persist   func()
}

// NewAmountSelector creates a selector with an empty amount. persist is
// invoked after every mutation to store the current preferences; nil is
// allowed for tests.
func NewAmountSelector(persist func()) *AmountSelector {
	return &AmountSelector{persist: persist}
}

// SetAmount stores the raw text as typed, re-validates and persists.
func (s *AmountSelector) SetAmount(raw string) AmountValidation {
	s.mu.Lock()
	s.raw = raw
	v := s.validateLocked()
	s.mu.Unlock()

	s.persistPrefs()
	return v
}

// Restore sets the raw text without persisting, for startup from stored
// preferences.
func (s *AmountSelector) Restore(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = raw
}

// SelectQuickAmount sets the amount to an exact preset value.
func (s *AmountSelector) SelectQuickAmount(value decimal.Decimal) AmountValidation {
	s.mu.Lock()
	s.raw = value.String()
	v := s.validateLocked()
	s.mu.Unlock()

	s.persistPrefs()
	return v
}

// Validate re-runs validation on the current text and updates the inline
// error affordance. Valid iff the text parses to a finite number > 0.
func (s *AmountSelector) Validate() AmountValidation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validateLocked()
}

func (s *AmountSelector) validateLocked() AmountValidation {
	amount, ok := ParseAmount(s.raw)
	if !ok || amount.LessThanOrEqual(decimal.Zero) {
		s.showError = true
		return AmountValidation{}
	}
	s.showError = false
	return AmountValidation{Valid: true, Amount: amount}
}

// Raw returns the amount text as typed.
func (s *AmountSelector) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// ActivePreset returns the preset matching the parsed current amount by
// numeric equality, if any. "10" and "10.00" both activate the $10 preset;
// "12" activates none.
func (s *AmountSelector) ActivePreset() (decimal.Decimal, bool) {
	s.mu.Lock()
	raw := s.raw
	s.mu.Unlock()

	amount, ok := ParseAmount(raw)
	if !ok {
		return decimal.Decimal{}, false
	}
	for _, preset := range models.QuickAmounts {
		if preset.Equal(amount) {
			return preset, true
		}
	}
	return decimal.Decimal{}, false
}

// View returns the render description of the amount field.
func (s *AmountSelector) View() AmountView {
	s.mu.Lock()
	raw := s.raw
	showError := s.showError
	s.mu.Unlock()

	active, hasActive := s.ActivePreset()
	presets := make([]PresetView, 0, len(models.QuickAmounts))
	for _, preset := range models.QuickAmounts {
		presets = append(presets, PresetView{
			Value:  preset,
			Active: hasActive && preset.Equal(active),
		})
	}
	return AmountView{Raw: raw, ShowError: showError, Presets: presets}
}

func (s *AmountSelector) persistPrefs() {
	if s.persist != nil {
		s.persist()
	}
}
