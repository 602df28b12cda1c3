package flow

import (
	"sync"

	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// methodPayloads holds the fixed instructional content per payment method.
var methodPayloads = map[models.PaymentMethod]models.MethodPayload{
	models.MethodCreditCard: {
		Title: "Card Donation Details",
		Body: []string{
			"Enter your card details on the next step.",
			"Visa, MasterCard and American Express are accepted.",
		},
	},
	models.MethodABAPay: {
		Title: "Scan to donate with ABA Pay",
		Body: []string{
			"Use the ABA Mobile app to scan this QR code.",
			"This is a sample QR code for demonstration only.",
		},
	},
	models.MethodWingMoney: {
		Title: "Scan to donate with Wing Money",
		Body: []string{
			"Use the Wing Money app to scan this QR code.",
			"This is a sample QR code for demonstration only.",
		},
	},
	models.MethodBankTransfer: {
		Title: "Bank Transfer Details",
		Body: []string{
			"Use the account below to make your transfer.",
			"These are sample account details for display only.",
		},
		Bank:     &models.OrgBankAccount,
		Copyable: true,
	},
}

// defaultPayload is shown when no known method is selected.
var defaultPayload = models.MethodPayload{
	Body: []string{"Please choose a payment method to see its details."},
}

// PayloadFor returns the display payload for a method, or the default prompt
// for an unknown one.
func PayloadFor(m models.PaymentMethod) models.MethodPayload {
	if payload, ok := methodPayloads[m]; ok {
		return payload
	}
	return defaultPayload
}

// MethodView is the render description of the method cards and details panel.
type MethodView struct {
	Active  models.PaymentMethod
	Payload models.MethodPayload
}

// MethodSelector owns the active payment method. Exactly one method is
// active at a time; the default is credit_card.
type MethodSelector struct {
	mu      sync.Mutex
	active  models.PaymentMethod
	persist func()
}

// NewMethodSelector creates a selector with the default method active.
// persist is invoked after every selection; nil is allowed for tests.
func NewMethodSelector(persist func()) *MethodSelector {
	return &MethodSelector{active: models.DefaultMethod, persist: persist}
}

// Select activates a method and persists the preference. Unknown methods are
// ignored, mirroring a click on a card that does not exist.
func (s *MethodSelector) Select(m models.PaymentMethod) {
	if !m.Valid() {
		return
	}

	s.mu.Lock()
	s.active = m
	s.mu.Unlock()

	if s.persist != nil {
		s.persist()
	}
}

// Restore activates a method without persisting, for startup from stored
// preferences. Unknown methods fall back to the default.
func (s *MethodSelector) Restore(m models.PaymentMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.Valid() {
		s.active = m
	} else {
		s.active = models.DefaultMethod
	}
}

// Active returns the currently selected method.
func (s *MethodSelector) Active() models.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// View returns the render description of the method selection.
func (s *MethodSelector) View() MethodView {
	active := s.Active()
	return MethodView{Active: active, Payload: PayloadFor(active)}
}
