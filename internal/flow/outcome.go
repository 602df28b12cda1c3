package flow

import "math/rand/v2"

// OutcomeSource decides whether a simulated payment attempt succeeds. The
// production source draws randomly; tests substitute a deterministic one.
type OutcomeSource interface {
	Draw() bool
}

// RandomOutcome succeeds with probability Rate using a uniform draw. It is
// the stand-in for a real payment gateway.
type RandomOutcome struct {
	Rate float64
}

// Draw returns true with probability Rate.
func (o RandomOutcome) Draw() bool {
	return rand.Float64() < o.Rate
}

// FixedOutcome always resolves to its value.
type FixedOutcome bool

// Draw returns the fixed value.
func (o FixedOutcome) Draw() bool {
	return bool(o)
}
