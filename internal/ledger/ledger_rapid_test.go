package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"
)

// TestApplyDonationProperties checks that an arbitrary sequence of donations
// only ever moves the targeted project, by exactly the donated amount.
func TestApplyDonationProperties(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		l := NewSeeded()
		ids := make([]string, 0, 6)
		totals := make(map[string]decimal.Decimal)
		for _, p := range l.List() {
			ids = append(ids, p.ID)
			totals[p.ID] = p.CurrentAmount
		}

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for range steps {
			id := rapid.SampledFrom(append(ids, "unknown-cause")).Draw(t, "id")
			cents := rapid.Int64Range(0, 1_000_000).Draw(t, "cents")
			amount := decimal.New(cents, -2)

			applied := l.ApplyDonation(id, amount)
			if _, known := totals[id]; known {
				if !applied {
					t.Fatalf("donation to known project %q not applied", id)
				}
				totals[id] = totals[id].Add(amount)
			} else if applied {
				t.Fatalf("donation to unknown project %q applied", id)
			}
		}

		for _, p := range l.List() {
			if !p.CurrentAmount.Equal(totals[p.ID]) {
				t.Fatalf("project %q total %s, want %s", p.ID, p.CurrentAmount, totals[p.ID])
			}
		}
	})
}

// TestProgressClampProperty checks the display clamp never alters values in
// range and never lets values escape [0,100].
func TestProgressClampProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		pct := rapid.Float64Range(-1000, 1000).Draw(t, "pct")
		clamped := DisplayProgress(decimal.NewFromFloat(pct))
		if clamped < 0 || clamped > 100 {
			t.Fatalf("DisplayProgress(%v) = %v out of range", pct, clamped)
		}
		if pct >= 0 && pct <= 100 && clamped != pct {
			t.Fatalf("DisplayProgress(%v) = %v altered an in-range value", pct, clamped)
		}
	})
}
