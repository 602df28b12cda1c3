// Package ledger tracks the in-memory fundraising projects and their running
// totals for the lifetime of a session.
package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"gitlab.com/donate4khmer/donationflow/internal/logger"
	"gitlab.com/donate4khmer/donationflow/internal/models"
)

// hundred is the percentage scale factor.
var hundred = decimal.NewFromInt(100)

// Card is the view description of one project card. ProgressPercent is the
// true, unclamped percentage for the caption; BarPercent is clamped to
// [0,100] for the progress bar width.
type Card struct {
	ID              string
	Title           string
	Description     string
	CurrentAmount   decimal.Decimal
	GoalAmount      decimal.Decimal
	ProgressPercent decimal.Decimal
	BarPercent      float64
	Image           string
	FallbackImage   string
}

// Ledger owns the ordered project collection. Totals may exceed the goal;
// overshoot is clamped for display only.
type Ledger struct {
	mu       sync.RWMutex
	projects []models.Project
	index    map[string]int
	onChange func()
}

// New creates a ledger over the given projects, preserving their order.
func New(projects []models.Project) *Ledger {
	l := &Ledger{
		projects: make([]models.Project, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	copy(l.projects, projects)
	for i, p := range l.projects {
		l.index[p.ID] = i
	}
	return l
}

// NewSeeded creates a ledger populated with the built-in project list.
func NewSeeded() *Ledger {
	return New(SeedProjects())
}

// SetOnChange registers a callback fired after every mutation. The card list
// is rebuilt in full on each change; with a bounded project count there is
// nothing to gain from diffing.
func (l *Ledger) SetOnChange(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = fn
}

// List returns the full ordered project list.
func (l *Ledger) List() []models.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Project, len(l.projects))
	copy(out, l.projects)
	return out
}

// Get returns the project with the given id.
func (l *Ledger) Get(id string) (models.Project, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i, ok := l.index[id]
	if !ok {
		return models.Project{}, false
	}
	return l.projects[i], true
}

// Progress returns the unclamped completion percentage for a project.
func (l *Ledger) Progress(id string) (decimal.Decimal, bool) {
	p, ok := l.Get(id)
	if !ok {
		return decimal.Zero, false
	}
	return progressOf(p), true
}

// progressOf computes current/goal as a percentage without clamping.
func progressOf(p models.Project) decimal.Decimal {
	if p.GoalAmount.IsZero() {
		return decimal.Zero
	}
	return p.CurrentAmount.Div(p.GoalAmount).Mul(hundred)
}

// DisplayProgress clamps a progress percentage to [0,100] for rendering.
func DisplayProgress(progress decimal.Decimal) float64 {
	pct := progress.InexactFloat64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// ApplyDonation adds amount to the project's running total and signals a
// re-render. Unknown project ids are a silent no-op, mirroring a stale cause
// selection.
func (l *Ledger) ApplyDonation(id string, amount decimal.Decimal) bool {
	l.mu.Lock()
	i, ok := l.index[id]
	if !ok {
		l.mu.Unlock()
		logger.Log.Debug().Str("project_id", id).Msg("Donation to unknown project ignored")
		return false
	}
	l.projects[i].CurrentAmount = l.projects[i].CurrentAmount.Add(amount)
	onChange := l.onChange
	total := l.projects[i].CurrentAmount
	l.mu.Unlock()

	logger.Log.Info().
		Str("project_id", id).
		Str("amount", amount.StringFixed(2)).
		Str("total", total.StringFixed(2)).
		Msg("Donation applied")

	if onChange != nil {
		onChange()
	}
	return true
}

// Cards rebuilds the full card list from current ledger state.
func (l *Ledger) Cards() []Card {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cards := make([]Card, 0, len(l.projects))
	for _, p := range l.projects {
		progress := progressOf(p)
		cards = append(cards, Card{
			ID:              p.ID,
			Title:           p.Title,
			Description:     p.Description,
			CurrentAmount:   p.CurrentAmount,
			GoalAmount:      p.GoalAmount,
			ProgressPercent: progress,
			BarPercent:      DisplayProgress(progress),
			Image:           p.Image,
			FallbackImage:   p.FallbackImage,
		})
	}
	return cards
}
