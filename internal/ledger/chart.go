package ledger

import (
	"fmt"

	"github.com/go-analyze/charts"
)

// RenderProgressChart creates a horizontal bar chart of per-project
// completion percentages. Returns PNG image as bytes.
func (l *Ledger) RenderProgressChart() ([]byte, error) {
	cards := l.Cards()
	if len(cards) == 0 {
		return nil, fmt.Errorf("no projects to chart")
	}

	values := make([][]float64, 1)
	names := make([]string, 0, len(cards))
	for _, card := range cards {
		values[0] = append(values[0], card.BarPercent)
		names = append(names, card.Title)
	}

	p, err := charts.HorizontalBarRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Fundraising Progress (%)",
		}),
		charts.YAxisLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf, nil
}
