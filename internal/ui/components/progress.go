package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizform/internal/ui/theme"
)

// Gauge shows a collection size against its allowed range.
type Gauge struct {
	Label string
	Count int
	Min   int
	Max   int
	Width int
}

// NewGauge creates a new gauge.
func NewGauge(label string, count, min, max, width int) Gauge {
	return Gauge{Label: label, Count: count, Min: min, Max: max, Width: width}
}

// InRange reports whether Count lies within [Min, Max].
func (g Gauge) InRange() bool {
	return g.Count >= g.Min && g.Count <= g.Max
}

// View renders "Label  [bar]  count/max".
func (g Gauge) View() string {
	var result string
	if g.Label != "" {
		result += theme.Body.Render(g.Label) + "  "
	}

	suffix := fmt.Sprintf("  %d/%d", g.Count, g.Max)
	barWidth := max(g.Width-lipgloss.Width(result)-len(suffix), 4)

	filled := barWidth
	if g.Max > 0 && g.Count < g.Max {
		filled = barWidth * g.Count / g.Max
	}
	filled = max(filled, 0)

	fill := theme.GaugeFilled
	if !g.InRange() {
		fill = theme.GaugeOver
	}
	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.GaugeEmpty.Render(strings.Repeat(" ", barWidth-filled))

	countStyle := theme.Hint
	if !g.InRange() {
		countStyle = theme.ErrorText
	}
	return result + countStyle.Render(suffix)
}
