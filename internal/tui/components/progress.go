package components

import (
	"fmt"

	"wealthwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForUtilization returns green/orange/red based on the 30%/50%
// credit utilization bands.
func ColorForUtilization(pct float64) string {
	t := theme.Active
	switch {
	case pct > 0.5:
		return string(t.Red)
	case pct > 0.3:
		return string(t.Orange)
	default:
		return string(t.Green)
	}
}

// ColorForScore returns the color for a composite health score band.
func ColorForScore(score int) lipgloss.Color {
	t := theme.Active
	switch {
	case score >= 80:
		return t.Green
	case score >= 60:
		return t.Blue
	case score >= 40:
		return t.Orange
	default:
		return t.Red
	}
}

// UtilizationBar renders a labeled utilization bar colored by band.
func UtilizationBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	shown := pct
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForUtilization(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForUtilization(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " + bar.ViewAs(shown) +
		" " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// GoalBar renders a goal completion bar in the accent color.
func GoalBar(pct float64, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	fill := string(t.Accent)
	if pct >= 1 {
		fill = string(t.Green)
	}

	bar := progress.New(
		progress.WithSolidFill(fill),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(fill)).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}
