package tui

import (
	"fmt"
	"strings"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/model"
	"wealthwise/internal/tui/components"
	"wealthwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderDashboardTab(cw int) string {
	t := theme.Active
	var b strings.Builder

	// Row 1: Metric cards
	cards := []struct{ Label, Value, Detail string }{
		{"Health Score", fmt.Sprintf("%d", a.breakdown.Composite), metrics.ScoreLabel(a.breakdown.Composite)},
		{"Debt-to-Income", cli.FormatPercent(a.dti), dtiStatus(a.dti)},
		{"Utilization", cli.FormatPercent(a.util), utilStatus(a.util)},
		{"Late Payments", fmt.Sprintf("%d", a.breakdown.MissedPayments), fmt.Sprintf("of %d tracked", a.summary.Total)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: Score breakdown
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var breakdown strings.Builder
	parts := []struct {
		name   string
		score  float64
		weight string
	}{
		{"Debt-to-Income", a.breakdown.DTIScore, "35%"},
		{"Utilization", a.breakdown.UtilScore, "30%"},
		{"Payment History", a.breakdown.PaymentScore, "35%"},
	}
	for _, p := range parts {
		fmt.Fprintf(&breakdown, "%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", p.name)),
			valStyle.Render(fmt.Sprintf("%6.1f", p.score)),
			labelStyle.Render("x "+p.weight))
	}

	// Row 2 right: Recommendations
	var recBody strings.Builder
	for _, r := range a.recs {
		fmt.Fprintf(&recBody, "%s %s\n", priorityBadge(r.Priority), valStyle.Render(r.Title))
		fmt.Fprintf(&recBody, "     %s\n", labelStyle.Render(wrapText(r.Description, components.CardInnerWidth(cw/2)-5)))
	}

	halves := components.LayoutRow(cw, 2)
	b.WriteString(components.CardRow([]string{
		components.ContentCard("Score Breakdown", breakdown.String(), halves[0]),
		components.ContentCard("Recommendations", recBody.String(), halves[1]),
	}))

	return b.String()
}

func dtiStatus(dti float64) string {
	switch {
	case dti <= 0.28:
		return "healthy"
	case dti <= 0.36:
		return "manageable"
	default:
		return "high"
	}
}

func utilStatus(util float64) string {
	switch {
	case util <= 0.3:
		return "good"
	case util <= 0.5:
		return "elevated"
	default:
		return "high"
	}
}

func priorityBadge(p model.Priority) string {
	t := theme.Active
	switch p {
	case model.PriorityHigh:
		return lipgloss.NewStyle().Foreground(t.Red).Bold(true).Render("HIGH")
	case model.PriorityMedium:
		return lipgloss.NewStyle().Foreground(t.Orange).Bold(true).Render(" MED")
	default:
		return lipgloss.NewStyle().Foreground(t.Green).Bold(true).Render(" LOW")
	}
}

// wrapText wraps words to fit within width, for card bodies.
func wrapText(s string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n     ")
}
