package tui

import (
	"fmt"
	"strings"

	"wealthwise/internal/cli"
	"wealthwise/internal/tui/components"
	"wealthwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderReportsTab(cw int) string {
	t := theme.Active
	reports := a.store.Reports()
	var b strings.Builder

	if len(reports) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(components.ContentCard("Monthly Reports",
			muted.Render("No monthly reports yet."), cw))
		return b.String()
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	scores := make([]float64, 0, len(reports))
	var body strings.Builder
	for _, r := range reports {
		scoreStyle := lipgloss.NewStyle().Foreground(components.ColorForScore(r.HealthScore)).Bold(true)
		fmt.Fprintf(&body, "%s  %s  %s  %s  %s\n",
			valStyle.Render(fmt.Sprintf("%-14s", cli.FormatMonth(r.Month))),
			scoreStyle.Render(fmt.Sprintf("%3d", r.HealthScore)),
			labelStyle.Render(fmt.Sprintf("dti %6s", cli.FormatPercent(r.DebtToIncome))),
			labelStyle.Render(fmt.Sprintf("util %6s", cli.FormatPercent(r.CreditUtilization))),
			labelStyle.Render(fmt.Sprintf("%d missed", r.MissedPayments)))
		if r.Notes != "" {
			fmt.Fprintf(&body, "%s\n", dimStyle.Render("  "+r.Notes))
		}
		scores = append(scores, float64(r.HealthScore))
	}

	body.WriteString("\n")
	body.WriteString(labelStyle.Render("Trend  "))
	body.WriteString(components.Sparkline(scores, t.Accent))

	b.WriteString(components.ContentCard("Monthly Reports", body.String(), cw))

	return b.String()
}
