package tui

import (
	"fmt"
	"strings"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/tui/components"
	"wealthwise/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderGoalsTab(cw int) string {
	t := theme.Active
	goals := a.store.Goals()
	var b strings.Builder

	if len(goals) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(components.ContentCard("Goals",
			muted.Render("No goals yet. Add one with `wealthwise goals add`."), cw))
		return b.String()
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	inner := components.CardInnerWidth(cw)
	barW := inner - 8
	if barW > 50 {
		barW = 50
	}

	categories, byCategory := metrics.GroupGoals(goals)
	for _, cat := range categories {
		var body strings.Builder
		for _, g := range byCategory[cat] {
			progress := metrics.GoalProgress(g) / 100
			body.WriteString(nameStyle.Render(g.Name))
			body.WriteString("\n")
			body.WriteString(components.GoalBar(progress, barW))
			body.WriteString("\n")
			body.WriteString(dimStyle.Render(fmt.Sprintf("%s of %s · %s left · save %s/mo",
				cli.FormatMoney(g.CurrentAmount),
				cli.FormatMoney(g.TargetAmount),
				cli.FormatDays(metrics.DaysRemaining(g, a.now)),
				cli.FormatMoney(metrics.MonthlyNeeded(g, a.now)))))
			body.WriteString("\n\n")
		}
		b.WriteString(components.ContentCard(cat, strings.TrimRight(body.String(), "\n"), cw))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
