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

func (a App) renderPaymentsTab(cw int) string {
	t := theme.Active
	payments := a.store.Payments()
	var b strings.Builder

	cards := []struct{ Label, Value, Detail string }{
		{"Tracked", fmt.Sprintf("%d", a.summary.Total), ""},
		{"On Time", fmt.Sprintf("%d", a.summary.OnTime), ""},
		{"Late", fmt.Sprintf("%d", a.summary.Late), ""},
		{"Missed", fmt.Sprintf("%d", a.summary.Missed), "unpaid, past due"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(payments) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(components.ContentCard("History",
			muted.Render("No payments recorded yet."), cw))
		return b.String()
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	nameW := 0
	for _, p := range payments {
		if len(p.AccountName) > nameW {
			nameW = len(p.AccountName)
		}
	}

	for _, p := range metrics.SortedByDate(payments) {
		fmt.Fprintf(&body, "%s  %s  %s  %s\n",
			nameStyle.Render(fmt.Sprintf("%-*s", nameW, p.AccountName)),
			dimStyle.Render(fmt.Sprintf("%9s", cli.FormatMoney(p.Amount))),
			dimStyle.Render(fmt.Sprintf("due %-12s", cli.FormatDate(p.DueDate))),
			a.paymentBadge(p))
	}

	b.WriteString(components.ContentCard("History (most recent first)", body.String(), cw))

	return b.String()
}

func (a App) paymentBadge(p model.PaymentRecord) string {
	t := theme.Active
	switch {
	case p.IsLate:
		return lipgloss.NewStyle().Foreground(t.Orange).Render("late")
	case p.IsPaid:
		return lipgloss.NewStyle().Foreground(t.Green).Render("paid")
	case !p.DueDate.IsZero() && p.DueDate.Before(a.now):
		return lipgloss.NewStyle().Foreground(t.Red).Render("missed")
	default:
		return lipgloss.NewStyle().Foreground(t.TextMuted).Render("due")
	}
}
