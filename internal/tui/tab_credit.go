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

func (a App) renderCreditTab(cw int) string {
	t := theme.Active
	accounts := a.store.Accounts()
	var b strings.Builder

	var totalLimit, totalBalance float64
	for _, acc := range accounts {
		totalLimit += acc.Limit
		totalBalance += acc.Balance
	}

	cards := []struct{ Label, Value, Detail string }{
		{"Total Balance", cli.FormatMoney(totalBalance), ""},
		{"Total Limit", cli.FormatMoney(totalLimit), ""},
		{"Utilization", cli.FormatPercent(a.util), utilStatus(a.util)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	if len(accounts) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(components.ContentCard("Accounts",
			muted.Render("No credit accounts yet."), cw))
		return b.String()
	}

	inner := components.CardInnerWidth(cw)
	labelW := 0
	for _, acc := range accounts {
		if len(acc.Name) > labelW {
			labelW = len(acc.Name)
		}
	}
	barW := inner - labelW - 30
	if barW < 10 {
		barW = 10
	}

	detailStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var body strings.Builder
	for _, acc := range accounts {
		util := metrics.AccountUtilization(acc)
		body.WriteString(components.UtilizationBar(acc.Name, util, labelW, barW))
		body.WriteString(detailStyle.Render(fmt.Sprintf("  %s / %s",
			cli.FormatMoney(acc.Balance), cli.FormatMoney(acc.Limit))))
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(components.UtilizationBar("Overall", a.util, labelW, barW))

	b.WriteString(components.ContentCard("Account Utilization", body.String(), cw))

	return b.String()
}
