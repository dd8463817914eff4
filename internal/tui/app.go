// Package tui implements the interactive wealthwise dashboard.
package tui

import (
	"strconv"
	"strings"
	"time"

	"wealthwise/internal/metrics"
	"wealthwise/internal/model"
	"wealthwise/internal/store"
	"wealthwise/internal/tui/components"
	"wealthwise/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxContentWidth = 100

// App is the root bubbletea model for the dashboard.
type App struct {
	store *store.Store

	width  int
	height int

	activeTab int
	showHelp  bool

	// Derived values, recomputed whenever the records could have changed.
	now       time.Time
	dti       float64
	util      float64
	breakdown model.ScoreBreakdown
	recs      []model.Recommendation
	summary   model.PaymentSummary
}

// NewApp builds the dashboard over an already-loaded store.
func NewApp(s *store.Store) App {
	a := App{store: s, now: time.Now()}
	a.recompute()
	return a
}

func (a *App) recompute() {
	a.dti = metrics.DebtToIncomeRatio(a.store.Profile())
	a.util = metrics.CreditUtilization(a.store.Accounts())
	a.breakdown = metrics.ScoreDetails(a.dti, a.util, a.store.Payments())
	a.recs = metrics.Recommendations(a.dti, a.util, a.store.Payments(), a.store.Accounts())
	a.summary = metrics.SummarizePayments(a.store.Payments(), a.now)
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "?":
			a.showHelp = !a.showHelp
			return a, nil
		case "esc":
			a.showHelp = false
			return a, nil
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		case "1", "2", "3", "4", "5":
			a.activeTab = int(msg.String()[0] - '1')
			return a, nil
		}
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
	}

	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.showHelp {
		return a.renderHelp()
	}

	cw := a.contentWidth()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderDashboardTab(cw)
	case 1:
		content = a.renderCreditTab(cw)
	case 2:
		content = a.renderPaymentsTab(cw)
	case 3:
		content = a.renderGoalsTab(cw)
	case 4:
		content = a.renderReportsTab(cw)
	}
	b.WriteString(content)
	b.WriteString("\n")

	scoreNote := "Score " + scoreText(a.breakdown.Composite)
	b.WriteString(components.RenderStatusBar(a.width, scoreNote))

	return b.String()
}

func (a App) contentWidth() int {
	cw := a.width - 2
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	if cw < 40 {
		cw = 40
	}
	return cw
}

func (a App) renderHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"d / 1", "Dashboard"},
		{"c / 2", "Credit accounts"},
		{"p / 3", "Payment history"},
		{"g / 4", "Goals"},
		{"r / 5", "Monthly reports"},
		{"tab / arrows", "Cycle tabs"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("  Keys"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  " + keyStyle.Render(padRight(r.key, 14)) + descStyle.Render(r.desc) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(descStyle.Render("  Press ? or esc to go back"))

	return b.String()
}

func padRight(s string, w int) string {
	for len(s) < w {
		s += " "
	}
	return s
}

func scoreText(score int) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(components.ColorForScore(score)).Bold(true)
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	return style.Render(strconv.Itoa(score)) + label.Render(" "+metrics.ScoreLabel(score))
}
