package cmd

import (
	"fmt"
	"time"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Financial health overview",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	profile := s.Profile()
	dti := metrics.DebtToIncomeRatio(profile)
	util := metrics.CreditUtilization(s.Accounts())
	bd := metrics.ScoreDetails(dti, util, s.Payments())
	summary := metrics.SummarizePayments(s.Payments(), time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEALTHWISE  Financial Health"))
	fmt.Println()

	fmt.Printf("  Health Score  %s\n", cli.RenderScore(bd.Composite, metrics.ScoreLabel(bd.Composite)))
	fmt.Println()

	rows := [][]string{
		{"Monthly Income", cli.FormatMoney(profile.MonthlyIncome)},
		{"Monthly Debt", cli.FormatMoney(metrics.TotalMonthlyDebt(profile))},
		{"Debt-to-Income", cli.FormatPercent(dti)},
		{"Credit Utilization", cli.FormatPercent(util)},
		{"---"},
		{"Payments Tracked", cli.FormatNumber(int64(summary.Total))},
		{"On Time", cli.FormatNumber(int64(summary.OnTime))},
		{"Late", cli.FormatNumber(int64(summary.Late))},
		{"Missed", cli.FormatNumber(int64(summary.Missed))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	recs := metrics.Recommendations(dti, util, s.Payments(), s.Accounts())
	fmt.Println()
	fmt.Println(cli.Header("  Recommendations"))
	for _, r := range recs {
		fmt.Printf("  %s  %s\n", cli.RenderPriority(r.Priority), r.Title)
		fmt.Printf("        %s\n", cli.Muted(r.Description))
	}
	fmt.Println()

	return nil
}
