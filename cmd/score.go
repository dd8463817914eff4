package cmd

import (
	"fmt"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Health score with component breakdown",
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	dti := metrics.DebtToIncomeRatio(s.Profile())
	util := metrics.CreditUtilization(s.Accounts())
	bd := metrics.ScoreDetails(dti, util, s.Payments())

	fmt.Println()
	fmt.Println(cli.RenderTitle("HEALTH SCORE"))
	fmt.Println()
	fmt.Printf("  Composite  %s\n", cli.RenderScore(bd.Composite, metrics.ScoreLabel(bd.Composite)))
	fmt.Println()

	rows := [][]string{
		{"Debt-to-Income", cli.FormatPercent(bd.DTIRatio), fmt.Sprintf("%.1f", bd.DTIScore), "35%"},
		{"Credit Utilization", cli.FormatPercent(bd.Utilization), fmt.Sprintf("%.1f", bd.UtilScore), "30%"},
		{"Payment History", fmt.Sprintf("%d late", bd.MissedPayments), fmt.Sprintf("%.1f", bd.PaymentScore), "35%"},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Component", "Input", "Score", "Weight"},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
