package cmd

import (
	"fmt"

	"wealthwise/internal/cli"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Monthly health score history",
	RunE:  runReports,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

func runReports(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	reports := s.Reports()
	if len(reports) == 0 {
		fmt.Println("\n  No monthly reports yet.")
		return nil
	}

	var rows [][]string
	scores := make([]float64, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			cli.FormatMonth(r.Month),
			fmt.Sprintf("%d", r.HealthScore),
			cli.FormatPercent(r.DebtToIncome),
			cli.FormatPercent(r.CreditUtilization),
			fmt.Sprintf("%d", r.MissedPayments),
		})
		scores = append(scores, float64(r.HealthScore))
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly Reports",
		Headers: []string{"Month", "Score", "DTI", "Utilization", "Missed"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Score trend  %s\n", cli.RenderSparkline(scores))

	for _, r := range reports {
		if r.Notes != "" {
			fmt.Printf("  %s: %s\n", cli.FormatMonth(r.Month), cli.Muted(r.Notes))
		}
	}
	fmt.Println()

	return nil
}
