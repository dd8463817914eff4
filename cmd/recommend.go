package cmd

import (
	"fmt"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Prioritized advice based on your records",
	RunE:  runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	dti := metrics.DebtToIncomeRatio(s.Profile())
	util := metrics.CreditUtilization(s.Accounts())
	recs := metrics.Recommendations(dti, util, s.Payments(), s.Accounts())

	fmt.Println()
	fmt.Println(cli.RenderTitle("RECOMMENDATIONS"))
	fmt.Println()
	for _, r := range recs {
		fmt.Printf("  %s  %s\n", cli.RenderPriority(r.Priority), r.Title)
		fmt.Printf("        %s\n\n", cli.Muted(r.Description))
	}

	return nil
}
