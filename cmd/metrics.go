package cmd

import (
	"fmt"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Debt and credit ratios in detail",
	RunE:  runMetrics,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}

func runMetrics(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	profile := s.Profile()
	dti := metrics.DebtToIncomeRatio(profile)
	util := metrics.CreditUtilization(s.Accounts())

	fmt.Println()
	fmt.Println(cli.RenderTitle("FINANCIAL METRICS"))
	fmt.Println()

	fmt.Println(cli.Header("  Debt-to-Income"))
	fmt.Printf("  %s\n", cli.RenderMeter(dti, 30))
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Obligation", "Monthly"},
		Rows: [][]string{
			{"Mortgage/Rent", cli.FormatMoney(profile.MortgagePayment)},
			{"Car", cli.FormatMoney(profile.CarPayment)},
			{"Credit Cards", cli.FormatMoney(profile.CreditCardPayment)},
			{"Student Loans", cli.FormatMoney(profile.StudentLoanPayment)},
			{"Other Debt", cli.FormatMoney(profile.OtherDebtPayment)},
			{"---"},
			{"Total Debt", cli.FormatMoney(metrics.TotalMonthlyDebt(profile))},
			{"Income", cli.FormatMoney(profile.MonthlyIncome)},
		},
	}))
	fmt.Println()

	fmt.Println(cli.Header("  Credit Utilization"))
	fmt.Printf("  %s\n", cli.RenderMeter(util, 30))

	var rows [][]string
	for _, a := range s.Accounts() {
		rows = append(rows, []string{
			a.Name,
			cli.FormatMoney(a.Balance),
			cli.FormatMoney(a.Limit),
			cli.FormatPercent(metrics.AccountUtilization(a)),
		})
	}
	if len(rows) > 0 {
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Account", "Balance", "Limit", "Used"},
			Rows:    rows,
		}))
	}
	fmt.Println()

	return nil
}
