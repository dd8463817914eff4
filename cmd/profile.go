package cmd

import (
	"fmt"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the income and debt profile",
	RunE:  runProfile,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit income and monthly debt payments",
	RunE:  runProfileEdit,
}

func init() {
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfile(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	p := s.Profile()

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Income & Debt Profile",
		Headers: []string{"Field", "Monthly"},
		Rows: [][]string{
			{"Income", cli.FormatMoney(p.MonthlyIncome)},
			{"---"},
			{"Mortgage/Rent", cli.FormatMoney(p.MortgagePayment)},
			{"Car", cli.FormatMoney(p.CarPayment)},
			{"Credit Cards", cli.FormatMoney(p.CreditCardPayment)},
			{"Student Loans", cli.FormatMoney(p.StudentLoanPayment)},
			{"Other Debt", cli.FormatMoney(p.OtherDebtPayment)},
			{"---"},
			{"Total Debt", cli.FormatMoney(metrics.TotalMonthlyDebt(p))},
			{"DTI Ratio", cli.FormatPercent(metrics.DebtToIncomeRatio(p))},
		},
	}))
	fmt.Println()

	return nil
}

func runProfileEdit(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	p := s.Profile()
	vals := map[string]*string{
		"income":   ptr(amountString(p.MonthlyIncome)),
		"mortgage": ptr(amountString(p.MortgagePayment)),
		"car":      ptr(amountString(p.CarPayment)),
		"cc":       ptr(amountString(p.CreditCardPayment)),
		"student":  ptr(amountString(p.StudentLoanPayment)),
		"other":    ptr(amountString(p.OtherDebtPayment)),
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Monthly income").Value(vals["income"]).Validate(validateAmount),
		huh.NewInput().Title("Mortgage/rent payment").Value(vals["mortgage"]).Validate(validateAmount),
		huh.NewInput().Title("Car payment").Value(vals["car"]).Validate(validateAmount),
		huh.NewInput().Title("Credit card payments").Value(vals["cc"]).Validate(validateAmount),
		huh.NewInput().Title("Student loan payment").Value(vals["student"]).Validate(validateAmount),
		huh.NewInput().Title("Other debt payments").Value(vals["other"]).Validate(validateAmount),
	))
	if err := form.Run(); err != nil {
		return err
	}

	next := model.DebtIncomeProfile{}
	next.MonthlyIncome, _ = parseAmount(*vals["income"])
	next.MortgagePayment, _ = parseAmount(*vals["mortgage"])
	next.CarPayment, _ = parseAmount(*vals["car"])
	next.CreditCardPayment, _ = parseAmount(*vals["cc"])
	next.StudentLoanPayment, _ = parseAmount(*vals["student"])
	next.OtherDebtPayment, _ = parseAmount(*vals["other"])

	s.SetProfile(next)
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  Profile updated. DTI is now %s\n\n",
		cli.FormatPercent(metrics.DebtToIncomeRatio(next)))
	return nil
}

func ptr(s string) *string {
	return &s
}
