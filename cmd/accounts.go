package cmd

import (
	"fmt"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List credit accounts",
	RunE:  runAccountsList,
}

var accountsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a credit account",
	RunE:  runAccountsAdd,
}

var accountsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a credit account by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsRm,
}

func init() {
	accountsCmd.AddCommand(accountsAddCmd)
	accountsCmd.AddCommand(accountsRmCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	accounts := s.Accounts()
	if len(accounts) == 0 {
		fmt.Println("\n  No credit accounts. Add one with `wealthwise accounts add`.")
		return nil
	}

	var rows [][]string
	for _, a := range accounts {
		rows = append(rows, []string{
			a.Name,
			cli.FormatMoney(a.Balance),
			cli.FormatMoney(a.Limit),
			cli.FormatPercent(metrics.AccountUtilization(a)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Credit Accounts",
		Headers: []string{"Account", "Balance", "Limit", "Used"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Overall utilization  %s\n\n", cli.RenderMeter(metrics.CreditUtilization(accounts), 30))

	return nil
}

func runAccountsAdd(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	var name, limitStr, balanceStr string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Account name").Value(&name).Validate(validateRequired),
		huh.NewInput().Title("Credit limit").Value(&limitStr).Validate(validateAmount),
		huh.NewInput().Title("Current balance").Value(&balanceStr).Validate(validateAmount),
	))
	if err := form.Run(); err != nil {
		return err
	}

	limit, _ := parseAmount(limitStr)
	balance, _ := parseAmount(balanceStr)

	s.SetAccounts(append(s.Accounts(), model.CreditAccount{
		Name:    name,
		Limit:   limit,
		Balance: balance,
	}))
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  Added %s.\n\n", name)
	return nil
}

func runAccountsRm(_ *cobra.Command, args []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	name := args[0]
	var kept []model.CreditAccount
	removed := 0
	for _, a := range s.Accounts() {
		if a.Name == name {
			removed++
			continue
		}
		kept = append(kept, a)
	}
	if removed == 0 {
		return fmt.Errorf("no account named %q", name)
	}

	s.SetAccounts(kept)
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  Removed %s.\n\n", name)
	return nil
}
