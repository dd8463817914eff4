package cmd

import (
	"fmt"
	"time"

	"wealthwise/internal/cli"
	"wealthwise/internal/metrics"
	"wealthwise/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List payment records",
	RunE:  runPaymentsList,
}

var paymentsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment",
	RunE:  runPaymentsAdd,
}

var paymentsPayCmd = &cobra.Command{
	Use:   "pay <index>",
	Short: "Mark the payment at index as paid today",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentsPay,
}

func init() {
	paymentsCmd.AddCommand(paymentsAddCmd)
	paymentsCmd.AddCommand(paymentsPayCmd)
	rootCmd.AddCommand(paymentsCmd)
}

func paymentStatus(p model.PaymentRecord, now time.Time) string {
	switch {
	case p.IsLate:
		return "late"
	case p.IsPaid:
		return "paid"
	case !p.DueDate.IsZero() && p.DueDate.Before(now):
		return "missed"
	default:
		return "due"
	}
}

func runPaymentsList(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	payments := s.Payments()
	if len(payments) == 0 {
		fmt.Println("\n  No payments recorded. Add one with `wealthwise payments add`.")
		return nil
	}

	now := time.Now()
	var rows [][]string
	for i, p := range payments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			p.AccountName,
			cli.FormatMoney(p.Amount),
			cli.FormatDate(p.DueDate),
			cli.FormatDate(p.PaymentDate),
			paymentStatus(p, now),
		})
	}

	summary := metrics.SummarizePayments(payments, now)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Payment History",
		Headers: []string{"#", "Account", "Amount", "Due", "Paid", "Status"},
		Rows:    rows,
	}))
	fmt.Printf("\n  %d tracked · %d on time · %d late · %d missed\n\n",
		summary.Total, summary.OnTime, summary.Late, summary.Missed)

	return nil
}

func runPaymentsAdd(_ *cobra.Command, _ []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	var account, amountStr, dueStr string
	paid := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title("Account").Value(&account).Validate(validateRequired),
		huh.NewInput().Title("Amount").Value(&amountStr).Validate(validateAmount),
		huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(&dueStr).Validate(validateDate),
		huh.NewConfirm().Title("Already paid?").Value(&paid),
	))
	if err := form.Run(); err != nil {
		return err
	}

	amount, _ := parseAmount(amountStr)
	due, _ := parseDateInput(dueStr)

	rec := model.PaymentRecord{
		AccountName: account,
		Amount:      amount,
		DueDate:     due,
		IsPaid:      paid,
	}
	if paid {
		now := time.Now()
		rec.PaymentDate = now
		rec.IsLate = !due.IsZero() && now.After(due)
	}

	s.AddPayment(rec)
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	fmt.Printf("\n  Recorded payment for %s.\n\n", account)
	return nil
}

func runPaymentsPay(_ *cobra.Command, args []string) error {
	s, sn, err := loadRecords()
	if err != nil {
		return err
	}
	defer sn.Close()

	var index int
	if _, err := fmt.Sscanf(args[0], "%d", &index); err != nil {
		return fmt.Errorf("index must be a number, got %q", args[0])
	}

	payments := s.Payments()
	if index < 0 || index >= len(payments) {
		return fmt.Errorf("no payment at index %d (have %d)", index, len(payments))
	}

	rec := payments[index]
	now := time.Now()
	rec.IsPaid = true
	rec.PaymentDate = now
	rec.IsLate = !rec.DueDate.IsZero() && now.After(rec.DueDate)

	if err := s.UpdatePayment(index, rec); err != nil {
		return err
	}
	if err := saveRecords(s, sn); err != nil {
		return err
	}

	status := "on time"
	if rec.IsLate {
		status = "late"
	}
	fmt.Printf("\n  Marked %s as paid (%s).\n\n", rec.AccountName, status)
	return nil
}
