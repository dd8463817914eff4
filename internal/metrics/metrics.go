// Package metrics computes financial ratios, the composite health score,
// and derived views from the current record collections. Everything here
// is a pure function of its arguments.
package metrics

import "wealthwise/internal/model"

// TotalMonthlyDebt sums the five monthly debt-payment fields.
func TotalMonthlyDebt(p model.DebtIncomeProfile) float64 {
	return p.MortgagePayment + p.CarPayment + p.CreditCardPayment +
		p.StudentLoanPayment + p.OtherDebtPayment
}

// DebtToIncomeRatio returns total monthly debt divided by monthly income.
// Returns 0 when income is zero or negative; that is a guard, not an error.
func DebtToIncomeRatio(p model.DebtIncomeProfile) float64 {
	if p.MonthlyIncome <= 0 {
		return 0
	}
	return TotalMonthlyDebt(p) / p.MonthlyIncome
}

// CreditUtilization returns total balance over total limit across all
// accounts. Returns 0 when the total limit is zero or negative.
func CreditUtilization(accounts []model.CreditAccount) float64 {
	var totalLimit, totalBalance float64
	for _, a := range accounts {
		totalLimit += a.Limit
		totalBalance += a.Balance
	}
	if totalLimit <= 0 {
		return 0
	}
	return totalBalance / totalLimit
}

// AccountUtilization returns one account's balance/limit ratio, 0 when the
// limit is not positive. May exceed 1 for over-limit accounts.
func AccountUtilization(a model.CreditAccount) float64 {
	if a.Limit <= 0 {
		return 0
	}
	return a.Balance / a.Limit
}

// LateCount counts records flagged as paid late.
func LateCount(payments []model.PaymentRecord) int {
	n := 0
	for _, p := range payments {
		if p.IsLate {
			n++
		}
	}
	return n
}
