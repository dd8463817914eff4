package metrics

import (
	"math"
	"testing"

	"wealthwise/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDebtToIncomeRatio(t *testing.T) {
	profile := model.DebtIncomeProfile{
		MonthlyIncome:      5000,
		MortgagePayment:    1200,
		CarPayment:         350,
		CreditCardPayment:  200,
		StudentLoanPayment: 400,
		OtherDebtPayment:   100,
	}

	if got := TotalMonthlyDebt(profile); !almostEqual(got, 2250) {
		t.Fatalf("TotalMonthlyDebt = %v, want 2250", got)
	}
	if got := DebtToIncomeRatio(profile); !almostEqual(got, 0.45) {
		t.Fatalf("DebtToIncomeRatio = %v, want 0.45", got)
	}
}

func TestDebtToIncomeRatioZeroIncome(t *testing.T) {
	cases := []struct {
		name   string
		income float64
	}{
		{"zero", 0},
		{"negative", -100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.DebtIncomeProfile{MonthlyIncome: tc.income, MortgagePayment: 1500}
			if got := DebtToIncomeRatio(p); got != 0 {
				t.Fatalf("DebtToIncomeRatio with income %v = %v, want 0", tc.income, got)
			}
		})
	}
}

func TestCreditUtilization(t *testing.T) {
	accounts := []model.CreditAccount{
		{Name: "Chase Freedom", Limit: 5000, Balance: 1500},
		{Name: "Citi Rewards", Limit: 7500, Balance: 3000},
		{Name: "Discover It", Limit: 3000, Balance: 500},
	}
	want := 5000.0 / 15500.0
	if got := CreditUtilization(accounts); !almostEqual(got, want) {
		t.Fatalf("CreditUtilization = %v, want %v", got, want)
	}
}

func TestCreditUtilizationZeroLimit(t *testing.T) {
	cases := []struct {
		name     string
		accounts []model.CreditAccount
	}{
		{"no accounts", nil},
		{"zero limits", []model.CreditAccount{{Name: "A", Limit: 0, Balance: 500}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CreditUtilization(tc.accounts); got != 0 {
				t.Fatalf("CreditUtilization = %v, want 0", got)
			}
		})
	}
}

func TestAccountUtilizationOverLimit(t *testing.T) {
	a := model.CreditAccount{Name: "Maxed", Limit: 1000, Balance: 1200}
	if got := AccountUtilization(a); !almostEqual(got, 1.2) {
		t.Fatalf("AccountUtilization = %v, want 1.2", got)
	}
	if got := AccountUtilization(model.CreditAccount{Balance: 50}); got != 0 {
		t.Fatalf("AccountUtilization with zero limit = %v, want 0", got)
	}
}
