package store

import (
	"time"

	"wealthwise/internal/model"
)

// DefaultSeed returns the starter data used on first run, before the user
// has entered anything of their own.
func DefaultSeed() Seed {
	return Seed{
		Profile: model.DebtIncomeProfile{
			MonthlyIncome:      5000,
			MortgagePayment:    1200,
			CarPayment:         350,
			CreditCardPayment:  200,
			StudentLoanPayment: 400,
			OtherDebtPayment:   100,
		},
		Accounts: []model.CreditAccount{
			{Name: "Chase Freedom", Limit: 5000, Balance: 1500},
			{Name: "Citi Rewards", Limit: 7500, Balance: 3000},
			{Name: "Discover It", Limit: 3000, Balance: 500},
		},
		Payments: []model.PaymentRecord{
			{AccountName: "Mortgage", Amount: 1200, DueDate: date(2023, 12, 1), PaymentDate: date(2023, 12, 1), IsPaid: true},
			{AccountName: "Car Loan", Amount: 350, DueDate: date(2023, 12, 5), PaymentDate: date(2023, 12, 5), IsPaid: true},
			{AccountName: "Credit Card", Amount: 200, DueDate: date(2023, 12, 15), PaymentDate: date(2023, 12, 15), IsPaid: true},
			{AccountName: "Mortgage", Amount: 1200, DueDate: date(2024, 1, 1), PaymentDate: date(2024, 1, 1), IsPaid: true},
			{AccountName: "Car Loan", Amount: 350, DueDate: date(2024, 1, 5), PaymentDate: date(2024, 1, 5), IsLate: true},
		},
		Goals: []model.Goal{
			{ID: "1", Name: "Emergency Fund", CurrentAmount: 5000, TargetAmount: 15000, Deadline: date(2024, 12, 31), Category: "Savings"},
			{ID: "2", Name: "Pay off Credit Card", CurrentAmount: 2500, TargetAmount: 7000, Deadline: date(2024, 6, 30), Category: "Debt Payoff"},
		},
		Reports: []model.MonthlyReport{
			{Month: "November 2023", HealthScore: 72, DebtToIncome: 0.42, CreditUtilization: 0.32, MissedPayments: 0, Notes: "Good progress on reducing credit card balances."},
			{Month: "December 2023", HealthScore: 75, DebtToIncome: 0.41, CreditUtilization: 0.30, MissedPayments: 0, Notes: "Continue to focus on building emergency fund."},
			{Month: "January 2024", HealthScore: 71, DebtToIncome: 0.43, CreditUtilization: 0.31, MissedPayments: 1, Notes: "One missed payment affected score. Set up automatic payments."},
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
