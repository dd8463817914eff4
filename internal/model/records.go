// Package model defines domain types for wealthwise records and metrics.
package model

import "time"

// DebtIncomeProfile is the singleton income/debt profile. It is replaced
// wholesale on update; there is no partial-field patch.
type DebtIncomeProfile struct {
	MonthlyIncome      float64
	MortgagePayment    float64
	CarPayment         float64
	CreditCardPayment  float64
	StudentLoanPayment float64
	OtherDebtPayment   float64
}

// CreditAccount is one revolving credit line. Balance may exceed Limit;
// over-limit is a valid, flagged state rather than an error.
type CreditAccount struct {
	Name    string
	Limit   float64
	Balance float64
}

// PaymentRecord is one bill payment event. IsLate is stored explicitly
// (paid after due date); an unpaid-and-overdue "missed" payment is derived
// by consumers, never stored.
type PaymentRecord struct {
	AccountName string
	Amount      float64
	DueDate     time.Time
	PaymentDate time.Time
	IsPaid      bool
	IsLate      bool
}

// Goal is a savings or debt-payoff goal. ID is caller-supplied; the store
// looks entries up by it but does not enforce uniqueness at insert time.
type Goal struct {
	ID            string
	Name          string
	CurrentAmount float64
	TargetAmount  float64
	Deadline      time.Time
	Category      string
}

// MonthlyReport is an immutable historical snapshot supplied at
// initialization. The core never regenerates or mutates these.
type MonthlyReport struct {
	Month             string
	HealthScore       int
	DebtToIncome      float64
	CreditUtilization float64
	MissedPayments    int
	Notes             string
}
