// Package store owns the mutable record collections and their SQLite snapshot.
package store

import (
	"errors"

	"wealthwise/internal/model"
)

// ErrIndexOutOfRange is returned by UpdatePayment when the index does not
// address an existing record. It is the only hard failure the store signals.
var ErrIndexOutOfRange = errors.New("payment index out of range")

// Store holds the profile, accounts, payments, and goals, plus the immutable
// monthly report history. It is the sole owner of these collections: getters
// return the live data and every mutation is visible to the next read.
// Single process, single logical owner — no locking.
type Store struct {
	profile  model.DebtIncomeProfile
	accounts []model.CreditAccount
	payments []model.PaymentRecord
	goals    []model.Goal
	reports  []model.MonthlyReport
}

// Seed holds initial values for every collection. The store accepts them
// as-is; validation is the supplier's concern.
type Seed struct {
	Profile  model.DebtIncomeProfile
	Accounts []model.CreditAccount
	Payments []model.PaymentRecord
	Goals    []model.Goal
	Reports  []model.MonthlyReport
}

// New creates a store initialized from seed.
func New(seed Seed) *Store {
	return &Store{
		profile:  seed.Profile,
		accounts: seed.Accounts,
		payments: seed.Payments,
		goals:    seed.Goals,
		reports:  seed.Reports,
	}
}

// Profile returns the current debt/income profile.
func (s *Store) Profile() model.DebtIncomeProfile {
	return s.profile
}

// SetProfile replaces the profile wholesale.
func (s *Store) SetProfile(p model.DebtIncomeProfile) {
	s.profile = p
}

// Accounts returns the credit accounts in insertion order.
func (s *Store) Accounts() []model.CreditAccount {
	return s.accounts
}

// SetAccounts replaces the whole account list (bulk edit flow).
func (s *Store) SetAccounts(accounts []model.CreditAccount) {
	s.accounts = accounts
}

// Payments returns the payment records in insertion order.
func (s *Store) Payments() []model.PaymentRecord {
	return s.payments
}

// AddPayment appends a payment record.
func (s *Store) AddPayment(r model.PaymentRecord) {
	s.payments = append(s.payments, r)
}

// UpdatePayment replaces the record at index. Positions other than index
// are untouched. Returns ErrIndexOutOfRange when index is out of bounds.
func (s *Store) UpdatePayment(index int, r model.PaymentRecord) error {
	if index < 0 || index >= len(s.payments) {
		return ErrIndexOutOfRange
	}
	s.payments[index] = r
	return nil
}

// Goals returns the goals in insertion order.
func (s *Store) Goals() []model.Goal {
	return s.goals
}

// AddGoal appends a goal.
func (s *Store) AddGoal(g model.Goal) {
	s.goals = append(s.goals, g)
}

// UpdateGoal replaces the first goal whose ID matches id. A missing id is
// a silent no-op; callers must not rely on an error signal here.
func (s *Store) UpdateGoal(id string, g model.Goal) {
	for i := range s.goals {
		if s.goals[i].ID == id {
			s.goals[i] = g
			return
		}
	}
}

// DeleteGoal removes every goal whose ID matches id. No-op when none match.
func (s *Store) DeleteGoal(id string) {
	n := 0
	for _, g := range s.goals {
		if g.ID != id {
			s.goals[n] = g
			n++
		}
	}
	s.goals = s.goals[:n]
}

// Reports returns the monthly report history (read-only by convention).
func (s *Store) Reports() []model.MonthlyReport {
	return s.reports
}
