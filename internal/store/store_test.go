package store

import (
	"errors"
	"testing"

	"wealthwise/internal/model"
)

func TestUpdatePaymentOutOfRange(t *testing.T) {
	s := New(DefaultSeed())
	n := len(s.Payments())

	err := s.UpdatePayment(n, model.PaymentRecord{AccountName: "Nope"})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdatePayment(%d) error = %v, want ErrIndexOutOfRange", n, err)
	}

	err = s.UpdatePayment(-1, model.PaymentRecord{AccountName: "Nope"})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("UpdatePayment(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestUpdatePaymentReplacesOnlyTarget(t *testing.T) {
	s := New(DefaultSeed())
	before := append([]model.PaymentRecord(nil), s.Payments()...)

	replacement := model.PaymentRecord{AccountName: "Utilities", Amount: 80, IsPaid: true}
	if err := s.UpdatePayment(2, replacement); err != nil {
		t.Fatalf("UpdatePayment(2) error = %v", err)
	}

	after := s.Payments()
	if len(after) != len(before) {
		t.Fatalf("payment count changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if i == 2 {
			if after[i] != replacement {
				t.Fatalf("payments[2] = %+v, want %+v", after[i], replacement)
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("payments[%d] changed unexpectedly: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestDeleteGoalMissingIDIsNoOp(t *testing.T) {
	s := New(DefaultSeed())
	before := append([]model.Goal(nil), s.Goals()...)

	s.DeleteGoal("does-not-exist")

	after := s.Goals()
	if len(after) != len(before) {
		t.Fatalf("goal count changed: %d -> %d", len(before), len(after))
	}
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("goals[%d] changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestDeleteGoalRemovesAllMatches(t *testing.T) {
	s := New(Seed{Goals: []model.Goal{
		{ID: "dup", Name: "First"},
		{ID: "keep", Name: "Middle"},
		{ID: "dup", Name: "Second"},
	}})

	s.DeleteGoal("dup")

	goals := s.Goals()
	if len(goals) != 1 || goals[0].ID != "keep" {
		t.Fatalf("goals after delete = %+v, want only id keep", goals)
	}
}

func TestUpdateGoalFirstMatchAndMissingID(t *testing.T) {
	s := New(Seed{Goals: []model.Goal{
		{ID: "g1", Name: "Original"},
		{ID: "g1", Name: "Shadowed"},
	}})

	s.UpdateGoal("g1", model.Goal{ID: "g1", Name: "Renamed"})
	if got := s.Goals()[0].Name; got != "Renamed" {
		t.Fatalf("first goal name = %q, want Renamed", got)
	}
	if got := s.Goals()[1].Name; got != "Shadowed" {
		t.Fatalf("second goal name = %q, want untouched Shadowed", got)
	}

	// Missing id: documented silent no-op
	s.UpdateGoal("absent", model.Goal{ID: "absent", Name: "Ghost"})
	if len(s.Goals()) != 2 {
		t.Fatalf("goal count = %d after no-op update, want 2", len(s.Goals()))
	}
}

func TestMutationsVisibleToNextRead(t *testing.T) {
	s := New(Seed{})

	s.SetProfile(model.DebtIncomeProfile{MonthlyIncome: 4200})
	if got := s.Profile().MonthlyIncome; got != 4200 {
		t.Fatalf("Profile().MonthlyIncome = %v, want 4200", got)
	}

	s.SetAccounts([]model.CreditAccount{{Name: "Visa", Limit: 2000, Balance: 300}})
	if got := len(s.Accounts()); got != 1 {
		t.Fatalf("len(Accounts()) = %d, want 1", got)
	}

	s.AddPayment(model.PaymentRecord{AccountName: "Visa", Amount: 50})
	if got := len(s.Payments()); got != 1 {
		t.Fatalf("len(Payments()) = %d, want 1", got)
	}

	s.AddGoal(model.Goal{ID: "x", Name: "Vacation"})
	if got := len(s.Goals()); got != 1 {
		t.Fatalf("len(Goals()) = %d, want 1", got)
	}
}
