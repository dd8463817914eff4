package metrics

import (
	"testing"
	"time"

	"wealthwise/internal/model"
)

func TestSummarizePayments(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	payments := []model.PaymentRecord{
		{AccountName: "Mortgage", DueDate: now.AddDate(0, 0, -10), IsPaid: true},
		{AccountName: "Car Loan", DueDate: now.AddDate(0, 0, -8), IsPaid: true, IsLate: true},
		{AccountName: "Credit Card", DueDate: now.AddDate(0, 0, -5)},
		{AccountName: "Student Loan", DueDate: now.AddDate(0, 0, 5)},
	}

	sum := SummarizePayments(payments, now)
	if sum.Total != 4 {
		t.Errorf("Total = %d, want 4", sum.Total)
	}
	if sum.OnTime != 1 {
		t.Errorf("OnTime = %d, want 1", sum.OnTime)
	}
	if sum.Late != 1 {
		t.Errorf("Late = %d, want 1", sum.Late)
	}
	if sum.Missed != 1 {
		t.Errorf("Missed = %d, want 1 (only the unpaid past-due entry)", sum.Missed)
	}
}

func TestSortedByDateLeavesInputAlone(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC) }
	payments := []model.PaymentRecord{
		{AccountName: "old", PaymentDate: d(1)},
		{AccountName: "new", PaymentDate: d(20)},
		{AccountName: "mid", PaymentDate: d(10)},
	}

	sorted := SortedByDate(payments)
	want := []string{"new", "mid", "old"}
	for i, name := range want {
		if sorted[i].AccountName != name {
			t.Fatalf("sorted[%d] = %q, want %q", i, sorted[i].AccountName, name)
		}
	}
	if payments[0].AccountName != "old" {
		t.Fatal("input slice was reordered")
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name string
		goal model.Goal
		want float64
	}{
		{"halfway", model.Goal{CurrentAmount: 5000, TargetAmount: 10000}, 50},
		{"capped", model.Goal{CurrentAmount: 12000, TargetAmount: 10000}, 100},
		{"zero target", model.Goal{CurrentAmount: 500, TargetAmount: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalProgress(tc.goal); !almostEqual(got, tc.want) {
				t.Fatalf("GoalProgress = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDaysRemainingRoundsUp(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	g := model.Goal{Deadline: time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC)}
	// 2.5 days out rounds up to 3
	if got := DaysRemaining(g, now); got != 3 {
		t.Fatalf("DaysRemaining = %d, want 3", got)
	}

	past := model.Goal{Deadline: now.AddDate(0, 0, -2)}
	if got := DaysRemaining(past, now); got != -2 {
		t.Fatalf("DaysRemaining past deadline = %d, want -2", got)
	}
}

func TestMonthlyNeeded(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	g := model.Goal{CurrentAmount: 4000, TargetAmount: 10000, Deadline: now.AddDate(0, 0, 60)}
	// 6000 remaining over two 30-day months
	if got := MonthlyNeeded(g, now); !almostEqual(got, 3000) {
		t.Fatalf("MonthlyNeeded = %v, want 3000", got)
	}

	met := model.Goal{CurrentAmount: 10000, TargetAmount: 10000, Deadline: now.AddDate(0, 0, 60)}
	if got := MonthlyNeeded(met, now); got != 0 {
		t.Fatalf("MonthlyNeeded for met goal = %v, want 0", got)
	}

	overdue := model.Goal{CurrentAmount: 100, TargetAmount: 10000, Deadline: now.AddDate(0, 0, -1)}
	if got := MonthlyNeeded(overdue, now); got != 0 {
		t.Fatalf("MonthlyNeeded past deadline = %v, want 0", got)
	}
}

func TestGroupGoalsFirstSeenOrder(t *testing.T) {
	goals := []model.Goal{
		{ID: "1", Name: "Emergency Fund", Category: "Savings"},
		{ID: "2", Name: "Pay off Visa", Category: "Debt"},
		{ID: "3", Name: "Vacation", Category: "Savings"},
	}

	categories, byCategory := GroupGoals(goals)
	if len(categories) != 2 || categories[0] != "Savings" || categories[1] != "Debt" {
		t.Fatalf("categories = %v, want [Savings Debt]", categories)
	}
	if len(byCategory["Savings"]) != 2 || byCategory["Savings"][1].ID != "3" {
		t.Fatalf("Savings group = %+v", byCategory["Savings"])
	}
}
