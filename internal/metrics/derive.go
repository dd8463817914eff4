package metrics

import (
	"math"
	"sort"
	"time"

	"wealthwise/internal/model"
)

// SummarizePayments derives display counts from the payment history.
// A payment is "missed" when it is unpaid and its due date is before now;
// that classification is computed here, never stored on the record.
func SummarizePayments(payments []model.PaymentRecord, now time.Time) model.PaymentSummary {
	sum := model.PaymentSummary{Total: len(payments)}
	for _, p := range payments {
		if p.IsPaid && !p.IsLate {
			sum.OnTime++
		}
		if p.IsLate {
			sum.Late++
		}
		if !p.IsPaid && !p.DueDate.IsZero() && p.DueDate.Before(now) {
			sum.Missed++
		}
	}
	return sum
}

// SortedByDate returns a copy of payments ordered most recent first by
// payment date. Stored insertion order is left untouched.
func SortedByDate(payments []model.PaymentRecord) []model.PaymentRecord {
	sorted := append([]model.PaymentRecord(nil), payments...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaymentDate.After(sorted[j].PaymentDate)
	})
	return sorted
}

// GoalProgress returns completion percent capped at 100. A non-positive
// target yields 0; target validation is the caller's job, not the store's.
func GoalProgress(g model.Goal) float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	progress := g.CurrentAmount / g.TargetAmount * 100
	if progress > 100 {
		return 100
	}
	return progress
}

// DaysRemaining returns whole days until the goal deadline, rounded up.
// Past deadlines yield negative values.
func DaysRemaining(g model.Goal, now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}

// MonthlyNeeded returns the amount to save per month to hit the target by
// the deadline, treating a month as 30 days. Returns 0 once the deadline
// has passed or the goal is already met.
func MonthlyNeeded(g model.Goal, now time.Time) float64 {
	days := DaysRemaining(g, now)
	if days <= 0 {
		return 0
	}
	remaining := g.TargetAmount - g.CurrentAmount
	if remaining <= 0 {
		return 0
	}
	return remaining / (float64(days) / 30)
}

// GroupGoals partitions goals by category, preserving insertion order
// within each group. Categories are returned in first-seen order.
func GroupGoals(goals []model.Goal) (categories []string, byCategory map[string][]model.Goal) {
	byCategory = make(map[string][]model.Goal)
	for _, g := range goals {
		if _, ok := byCategory[g.Category]; !ok {
			categories = append(categories, g.Category)
		}
		byCategory[g.Category] = append(byCategory[g.Category], g)
	}
	return categories, byCategory
}
