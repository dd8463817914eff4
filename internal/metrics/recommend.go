package metrics

import (
	"fmt"

	"wealthwise/internal/model"
)

// maxRecommendations bounds the advisory list.
const maxRecommendations = 3

// Recommendations inspects the current ratios and records and returns at
// most three prioritized advisory entries. Rules are evaluated in a fixed
// order and each appends independently; the list is truncated afterwards,
// so earlier rules win when more than three fire.
func Recommendations(dtiRatio, utilization float64, payments []model.PaymentRecord, accounts []model.CreditAccount) []model.Recommendation {
	var recs []model.Recommendation

	switch {
	case dtiRatio > 0.43:
		recs = append(recs, model.Recommendation{
			Title:       "Reduce your debt-to-income ratio",
			Description: "Your DTI ratio is above the recommended 43%. Consider paying down debt or increasing income.",
			Priority:    model.PriorityHigh,
		})
	case dtiRatio > 0.36:
		recs = append(recs, model.Recommendation{
			Title:       "Work on lowering your debt-to-income ratio",
			Description: "Try to reduce your DTI ratio below 36% for better financial health.",
			Priority:    model.PriorityMedium,
		})
	}

	if utilization > 0.30 {
		priority := model.PriorityMedium
		if utilization > 0.50 {
			priority = model.PriorityHigh
		}
		recs = append(recs, model.Recommendation{
			Title:       "Lower your credit card utilization",
			Description: "Aim to keep credit utilization below 30% to improve your credit score.",
			Priority:    priority,
		})
	}

	if LateCount(payments) > 0 {
		recs = append(recs, model.Recommendation{
			Title:       "Set up automatic payments",
			Description: "Consider setting up automatic payments to avoid missing future payments.",
			Priority:    model.PriorityHigh,
		})
	}

	// Largest balance wins; strict comparison keeps the first on ties.
	if largest := largestBalance(accounts); largest != nil && largest.Balance > 1000 {
		recs = append(recs, model.Recommendation{
			Title:       fmt.Sprintf("Pay down %s", largest.Name),
			Description: "Focus on paying down your highest balance card to reduce interest payments.",
			Priority:    model.PriorityMedium,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, model.Recommendation{
			Title:       "Keep up the good work!",
			Description: "Your financial health looks good. Consider setting up an emergency fund if you haven't already.",
			Priority:    model.PriorityLow,
		})
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func largestBalance(accounts []model.CreditAccount) *model.CreditAccount {
	var best *model.CreditAccount
	for i := range accounts {
		if best == nil || accounts[i].Balance > best.Balance {
			best = &accounts[i]
		}
	}
	return best
}
