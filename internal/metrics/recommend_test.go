package metrics

import (
	"strings"
	"testing"

	"wealthwise/internal/model"
)

func TestRecommendationsHighDTI(t *testing.T) {
	recs := Recommendations(0.45, 0, nil, nil)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Title != "Reduce your debt-to-income ratio" {
		t.Fatalf("title = %q", recs[0].Title)
	}
	if recs[0].Priority != model.PriorityHigh {
		t.Fatalf("priority = %q, want high", recs[0].Priority)
	}
}

func TestRecommendationsModerateDTI(t *testing.T) {
	recs := Recommendations(0.40, 0, nil, nil)
	if len(recs) != 1 || recs[0].Priority != model.PriorityMedium {
		t.Fatalf("recs = %+v, want single medium DTI entry", recs)
	}
	if recs[0].Title != "Work on lowering your debt-to-income ratio" {
		t.Fatalf("title = %q", recs[0].Title)
	}
}

func TestRecommendationsUtilizationPriority(t *testing.T) {
	cases := []struct {
		name string
		util float64
		want model.Priority
	}{
		{"moderate", 0.40, model.PriorityMedium},
		{"severe", 0.60, model.PriorityHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs := Recommendations(0, tc.util, nil, nil)
			if len(recs) != 1 {
				t.Fatalf("got %d recommendations, want 1", len(recs))
			}
			if recs[0].Title != "Lower your credit card utilization" {
				t.Fatalf("title = %q", recs[0].Title)
			}
			if recs[0].Priority != tc.want {
				t.Fatalf("priority = %q, want %q", recs[0].Priority, tc.want)
			}
		})
	}
}

func TestRecommendationsTruncatedToThree(t *testing.T) {
	// Four rules fire: high DTI, high utilization, late payments, large
	// balance. The balance rule is evaluated last and must be the one cut.
	payments := []model.PaymentRecord{{IsLate: true}}
	accounts := []model.CreditAccount{{Name: "Citi Rewards", Limit: 7500, Balance: 3000}}

	recs := Recommendations(0.50, 0.60, payments, accounts)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}
	for _, r := range recs {
		if strings.HasPrefix(r.Title, "Pay down") {
			t.Fatalf("balance rule survived truncation: %+v", recs)
		}
	}
}

func TestRecommendationsLargestBalanceTie(t *testing.T) {
	accounts := []model.CreditAccount{
		{Name: "First", Limit: 5000, Balance: 2000},
		{Name: "Second", Limit: 5000, Balance: 2000},
	}
	recs := Recommendations(0, 0, nil, accounts)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want 1", len(recs))
	}
	if recs[0].Title != "Pay down First" {
		t.Fatalf("title = %q, want first account on a tie", recs[0].Title)
	}
}

func TestRecommendationsBalanceThreshold(t *testing.T) {
	// 1000 is not strictly over the threshold; no entry fires, so the
	// fallback takes over.
	accounts := []model.CreditAccount{{Name: "Small", Limit: 5000, Balance: 1000}}
	recs := Recommendations(0, 0, nil, accounts)
	if len(recs) != 1 || recs[0].Priority != model.PriorityLow {
		t.Fatalf("recs = %+v, want single fallback entry", recs)
	}
}

func TestRecommendationsFallback(t *testing.T) {
	recs := Recommendations(0.20, 0.10, nil, nil)
	if len(recs) != 1 {
		t.Fatalf("got %d recommendations, want exactly 1", len(recs))
	}
	if recs[0].Title != "Keep up the good work!" {
		t.Fatalf("title = %q", recs[0].Title)
	}
	if recs[0].Priority != model.PriorityLow {
		t.Fatalf("priority = %q, want low", recs[0].Priority)
	}
}
