package metrics

import (
	"testing"

	"wealthwise/internal/model"
)

func TestScoreDetailsSevereDTIPenalty(t *testing.T) {
	// income 5000, debts 2250 -> dti 0.45 -> (100-45)*0.8 = 44.0
	bd := ScoreDetails(0.45, 0, nil)
	if !almostEqual(bd.DTIScore, 44.0) {
		t.Fatalf("DTIScore = %v, want 44.0", bd.DTIScore)
	}
}

func TestScoreDetailsNoPenaltyAtThreshold(t *testing.T) {
	// 0.43 is not strictly greater than the threshold; no penalty applies
	bd := ScoreDetails(0.43, 0, nil)
	if !almostEqual(bd.DTIScore, 57.0) {
		t.Fatalf("DTIScore at 0.43 = %v, want 57.0", bd.DTIScore)
	}
}

func TestScoreComponentClamps(t *testing.T) {
	late := make([]model.PaymentRecord, 8)
	for i := range late {
		late[i] = model.PaymentRecord{IsLate: true}
	}

	bd := ScoreDetails(0, 0.9, late)
	if bd.UtilScore != 0 {
		t.Fatalf("UtilScore = %v, want 0 (clamped)", bd.UtilScore)
	}
	if bd.PaymentScore != 0 {
		t.Fatalf("PaymentScore = %v, want 0 (clamped: 8 missed * 15 > 100)", bd.PaymentScore)
	}
	if bd.MissedPayments != 8 {
		t.Fatalf("MissedPayments = %d, want 8", bd.MissedPayments)
	}
}

func TestHealthScoreUnclampedBelowZero(t *testing.T) {
	// Extreme DTI drives the dti component far negative; the composite has
	// no lower clamp and must reflect that.
	score := HealthScore(5.0, 1.0, nil)
	// dtiScore = (100-500)*0.8 = -320; util 0; payment 100
	// composite = -320*0.35 + 0 + 100*0.35 = -112 + 35 = -77
	if score != -77 {
		t.Fatalf("HealthScore = %d, want -77", score)
	}
}

func TestHealthScorePure(t *testing.T) {
	payments := []model.PaymentRecord{{IsLate: true}, {IsPaid: true}}
	first := HealthScore(0.45, 0.3226, payments)
	second := HealthScore(0.45, 0.3226, payments)
	if first != second {
		t.Fatalf("HealthScore not idempotent: %d then %d", first, second)
	}
}

func TestHealthScoreDefaultData(t *testing.T) {
	// dti 0.45 -> 44.0; util 5000/15500 -> 100-64.516 = 35.48; 1 late -> 85
	// composite = 44*0.35 + 35.4839*0.30 + 85*0.35 = 15.4 + 10.645 + 29.75 = 55.795 -> 56
	accounts := []model.CreditAccount{
		{Limit: 5000, Balance: 1500},
		{Limit: 7500, Balance: 3000},
		{Limit: 3000, Balance: 500},
	}
	payments := []model.PaymentRecord{{IsPaid: true}, {IsPaid: true}, {IsPaid: true}, {IsPaid: true}, {IsLate: true}}

	score := HealthScore(0.45, CreditUtilization(accounts), payments)
	if score != 56 {
		t.Fatalf("HealthScore = %d, want 56", score)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{54.5, 55},
		{54.4999, 54},
		{-0.5, 0},
		{-1.5, -1},
		{-1.51, -2},
	}
	for _, tc := range cases {
		if got := roundHalfUp(tc.in); got != tc.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestScoreLabel(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{95, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Fair"},
		{40, "Fair"},
		{39, "Poor"},
		{-10, "Poor"},
	}
	for _, tc := range cases {
		if got := ScoreLabel(tc.score); got != tc.want {
			t.Errorf("ScoreLabel(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
