package metrics

import (
	"math"

	"wealthwise/internal/model"
)

// Scoring weights and thresholds.
const (
	dtiWeight     = 0.35
	utilWeight    = 0.30
	paymentWeight = 0.35

	severeDTIThreshold = 0.43
	severeDTIPenalty   = 0.8
	missedPenalty      = 15
)

// HealthScore combines the two ratios and payment lateness into the
// composite 0-100 score. See ScoreDetails for the component math.
func HealthScore(dtiRatio, utilization float64, payments []model.PaymentRecord) int {
	return ScoreDetails(dtiRatio, utilization, payments).Composite
}

// ScoreDetails computes the composite score along with its components.
//
// The DTI component carries no floor and goes negative for extreme ratios,
// which can drag the composite below zero; only the utilization and payment
// components clamp at 0. That asymmetry is part of the score's contract and
// must not be "fixed" here.
func ScoreDetails(dtiRatio, utilization float64, payments []model.PaymentRecord) model.ScoreBreakdown {
	missed := LateCount(payments)

	dtiScore := 100 - dtiRatio*100
	if dtiRatio > severeDTIThreshold {
		dtiScore *= severeDTIPenalty
	}

	utilScore := 100 - utilization*200
	if utilScore < 0 {
		utilScore = 0
	}

	paymentScore := 100 - float64(missed)*missedPenalty
	if paymentScore < 0 {
		paymentScore = 0
	}

	weighted := dtiScore*dtiWeight + utilScore*utilWeight + paymentScore*paymentWeight

	return model.ScoreBreakdown{
		DTIRatio:       dtiRatio,
		Utilization:    utilization,
		MissedPayments: missed,
		DTIScore:       dtiScore,
		UtilScore:      utilScore,
		PaymentScore:   paymentScore,
		Composite:      roundHalfUp(weighted),
	}
}

// roundHalfUp rounds to the nearest integer with .5 going up,
// so -1.5 rounds to -1 rather than -2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ScoreLabel maps a composite score to its display band.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}
