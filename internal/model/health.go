package model

// Priority ranks a recommendation.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Recommendation is one advisory entry produced from the current records.
type Recommendation struct {
	Title       string
	Description string
	Priority    Priority
}

// ScoreBreakdown holds the health score and its weighted components.
// DTIScore carries no floor and may be negative for extreme ratios;
// the composite inherits that (only the util and payment terms clamp at 0).
type ScoreBreakdown struct {
	DTIRatio       float64
	Utilization    float64
	MissedPayments int

	DTIScore     float64
	UtilScore    float64
	PaymentScore float64

	Composite int
}

// PaymentSummary holds derived payment-history counts.
// Missed counts unpaid records whose due date has passed; it is computed
// against a reference time and never stored.
type PaymentSummary struct {
	Total  int
	OnTime int
	Late   int
	Missed int
}
