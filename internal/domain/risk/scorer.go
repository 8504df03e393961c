// Package risk computes the deterministic acquisition risk assessment.
package risk

import (
	"fmt"

	"vehicle_acquisition/internal/domain/entities"
)

type Level string

const (
	LevelLow    Level = "LOW"
	LevelMedium Level = "MEDIUM"
	LevelHigh   Level = "HIGH"
)

const (
	highThreshold   = 7
	mediumThreshold = 4
)

// Assessment is derived on demand and never persisted. Factors keep the order
// the rules were applied in, highest priority first.
type Assessment struct {
	Score   int      `json:"score"`
	Level   Level    `json:"level"`
	Factors []string `json:"factors"`
}

type rule func(v *entities.Vehicle, i *entities.Inspection, q *entities.Quote) (int, string)

// rules are applied in this order; the order is also the factor order.
var rules = []rule{
	inspectionRating,
	criticalOBD2Codes,
	criticalSafetyIssues,
	titleStatus,
	outstandingLoan,
}

// Assess scores the vehicle, inspection and quote signals. Any input may be nil.
func Assess(vehicle *entities.Vehicle, inspection *entities.Inspection, quote *entities.Quote) Assessment {
	a := Assessment{Factors: []string{}}
	for _, r := range rules {
		points, factor := r(vehicle, inspection, quote)
		if points <= 0 {
			continue
		}
		a.Score += points
		a.Factors = append(a.Factors, factor)
	}
	a.Level = Classify(a.Score)
	return a
}

// Classify maps a score to its level.
func Classify(score int) Level {
	switch {
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}

func inspectionRating(_ *entities.Vehicle, i *entities.Inspection, _ *entities.Quote) (int, string) {
	if i == nil || i.OverallRating == nil {
		return 0, ""
	}
	switch r := *i.OverallRating; {
	case r < 3:
		return 3, "Low overall inspection rating"
	case r < 4:
		return 2, "Below average inspection rating"
	}
	return 0, ""
}

func criticalOBD2Codes(_ *entities.Vehicle, _ *entities.Inspection, q *entities.Quote) (int, string) {
	if q == nil || q.OBD2Scan == nil {
		return 0, ""
	}
	n := len(q.OBD2Scan.CriticalCodes)
	return n, fmt.Sprintf("%d critical OBD2 codes", n)
}

func criticalSafetyIssues(_ *entities.Vehicle, i *entities.Inspection, _ *entities.Quote) (int, string) {
	if i == nil {
		return 0, ""
	}
	n := i.CriticalSafetyIssues()
	return n * 2, fmt.Sprintf("%d critical safety issues", n)
}

// titleStatus treats a missing vehicle as unknown rather than non-clean, but an
// empty title status on a known vehicle counts as non-clean.
func titleStatus(v *entities.Vehicle, _ *entities.Inspection, _ *entities.Quote) (int, string) {
	if v == nil || v.TitleStatus == entities.TitleStatusClean {
		return 0, ""
	}
	return 2, "Non-clean title status"
}

func outstandingLoan(v *entities.Vehicle, _ *entities.Inspection, _ *entities.Quote) (int, string) {
	if v == nil || v.LoanStatus != entities.LoanStatusStillHasLoan || v.LoanAmount == nil || *v.LoanAmount <= 0 {
		return 0, ""
	}
	return 1, "Outstanding loan balance"
}
