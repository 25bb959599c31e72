package recommend

import (
	"fmt"
	"strings"

	"tneaCompass/domain"
)

// Criterion names used as breakdown keys in explanations.
const (
	CriterionAffordability  = "affordability"
	CriterionProximity      = "proximity"
	CriterionPlacements     = "placements"
	CriterionQuality        = "quality"
	CriterionRuralSupport   = "rural_support"
	CriterionHostel         = "hostel"
	CriterionBranchPriority = "branch_priority"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// normalizeWeights scales the weights so they sum to 1. An all-zero set
// falls back to the defaults.
func normalizeWeights(w domain.Weights) domain.Weights {
	sum := w.Sum()
	if sum == 0 {
		return domain.DefaultWeights()
	}

	w.Affordability /= sum
	w.Proximity /= sum
	w.Placements /= sum
	w.Quality /= sum
	w.RuralSupport /= sum
	w.Hostel /= sum
	w.BranchPriority /= sum
	return w
}

// affordabilityScore rewards headroom under the budget: free is 1, at
// budget is 0, over budget floors at 0.
func affordabilityScore(fee int, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	s := 1 - float64(fee)/budget
	if s < 0 {
		return 0
	}
	return s
}

func proximityScore(profile domain.StudentProfile, off domain.Offering, cfg Config) float64 {
	if strings.EqualFold(strings.TrimSpace(off.District), strings.TrimSpace(profile.District)) {
		return 1
	}
	return cfg.ProximityPartialCredit
}

func ruralSupportScore(profile domain.StudentProfile, off domain.Offering) float64 {
	if profile.RuralOrFirstGen && off.RuralSupport {
		return 1
	}
	return 0
}

func hostelScore(off domain.Offering) float64 {
	if off.HostelAvailable {
		return 1
	}
	return 0
}

// branchPriorityScore rewards preference order: first choice 1.0, dropping
// linearly to 1/N for the last listed branch. Without preferences every
// branch gets the neutral credit.
func branchPriorityScore(prefIndex, prefCount int, cfg Config) float64 {
	if prefCount <= 0 || prefIndex < 0 {
		return cfg.NeutralBranchPriority
	}
	return float64(prefCount-prefIndex) / float64(prefCount)
}

// scoreCandidate computes the weighted total and its breakdown for one
// eligible offering. Weights must already be normalized. For budget-stretch
// rows every contribution is scaled down by the stretch penalty, so the
// breakdown always sums to the total.
func scoreCandidate(cand candidate, profile domain.StudentProfile, weights domain.Weights, cfg Config) (float64, domain.Explanation) {
	off := cand.offering

	subScores := []struct {
		name   string
		score  float64
		weight float64
	}{
		{CriterionAffordability, affordabilityScore(off.AnnualFee, profile.Budget), weights.Affordability},
		{CriterionProximity, proximityScore(profile, off, cfg), weights.Proximity},
		{CriterionPlacements, clamp01(off.PlacementRate), weights.Placements},
		{CriterionQuality, clamp01(off.QualityScore), weights.Quality},
		{CriterionRuralSupport, ruralSupportScore(profile, off), weights.RuralSupport},
		{CriterionHostel, hostelScore(off), weights.Hostel},
		{CriterionBranchPriority, branchPriorityScore(cand.prefIndex, cand.prefCount, cfg), weights.BranchPriority},
	}

	factor := 1.0
	notes := []string{}
	if cand.budgetStretch {
		factor = 1 - cfg.StretchPenalty
		notes = append(notes, fmt.Sprintf("Budget slightly above limit: applied %.0f%% penalty.", cfg.StretchPenalty*100))
	}

	components := make(map[string]domain.ScoreComponent, len(subScores))
	total := 0.0
	for _, s := range subScores {
		contribution := s.weight * s.score * factor
		components[s.name] = domain.ScoreComponent{
			Score:        s.score,
			Weight:       s.weight,
			Contribution: contribution,
		}
		total += contribution
	}

	return total, domain.Explanation{Components: components, Notes: notes}
}
