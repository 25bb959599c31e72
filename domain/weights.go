package domain

// Weights holds the scoring weight per criterion. All weights are
// non-negative; the engine normalizes the sum to 1 before scoring.
type Weights struct {
	Affordability  float64 `json:"affordability"`
	Proximity      float64 `json:"proximity"`
	Placements     float64 `json:"placements"`
	Quality        float64 `json:"quality"`
	RuralSupport   float64 `json:"rural_support"`
	Hostel         float64 `json:"hostel"`
	BranchPriority float64 `json:"branch_priority"`
}

const (
	defaultWAffordability  = 0.25
	defaultWProximity      = 0.20
	defaultWPlacements     = 0.20
	defaultWQuality        = 0.15
	defaultWRuralSupport   = 0.10
	defaultWHostel         = 0.05
	defaultWBranchPriority = 0.05
)

// DefaultWeights returns the counseling-team defaults (sum 1.0).
func DefaultWeights() Weights {
	return Weights{
		Affordability:  defaultWAffordability,
		Proximity:      defaultWProximity,
		Placements:     defaultWPlacements,
		Quality:        defaultWQuality,
		RuralSupport:   defaultWRuralSupport,
		Hostel:         defaultWHostel,
		BranchPriority: defaultWBranchPriority,
	}
}

// Sum returns the total of all weights, before normalization.
func (w Weights) Sum() float64 {
	return w.Affordability + w.Proximity + w.Placements + w.Quality +
		w.RuralSupport + w.Hostel + w.BranchPriority
}
