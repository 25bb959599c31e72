package recommend

// Config carries the engine knobs that are deliberately not hard-coded:
// tolerance and credit values the counseling team may want to tune without
// touching scoring logic.
type Config struct {
	// BudgetTolerance lets fees up to this fraction above the student's
	// budget through the eligibility filter as "budget stretch" rows.
	BudgetTolerance float64

	// StretchPenalty is the fraction shaved off the total score of a
	// budget-stretch row.
	StretchPenalty float64

	// ProximityPartialCredit is the proximity sub-score for offerings
	// outside the student's own district.
	ProximityPartialCredit float64

	// NeutralBranchPriority is the branch sub-score used when the student
	// lists no preferred branches.
	NeutralBranchPriority float64

	// DefaultTopK applies when the request does not ask for a count.
	DefaultTopK int

	// MaxTopK caps how many rows a single request may ask for.
	MaxTopK int
}

const (
	defaultBudgetTolerance        = 0.10
	defaultStretchPenalty         = 0.10
	defaultProximityPartialCredit = 0.5
	defaultNeutralBranchPriority  = 0.7
	defaultTopK                   = 10
	defaultMaxTopK                = 50
)

func DefaultConfig() Config {
	return Config{
		BudgetTolerance:        defaultBudgetTolerance,
		StretchPenalty:         defaultStretchPenalty,
		ProximityPartialCredit: defaultProximityPartialCredit,
		NeutralBranchPriority:  defaultNeutralBranchPriority,
		DefaultTopK:            defaultTopK,
		MaxTopK:                defaultMaxTopK,
	}
}
