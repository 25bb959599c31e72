package domain

import "strings"

// Offering is one college+branch combination from the loaded dataset.
// Immutable after load; the engine only ever reads it.
type Offering struct {
	CollegeCode     string    `json:"college_code"`
	CollegeName     string    `json:"college_name"`
	District        string    `json:"district"`
	Ownership       string    `json:"ownership"`
	Branch          string    `json:"branch"`
	AnnualFee       int       `json:"annual_fee"`
	PlacementRate   float64   `json:"placement_rate"`
	QualityScore    float64   `json:"quality_score"`
	RuralSupport    bool      `json:"rural_support"`
	HostelAvailable bool      `json:"hostel_available"`
	Cutoffs         CutoffSet `json:"cutoffs"`
}

const (
	OwnershipGovernment      = "Government"
	OwnershipGovernmentAided = "Government-Aided"
	OwnershipPrivate         = "Private"
)

// NormalizeBranch upper-cases and trims a branch name so "cse" and " CSE "
// compare equal across the dataset and student preferences.
func NormalizeBranch(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

