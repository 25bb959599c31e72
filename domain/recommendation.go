package domain

// ScoreComponent is one criterion's share of a recommendation's total score.
type ScoreComponent struct {
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Explanation tells the student why an offering scored the way it did.
// Contributions sum to the total score, penalties included.
type Explanation struct {
	Components map[string]ScoreComponent `json:"components"`
	Notes      []string                  `json:"notes"`
}

// Recommendation is one ranked result row returned to the caller.
type Recommendation struct {
	Rank              int         `json:"rank"`
	CollegeCode       string      `json:"college_code"`
	CollegeName       string      `json:"college_name"`
	District          string      `json:"district"`
	Ownership         string      `json:"ownership"`
	Program           string      `json:"program"`
	AnnualFee         int         `json:"annual_fee"`
	PlacementRate     float64     `json:"placement_rate"`
	QualityScore      float64     `json:"quality_score"`
	DistanceKm        float64     `json:"distance_km"`
	EligibilityMargin float64     `json:"eligibility_margin"`
	TotalScore        float64     `json:"total_score"`
	Explanation       Explanation `json:"explanation"`
}
