package recommend

import (
	"sort"

	"tneaCompass/domain"
)

// rankRecommendations orders results by total score descending, breaking
// ties by quality score descending, then college name ascending, then
// branch ascending so equal inputs always rank identically. The returned
// slice is truncated to topK and carries 1-based ranks.
func rankRecommendations(recs []domain.Recommendation, topK int) []domain.Recommendation {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].TotalScore != recs[j].TotalScore {
			return recs[i].TotalScore > recs[j].TotalScore
		}
		if recs[i].QualityScore != recs[j].QualityScore {
			return recs[i].QualityScore > recs[j].QualityScore
		}
		if recs[i].CollegeName != recs[j].CollegeName {
			return recs[i].CollegeName < recs[j].CollegeName
		}
		return recs[i].Program < recs[j].Program
	})

	if topK > 0 && topK < len(recs) {
		recs = recs[:topK]
	}

	for i := range recs {
		recs[i].Rank = i + 1
	}

	return recs
}
