package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tneaCompass/domain"
)

func rec(college, program string, total, quality float64) domain.Recommendation {
	return domain.Recommendation{
		CollegeName:  college,
		Program:      program,
		TotalScore:   total,
		QualityScore: quality,
	}
}

func TestRankRecommendations_OrdersByScoreDescending(t *testing.T) {
	recs := rankRecommendations([]domain.Recommendation{
		rec("B College", "CSE", 0.5, 0.8),
		rec("A College", "CSE", 0.9, 0.8),
		rec("C College", "CSE", 0.7, 0.8),
	}, 10)

	require.Len(t, recs, 3)
	assert.Equal(t, "A College", recs[0].CollegeName)
	assert.Equal(t, "C College", recs[1].CollegeName)
	assert.Equal(t, "B College", recs[2].CollegeName)

	assert.Equal(t, 1, recs[0].Rank)
	assert.Equal(t, 2, recs[1].Rank)
	assert.Equal(t, 3, recs[2].Rank)
}

func TestRankRecommendations_TieBreaks(t *testing.T) {
	recs := rankRecommendations([]domain.Recommendation{
		rec("B College", "ECE", 0.7, 0.6),
		rec("B College", "CSE", 0.7, 0.6),
		rec("A College", "CSE", 0.7, 0.6),
		rec("C College", "CSE", 0.7, 0.9),
	}, 10)

	require.Len(t, recs, 4)
	// quality wins first, then college name, then program
	assert.Equal(t, "C College", recs[0].CollegeName)
	assert.Equal(t, "A College", recs[1].CollegeName)
	assert.Equal(t, "B College", recs[2].CollegeName)
	assert.Equal(t, "CSE", recs[2].Program)
	assert.Equal(t, "B College", recs[3].CollegeName)
	assert.Equal(t, "ECE", recs[3].Program)
}

func TestRankRecommendations_TruncatesToTopK(t *testing.T) {
	recs := rankRecommendations([]domain.Recommendation{
		rec("A College", "CSE", 0.9, 0.8),
		rec("B College", "CSE", 0.8, 0.8),
		rec("C College", "CSE", 0.7, 0.8),
	}, 2)

	require.Len(t, recs, 2)
	assert.Equal(t, "A College", recs[0].CollegeName)
	assert.Equal(t, "B College", recs[1].CollegeName)
}

func TestRankRecommendations_Deterministic(t *testing.T) {
	input := func() []domain.Recommendation {
		return []domain.Recommendation{
			rec("B College", "CSE", 0.7, 0.6),
			rec("A College", "ECE", 0.7, 0.6),
			rec("C College", "CSE", 0.9, 0.9),
			rec("A College", "CSE", 0.7, 0.6),
		}
	}

	first := rankRecommendations(input(), 10)
	second := rankRecommendations(input(), 10)

	assert.Equal(t, first, second)
}
