package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tneaCompass/domain"
)

func testOffering(code, district, branch string, fee int, bcCutoff float64) domain.Offering {
	return domain.Offering{
		CollegeCode:     code,
		CollegeName:     "College " + code,
		District:        district,
		Ownership:       domain.OwnershipGovernment,
		Branch:          branch,
		AnnualFee:       fee,
		PlacementRate:   0.8,
		QualityScore:    0.8,
		HostelAvailable: true,
		Cutoffs:         domain.CutoffSet{OC: bcCutoff + 3, BC: bcCutoff, MBC: bcCutoff - 3, SC: bcCutoff - 9, ST: bcCutoff - 13},
	}
}

func testProfile() domain.StudentProfile {
	return domain.StudentProfile{
		Cutoff:   180,
		Category: domain.CategoryBC,
		District: "Chennai",
		Budget:   50000,
	}
}

func TestFilterEligible_CutoffGate(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "CSE", 40000, 195),
	}

	got := filterEligible(testProfile(), offerings, DefaultConfig())

	require.Len(t, got, 1)
	assert.Equal(t, "C001", got[0].offering.CollegeCode)
	assert.Equal(t, 175.0, got[0].requiredCutoff)
}

func TestFilterEligible_CategorySelectsItsOwnCutoff(t *testing.T) {
	// BC requirement 183 is above the mark but ST (170) is not
	off := testOffering("C001", "Chennai", "CSE", 40000, 183)

	profile := testProfile()
	assert.Empty(t, filterEligible(profile, []domain.Offering{off}, DefaultConfig()))

	profile.Category = domain.CategoryST
	assert.Len(t, filterEligible(profile, []domain.Offering{off}, DefaultConfig()), 1)
}

func TestFilterEligible_BudgetTolerance(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		fee         int
		wantKept    bool
		wantStretch bool
	}{
		{name: "under budget", fee: 40000, wantKept: true, wantStretch: false},
		{name: "exactly at budget", fee: 50000, wantKept: true, wantStretch: false},
		{name: "inside tolerance", fee: 54000, wantKept: true, wantStretch: true},
		{name: "at tolerance edge", fee: 55000, wantKept: true, wantStretch: true},
		{name: "beyond tolerance", fee: 56000, wantKept: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offerings := []domain.Offering{testOffering("C001", "Chennai", "CSE", tt.fee, 175)}
			got := filterEligible(testProfile(), offerings, cfg)

			if !tt.wantKept {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantStretch, got[0].budgetStretch)
		})
	}
}

func TestFilterEligible_BranchPreference(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "ECE", 40000, 175),
		testOffering("C003", "Chennai", "MECH", 40000, 175),
	}

	profile := testProfile()
	profile.PreferredBranches = []string{" ece ", "CSE"}

	got := filterEligible(profile, offerings, DefaultConfig())

	require.Len(t, got, 2)
	assert.Equal(t, "C001", got[0].offering.CollegeCode)
	assert.Equal(t, 1, got[0].prefIndex)
	assert.Equal(t, "C002", got[1].offering.CollegeCode)
	assert.Equal(t, 0, got[1].prefIndex)
}

func TestFilterEligible_DuplicatePreferencesKeepIndexBelowCount(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "ECE", 40000, 175),
	}

	profile := testProfile()
	profile.PreferredBranches = []string{"CSE", "CSE", "CSE", "ECE"}

	got := filterEligible(profile, offerings, DefaultConfig())

	// ECE is the second distinct choice: index 1 of 2, not raw position 3
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].prefIndex)
	assert.Equal(t, 2, got[0].prefCount)
	assert.Less(t, got[0].prefIndex, got[0].prefCount)
}

func TestFilterEligible_BlankPaddedPreferencesKeepIndexBelowCount(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "ECE", 40000, 175),
	}

	profile := testProfile()
	profile.PreferredBranches = []string{"", " ", "CSE", "ECE"}

	got := filterEligible(profile, offerings, DefaultConfig())

	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].prefIndex)
	assert.Equal(t, 1, got[1].prefIndex)
	assert.Equal(t, 2, got[0].prefCount)
}

func TestFilterEligible_NoPreferencesPassesEveryBranch(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "ECE", 40000, 175),
	}

	got := filterEligible(testProfile(), offerings, DefaultConfig())

	require.Len(t, got, 2)
	assert.Equal(t, -1, got[0].prefIndex)
}

func TestFilterEligible_BlankPreferencesAreIgnored(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "ECE", 40000, 175),
	}

	profile := testProfile()
	profile.PreferredBranches = []string{"", "  "}

	// an all-blank list behaves like no list at all
	got := filterEligible(profile, offerings, DefaultConfig())
	assert.Len(t, got, 2)
}

func TestFilterEligible_HostelRequirement(t *testing.T) {
	withHostel := testOffering("C001", "Chennai", "CSE", 40000, 175)
	noHostel := testOffering("C002", "Chennai", "CSE", 40000, 175)
	noHostel.HostelAvailable = false

	profile := testProfile()
	profile.NeedHostel = true

	got := filterEligible(profile, []domain.Offering{withHostel, noHostel}, DefaultConfig())

	require.Len(t, got, 1)
	assert.Equal(t, "C001", got[0].offering.CollegeCode)
}

func TestFilterEligible_PreservesTableOrder(t *testing.T) {
	offerings := []domain.Offering{
		testOffering("C003", "Chennai", "CSE", 40000, 175),
		testOffering("C001", "Chennai", "CSE", 40000, 175),
		testOffering("C002", "Chennai", "CSE", 40000, 175),
	}

	got := filterEligible(testProfile(), offerings, DefaultConfig())

	require.Len(t, got, 3)
	assert.Equal(t, "C003", got[0].offering.CollegeCode)
	assert.Equal(t, "C001", got[1].offering.CollegeCode)
	assert.Equal(t, "C002", got[2].offering.CollegeCode)
}
