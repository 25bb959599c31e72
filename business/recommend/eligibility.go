package recommend

import (
	"tneaCompass/domain"
)

// candidate is an offering that survived the eligibility filter, carrying
// what the scoring stage needs to know about how it got through.
type candidate struct {
	offering       domain.Offering
	requiredCutoff float64
	budgetStretch  bool

	// position of the offering's branch in the preference list; -1 when the
	// student listed no preferences.
	prefIndex int
	prefCount int
}

// preferenceIndex maps normalized branch names to their position among the
// distinct non-blank entries of the student's ordered preference list, so a
// branch's index is always below the map size. Blank entries are ignored;
// on duplicates the earliest position wins.
func preferenceIndex(branches []string) map[string]int {
	prefs := make(map[string]int, len(branches))
	for _, b := range branches {
		key := domain.NormalizeBranch(b)
		if key == "" {
			continue
		}
		if _, ok := prefs[key]; !ok {
			prefs[key] = len(prefs)
		}
	}
	return prefs
}

// filterEligible applies the hard eligibility rules to every offering, in
// table order: cutoff met for the student's category, fee within budget
// tolerance, branch preferred when preferences were given, hostel available
// when required. An offering priced above budget but inside the tolerance
// passes with budgetStretch set.
func filterEligible(profile domain.StudentProfile, offerings []domain.Offering, cfg Config) []candidate {
	prefs := preferenceIndex(profile.PreferredBranches)
	maxFee := profile.Budget * (1 + cfg.BudgetTolerance)

	candidates := make([]candidate, 0, len(offerings))
	for _, off := range offerings {
		required, err := off.Cutoffs.ForCategory(profile.Category)
		if err != nil {
			continue
		}
		if profile.Cutoff < required {
			continue
		}

		fee := float64(off.AnnualFee)
		if fee > maxFee {
			continue
		}

		prefIndex := -1
		if len(prefs) > 0 {
			idx, ok := prefs[domain.NormalizeBranch(off.Branch)]
			if !ok {
				continue
			}
			prefIndex = idx
		}

		if profile.NeedHostel && !off.HostelAvailable {
			continue
		}

		candidates = append(candidates, candidate{
			offering:       off,
			requiredCutoff: required,
			budgetStretch:  fee > profile.Budget,
			prefIndex:      prefIndex,
			prefCount:      len(prefs),
		})
	}

	return candidates
}
