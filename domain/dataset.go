package domain

import "fmt"

// FallbackCutoff is the conservative requirement applied when a program has
// no published cutoff row. Unknown means "assume hard to get into".
const FallbackCutoff = 180.0

// CREATE TABLE public.colleges (
//     college_code     TEXT PRIMARY KEY,
//     college_name     TEXT NOT NULL,
//     district         TEXT NOT NULL,
//     ownership        TEXT NOT NULL,
//     hostel_available BOOLEAN DEFAULT FALSE,
//     rural_support    BOOLEAN DEFAULT FALSE
// );

type College struct {
	CollegeCode     string `gorm:"primaryKey;column:college_code;type:text" json:"college_code"`
	CollegeName     string `gorm:"column:college_name;type:text;not null" json:"college_name"`
	District        string `gorm:"column:district;type:text;not null" json:"district"`
	Ownership       string `gorm:"column:ownership;type:text;not null" json:"ownership"`
	HostelAvailable bool   `gorm:"column:hostel_available;default:false" json:"hostel_available"`
	RuralSupport    bool   `gorm:"column:rural_support;default:false" json:"rural_support"`
}

func (College) TableName() string {
	return "colleges"
}

// CREATE TABLE public.programs (
//     college_code   TEXT NOT NULL REFERENCES colleges(college_code),
//     branch         TEXT NOT NULL,
//     annual_fee     INTEGER NOT NULL,
//     placement_rate NUMERIC NOT NULL,
//     quality_score  NUMERIC NOT NULL
// );

type Program struct {
	CollegeCode   string  `gorm:"column:college_code;type:text;not null" json:"college_code"`
	Branch        string  `gorm:"column:branch;type:text;not null" json:"branch"`
	AnnualFee     int     `gorm:"column:annual_fee;not null" json:"annual_fee"`
	PlacementRate float64 `gorm:"column:placement_rate;type:numeric" json:"placement_rate"`
	QualityScore  float64 `gorm:"column:quality_score;type:numeric" json:"quality_score"`
}

func (Program) TableName() string {
	return "programs"
}

// CREATE TABLE public.cutoffs (
//     college_code TEXT NOT NULL,
//     branch       TEXT NOT NULL,
//     oc           NUMERIC,
//     bc           NUMERIC,
//     mbc          NUMERIC,
//     sc           NUMERIC,
//     st           NUMERIC
// );

type CutoffRecord struct {
	CollegeCode string  `gorm:"column:college_code;type:text;not null" json:"college_code"`
	Branch      string  `gorm:"column:branch;type:text;not null" json:"branch"`
	OC          float64 `gorm:"column:oc;type:numeric" json:"OC"`
	BC          float64 `gorm:"column:bc;type:numeric" json:"BC"`
	MBC         float64 `gorm:"column:mbc;type:numeric" json:"MBC"`
	SC          float64 `gorm:"column:sc;type:numeric" json:"SC"`
	ST          float64 `gorm:"column:st;type:numeric" json:"ST"`
}

func (CutoffRecord) TableName() string {
	return "cutoffs"
}

// BuildOfferings joins programs with their college and cutoff records into
// the immutable offering table, preserving programs order. Every offering
// comes out with a complete cutoff set: a program without a cutoff record
// gets FallbackCutoff across the board, and an unpublished category value
// (zero or negative cell) falls back to the row's OC value.
func BuildOfferings(colleges []College, programs []Program, cutoffs []CutoffRecord) ([]Offering, error) {
	collegeByCode := make(map[string]College, len(colleges))
	for _, c := range colleges {
		collegeByCode[c.CollegeCode] = c
	}

	type cutoffKey struct {
		code   string
		branch string
	}
	cutoffByKey := make(map[cutoffKey]CutoffRecord, len(cutoffs))
	for _, cu := range cutoffs {
		cutoffByKey[cutoffKey{cu.CollegeCode, NormalizeBranch(cu.Branch)}] = cu
	}

	offerings := make([]Offering, 0, len(programs))
	for _, p := range programs {
		college, ok := collegeByCode[p.CollegeCode]
		if !ok {
			return nil, fmt.Errorf("program %s/%s references unknown college code", p.CollegeCode, p.Branch)
		}

		set := CutoffSet{
			OC:  FallbackCutoff,
			BC:  FallbackCutoff,
			MBC: FallbackCutoff,
			SC:  FallbackCutoff,
			ST:  FallbackCutoff,
		}
		if cu, ok := cutoffByKey[cutoffKey{p.CollegeCode, NormalizeBranch(p.Branch)}]; ok {
			oc := cu.OC
			if oc <= 0 {
				oc = FallbackCutoff
			}
			set = CutoffSet{
				OC:  oc,
				BC:  orFallback(cu.BC, oc),
				MBC: orFallback(cu.MBC, oc),
				SC:  orFallback(cu.SC, oc),
				ST:  orFallback(cu.ST, oc),
			}
		}

		offerings = append(offerings, Offering{
			CollegeCode:     p.CollegeCode,
			CollegeName:     college.CollegeName,
			District:        college.District,
			Ownership:       college.Ownership,
			Branch:          p.Branch,
			AnnualFee:       p.AnnualFee,
			PlacementRate:   p.PlacementRate,
			QualityScore:    p.QualityScore,
			RuralSupport:    college.RuralSupport,
			HostelAvailable: college.HostelAvailable,
			Cutoffs:         set,
		})
	}

	return offerings, nil
}

func orFallback(v, fallback float64) float64 {
	if v <= 0 {
		return fallback
	}
	return v
}
