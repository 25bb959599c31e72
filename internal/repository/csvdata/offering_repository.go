package csvdata

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tneaCompass/domain"
)

const (
	collegesFile = "colleges.csv"
	programsFile = "programs.csv"
	cutoffsFile  = "cutoffs.csv"
)

// OfferingRepository serves the offering table assembled from the three
// dataset CSVs. The table is built once in the constructor and never
// changes afterwards.
type OfferingRepository struct {
	offerings []domain.Offering
}

// NewOfferingRepository loads colleges.csv, programs.csv and cutoffs.csv
// from dir and joins them into the offering table. Any malformed cell,
// missing column or dangling college reference fails the load.
func NewOfferingRepository(dir string) (*OfferingRepository, error) {
	colleges, err := loadColleges(filepath.Join(dir, collegesFile))
	if err != nil {
		return nil, err
	}

	programs, err := loadPrograms(filepath.Join(dir, programsFile))
	if err != nil {
		return nil, err
	}

	cutoffs, err := loadCutoffs(filepath.Join(dir, cutoffsFile))
	if err != nil {
		return nil, err
	}

	offerings, err := domain.BuildOfferings(colleges, programs, cutoffs)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble offerings: %w", err)
	}

	return &OfferingRepository{offerings: offerings}, nil
}

func (r *OfferingRepository) FindAll(ctx context.Context) ([]domain.Offering, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return r.offerings, nil
}

// ---- CSV parsing ----

// table is one parsed CSV: lower-cased header names mapped to column
// positions, plus the data rows.
type table struct {
	file    string
	columns map[string]int
	rows    [][]string
}

func readTable(path string, required ...string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", filepath.Base(path))
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%s is missing required column %q", filepath.Base(path), name)
		}
	}

	return &table{
		file:    filepath.Base(path),
		columns: columns,
		rows:    records[1:],
	}, nil
}

func (t *table) str(row []string, column string) string {
	return strings.TrimSpace(row[t.columns[column]])
}

func (t *table) boolCell(row []string, line int, column string) (bool, error) {
	raw := strings.ToLower(t.str(row, column))
	switch raw {
	case "", "no", "n":
		return false, nil
	case "yes", "y":
		return true, nil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s line %d: invalid %s value %q", t.file, line, column, raw)
	}
	return b, nil
}

// floatCell parses a numeric cell; an empty cell reads as zero so an
// unpublished cutoff can fall through to the category fallback.
func (t *table) floatCell(row []string, line int, column string) (float64, error) {
	raw := t.str(row, column)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: invalid %s value %q", t.file, line, column, raw)
	}
	return v, nil
}

func (t *table) intCell(row []string, line int, column string) (int, error) {
	raw := t.str(row, column)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s line %d: invalid %s value %q", t.file, line, column, raw)
	}
	return v, nil
}

func loadColleges(path string) ([]domain.College, error) {
	t, err := readTable(path, "college_code", "college_name", "district", "ownership", "hostel_available", "rural_support")
	if err != nil {
		return nil, err
	}

	colleges := make([]domain.College, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		hostel, err := t.boolCell(row, line, "hostel_available")
		if err != nil {
			return nil, err
		}
		rural, err := t.boolCell(row, line, "rural_support")
		if err != nil {
			return nil, err
		}

		colleges = append(colleges, domain.College{
			CollegeCode:     t.str(row, "college_code"),
			CollegeName:     t.str(row, "college_name"),
			District:        t.str(row, "district"),
			Ownership:       t.str(row, "ownership"),
			HostelAvailable: hostel,
			RuralSupport:    rural,
		})
	}

	return colleges, nil
}

func loadPrograms(path string) ([]domain.Program, error) {
	t, err := readTable(path, "college_code", "branch", "annual_fee", "placement_rate", "quality_score")
	if err != nil {
		return nil, err
	}

	programs := make([]domain.Program, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		fee, err := t.intCell(row, line, "annual_fee")
		if err != nil {
			return nil, err
		}
		placement, err := t.floatCell(row, line, "placement_rate")
		if err != nil {
			return nil, err
		}
		quality, err := t.floatCell(row, line, "quality_score")
		if err != nil {
			return nil, err
		}

		programs = append(programs, domain.Program{
			CollegeCode:   t.str(row, "college_code"),
			Branch:        t.str(row, "branch"),
			AnnualFee:     fee,
			PlacementRate: placement,
			QualityScore:  quality,
		})
	}

	return programs, nil
}

func loadCutoffs(path string) ([]domain.CutoffRecord, error) {
	t, err := readTable(path, "college_code", "branch", "oc", "bc", "mbc", "sc", "st")
	if err != nil {
		return nil, err
	}

	cutoffs := make([]domain.CutoffRecord, 0, len(t.rows))
	for i, row := range t.rows {
		line := i + 2

		record := domain.CutoffRecord{
			CollegeCode: t.str(row, "college_code"),
			Branch:      t.str(row, "branch"),
		}

		cells := []struct {
			column string
			dest   *float64
		}{
			{"oc", &record.OC},
			{"bc", &record.BC},
			{"mbc", &record.MBC},
			{"sc", &record.SC},
			{"st", &record.ST},
		}
		for _, cell := range cells {
			v, err := t.floatCell(row, line, cell.column)
			if err != nil {
				return nil, err
			}
			*cell.dest = v
		}

		cutoffs = append(cutoffs, record)
	}

	return cutoffs, nil
}
