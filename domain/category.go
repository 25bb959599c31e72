package domain

import (
	"fmt"
	"strings"
)

// Category is a TNEA reservation classification. The set is closed: every
// offering carries a cutoff for each of these and nothing else.
type Category string

const (
	CategoryOC  Category = "OC"
	CategoryBC  Category = "BC"
	CategoryMBC Category = "MBC"
	CategorySC  Category = "SC"
	CategoryST  Category = "ST"
)

// AllCategories returns the categories in counseling order.
func AllCategories() []Category {
	return []Category{CategoryOC, CategoryBC, CategoryMBC, CategorySC, CategoryST}
}

// ParseCategory normalizes user input ("bc", " MBC ") into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToUpper(strings.TrimSpace(s))) {
	case CategoryOC:
		return CategoryOC, nil
	case CategoryBC:
		return CategoryBC, nil
	case CategoryMBC:
		return CategoryMBC, nil
	case CategorySC:
		return CategorySC, nil
	case CategoryST:
		return CategoryST, nil
	}
	return "", fmt.Errorf("unknown category: %s", s)
}

// CutoffSet holds the required cutoff mark per category for one offering.
// Named fields rather than a map so a missing category is caught when the
// dataset is assembled, not in the middle of a request.
type CutoffSet struct {
	OC  float64 `json:"OC"`
	BC  float64 `json:"BC"`
	MBC float64 `json:"MBC"`
	SC  float64 `json:"SC"`
	ST  float64 `json:"ST"`
}

// ForCategory returns the required cutoff for the given category.
func (c CutoffSet) ForCategory(cat Category) (float64, error) {
	switch cat {
	case CategoryOC:
		return c.OC, nil
	case CategoryBC:
		return c.BC, nil
	case CategoryMBC:
		return c.MBC, nil
	case CategorySC:
		return c.SC, nil
	case CategoryST:
		return c.ST, nil
	}
	return 0, fmt.Errorf("unknown category: %s", cat)
}
