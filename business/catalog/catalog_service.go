package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tneaCompass/domain"
)

type OfferingRepository interface {
	FindAll(ctx context.Context) ([]domain.Offering, error)
}

type CatalogService struct {
	offeringRepo OfferingRepository
}

func NewCatalogService(offeringRepo OfferingRepository) *CatalogService {
	return &CatalogService{
		offeringRepo: offeringRepo,
	}
}

// Options derives the request-building choices from the loaded table: the
// fixed category list, the distinct branches and districts actually present
// in the dataset, and the default weights.
func (s *CatalogService) Options(ctx context.Context) (domain.CatalogOptions, error) {
	if err := ctx.Err(); err != nil {
		return domain.CatalogOptions{}, fmt.Errorf("context error: %w", err)
	}

	offerings, err := s.offeringRepo.FindAll(ctx)
	if err != nil {
		return domain.CatalogOptions{}, fmt.Errorf("load offerings: %w", err)
	}

	categories := make([]string, 0, 5)
	for _, c := range domain.AllCategories() {
		categories = append(categories, string(c))
	}

	return domain.CatalogOptions{
		Categories:     categories,
		Branches:       distinct(offerings, func(o domain.Offering) string { return o.Branch }),
		Districts:      distinct(offerings, func(o domain.Offering) string { return o.District }),
		DefaultWeights: domain.DefaultWeights(),
	}, nil
}

// OfferingCount reports how many offerings the dataset loaded with.
func (s *CatalogService) OfferingCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	offerings, err := s.offeringRepo.FindAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load offerings: %w", err)
	}

	return len(offerings), nil
}

// distinct collects the sorted unique values of one offering field. Values
// differing only in case or surrounding whitespace count as one; the first
// spelling seen in the table wins.
func distinct(offerings []domain.Offering, field func(domain.Offering) string) []string {
	seen := make(map[string]struct{}, len(offerings))
	values := make([]string, 0, len(offerings))
	for _, off := range offerings {
		v := strings.TrimSpace(field(off))
		if v == "" {
			continue
		}
		key := strings.ToUpper(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		values = append(values, v)
	}

	sort.Strings(values)
	return values
}
