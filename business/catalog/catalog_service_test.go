package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tneaCompass/domain"
)

type stubOfferingRepo struct {
	offerings []domain.Offering
	err       error
}

func (s *stubOfferingRepo) FindAll(ctx context.Context) ([]domain.Offering, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.offerings, nil
}

func TestOptions(t *testing.T) {
	repo := &stubOfferingRepo{offerings: []domain.Offering{
		{CollegeCode: "C001", District: "Madurai", Branch: "CSE"},
		{CollegeCode: "C002", District: "Chennai", Branch: "ECE"},
		{CollegeCode: "C003", District: "chennai", Branch: "cse"},
		{CollegeCode: "C004", District: " Salem ", Branch: "CIVIL"},
	}}

	svc := NewCatalogService(repo)

	options, err := svc.Options(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"OC", "BC", "MBC", "SC", "ST"}, options.Categories)
	// duplicates differing only in case or whitespace collapse to one entry
	assert.Equal(t, []string{"CIVIL", "CSE", "ECE"}, options.Branches)
	assert.Equal(t, []string{"Chennai", "Madurai", "Salem"}, options.Districts)
	assert.Equal(t, domain.DefaultWeights(), options.DefaultWeights)
}

func TestOptions_RepositoryError(t *testing.T) {
	svc := NewCatalogService(&stubOfferingRepo{err: errors.New("boom")})

	_, err := svc.Options(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load offerings")
}

func TestOfferingCount(t *testing.T) {
	svc := NewCatalogService(&stubOfferingRepo{offerings: make([]domain.Offering, 7)})

	count, err := svc.OfferingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestOptions_CancelledContext(t *testing.T) {
	svc := NewCatalogService(&stubOfferingRepo{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Options(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context error")
}
