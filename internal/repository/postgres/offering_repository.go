package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"tneaCompass/domain"
)

// OfferingRepository loads the offering table from the colleges, programs
// and cutoffs tables. Load runs once at startup; after that FindAll serves
// the in-memory table and never touches the database again.
type OfferingRepository struct {
	DB *gorm.DB

	offerings []domain.Offering
}

func NewOfferingRepository(db *gorm.DB) *OfferingRepository {
	return &OfferingRepository{
		DB: db,
	}
}

// Load reads the three tables and joins them into the offering sequence.
func (r *OfferingRepository) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var colleges []domain.College
	if err := r.DB.WithContext(ctx).Order("college_code").Find(&colleges).Error; err != nil {
		return fmt.Errorf("failed to load colleges: %w", err)
	}

	var programs []domain.Program
	if err := r.DB.WithContext(ctx).Order("college_code, branch").Find(&programs).Error; err != nil {
		return fmt.Errorf("failed to load programs: %w", err)
	}

	var cutoffs []domain.CutoffRecord
	if err := r.DB.WithContext(ctx).Find(&cutoffs).Error; err != nil {
		return fmt.Errorf("failed to load cutoffs: %w", err)
	}

	offerings, err := domain.BuildOfferings(colleges, programs, cutoffs)
	if err != nil {
		return fmt.Errorf("failed to assemble offerings: %w", err)
	}

	r.offerings = offerings
	return nil
}

func (r *OfferingRepository) FindAll(ctx context.Context) ([]domain.Offering, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if r.offerings == nil {
		return nil, errors.New("offerings not loaded")
	}

	return r.offerings, nil
}
