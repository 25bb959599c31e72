package recommend

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"

	"tneaCompass/domain"
	"tneaCompass/pkg/logger"
	"tneaCompass/pkg/metrics"
)

// ---- Repository interfaces ----

// OfferingRepository serves the offering table loaded at startup.
type OfferingRepository interface {
	FindAll(ctx context.Context) ([]domain.Offering, error)
}

// RecommendationCache stores ranked results for identical requests.
// A nil cache disables caching entirely.
type RecommendationCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, recs []domain.Recommendation) error
}

// ---- Usecase / Service ----

type RecommenderService struct {
	offeringRepo OfferingRepository
	cache        RecommendationCache
	cfg          Config
}

func NewRecommenderService(offeringRepo OfferingRepository, cache RecommendationCache, cfg Config) *RecommenderService {
	return &RecommenderService{
		offeringRepo: offeringRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

// Recommend runs the full pipeline for one student: validate, filter the
// offering table, score what survives, rank and cut to topK. The table is
// never mutated, so concurrent calls need no coordination.
func (s *RecommenderService) Recommend(
	ctx context.Context,
	profile domain.StudentProfile,
	weights domain.Weights,
	topK int,
) ([]domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	cat, err := domain.ParseCategory(string(profile.Category))
	if err != nil {
		return nil, err
	}
	profile.Category = cat

	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}

	if topK <= 0 {
		topK = s.cfg.DefaultTopK
	}
	if topK > s.cfg.MaxTopK {
		topK = s.cfg.MaxTopK
	}

	weights = normalizeWeights(weights)

	metrics.RecommendRequestsTotal.Inc()

	cacheKey := ""
	if s.cache != nil {
		cacheKey = requestKey(profile, weights, topK)
		cached, ok, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			logger.Warn("Failed to read recommendation cache", err)
		} else if ok {
			metrics.CacheHitsTotal.Inc()
			return cached, nil
		} else {
			metrics.CacheMissesTotal.Inc()
		}
	}

	start := time.Now()

	offerings, err := s.offeringRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load offerings: %w", err)
	}

	candidates := filterEligible(profile, offerings, s.cfg)
	metrics.EligibleOfferings.Observe(float64(len(candidates)))

	tid := TraceIDFromContext(ctx)
	logger.Debug("recommend",
		"trace_id", tid,
		"category", string(profile.Category),
		"district", profile.District,
		"cutoff", profile.Cutoff,
		"offerings", len(offerings),
		"eligible", len(candidates),
		"top_k", topK,
	)

	if len(candidates) == 0 {
		metrics.EmptyResultsTotal.Inc()
		return []domain.Recommendation{}, nil
	}

	recs := make([]domain.Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		total, explanation := scoreCandidate(cand, profile, weights, s.cfg)
		recs = append(recs, buildRecommendation(cand, profile, total, explanation))
	}

	recs = rankRecommendations(recs, topK)

	metrics.RecommendationsServed.WithLabelValues(string(profile.Category)).Add(float64(len(recs)))
	metrics.RecommendLatency.Observe(time.Since(start).Seconds())

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, recs); err != nil {
			logger.Warn("Failed to cache recommendations", err)
		}
	}

	return recs, nil
}

func buildRecommendation(cand candidate, profile domain.StudentProfile, total float64, explanation domain.Explanation) domain.Recommendation {
	off := cand.offering
	return domain.Recommendation{
		CollegeCode:       off.CollegeCode,
		CollegeName:       off.CollegeName,
		District:          off.District,
		Ownership:         off.Ownership,
		Program:           off.Branch,
		AnnualFee:         off.AnnualFee,
		PlacementRate:     off.PlacementRate,
		QualityScore:      off.QualityScore,
		DistanceKm:        districtDistanceKm(profile.District, off.District),
		EligibilityMargin: profile.Cutoff - cand.requiredCutoff,
		TotalScore:        total,
		Explanation:       explanation,
	}
}

// ---- Validation ----

func validateProfile(p domain.StudentProfile) error {
	if p.Cutoff < 0 || p.Cutoff > 200 {
		return errors.New("cutoff must be between 0 and 200")
	}
	if p.Budget <= 0 {
		return errors.New("budget must be greater than zero")
	}
	if strings.TrimSpace(p.District) == "" {
		return errors.New("district is required")
	}
	return nil
}

func validateWeights(w domain.Weights) error {
	named := []struct {
		name  string
		value float64
	}{
		{CriterionAffordability, w.Affordability},
		{CriterionProximity, w.Proximity},
		{CriterionPlacements, w.Placements},
		{CriterionQuality, w.Quality},
		{CriterionRuralSupport, w.RuralSupport},
		{CriterionHostel, w.Hostel},
		{CriterionBranchPriority, w.BranchPriority},
	}
	for _, nw := range named {
		if nw.value < 0 {
			return fmt.Errorf("weight %s cannot be negative", nw.name)
		}
	}
	return nil
}

// ---- Cache keys ----

// requestKey hashes everything that affects the response so identical
// requests share one cache entry.
func requestKey(p domain.StudentProfile, w domain.Weights, topK int) string {
	var b strings.Builder

	b.WriteString(string(p.Category))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(p.Cutoff, 'f', -1, 64))
	b.WriteByte('|')
	b.WriteString(strings.ToLower(strings.TrimSpace(p.District)))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(p.Budget, 'f', -1, 64))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(p.RuralOrFirstGen))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(p.NeedHostel))
	b.WriteByte('|')
	for _, branch := range p.PreferredBranches {
		b.WriteString(domain.NormalizeBranch(branch))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, v := range []float64{w.Affordability, w.Proximity, w.Placements, w.Quality, w.RuralSupport, w.Hostel, w.BranchPriority} {
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(topK))

	h := fnv.New64a()
	_, _ = h.Write([]byte(b.String()))
	return fmt.Sprintf("%x", h.Sum64())
}
