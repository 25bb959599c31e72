package rest

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tneaCompass/domain"
	"tneaCompass/pkg/logger"
)

type RecommenderService interface {
	Recommend(ctx context.Context, profile domain.StudentProfile, weights domain.Weights, topK int) ([]domain.Recommendation, error)
}

type RecommendHandler struct {
	recommenderService RecommenderService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewRecommendHandler(recommenderService RecommenderService) *RecommendHandler {
	return &RecommendHandler{
		recommenderService: recommenderService,
		validator:          validator.New(),
		timeout:            10 * time.Second,
	}
}

type ProfileRequest struct {
	Name              string   `json:"name"`
	Cutoff            float64  `json:"cutoff" validate:"min=0,max=200"`
	Category          string   `json:"category" validate:"required"`
	PreferredBranches []string `json:"preferred_branches"`
	District          string   `json:"district" validate:"required"`
	Budget            float64  `json:"budget" validate:"gt=0"`
	RuralOrFirstGen   bool     `json:"rural_or_first_gen"`
	NeedHostel        bool     `json:"need_hostel"`
}

// WeightsRequest overrides the default weights per field; omitted fields
// keep their defaults.
type WeightsRequest struct {
	Affordability  *float64 `json:"affordability"`
	Proximity      *float64 `json:"proximity"`
	Placements     *float64 `json:"placements"`
	Quality        *float64 `json:"quality"`
	RuralSupport   *float64 `json:"rural_support"`
	Hostel         *float64 `json:"hostel"`
	BranchPriority *float64 `json:"branch_priority"`
}

type RecommendRequest struct {
	Profile ProfileRequest  `json:"profile" validate:"required"`
	Weights *WeightsRequest `json:"weights"`
	TopK    int             `json:"top_k" validate:"omitempty,min=1,max=50"`
}

func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req RecommendRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate recommendation request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	profile := domain.StudentProfile{
		Name:              req.Profile.Name,
		Cutoff:            req.Profile.Cutoff,
		Category:          domain.Category(req.Profile.Category),
		PreferredBranches: req.Profile.PreferredBranches,
		District:          req.Profile.District,
		Budget:            req.Profile.Budget,
		RuralOrFirstGen:   req.Profile.RuralOrFirstGen,
		NeedHostel:        req.Profile.NeedHostel,
	}

	recommendations, err := h.recommenderService.Recommend(ctx, profile, mergeWeights(req.Weights), req.TopK)
	if err != nil {
		logger.Error("Failed to generate recommendations", err)
		if isValidationError(err) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":         "successfully generated recommendations",
		"count":           len(recommendations),
		"recommendations": recommendations,
	})
}

// mergeWeights starts from the defaults and applies only the fields the
// request actually set.
func mergeWeights(req *WeightsRequest) domain.Weights {
	weights := domain.DefaultWeights()
	if req == nil {
		return weights
	}

	if req.Affordability != nil {
		weights.Affordability = *req.Affordability
	}
	if req.Proximity != nil {
		weights.Proximity = *req.Proximity
	}
	if req.Placements != nil {
		weights.Placements = *req.Placements
	}
	if req.Quality != nil {
		weights.Quality = *req.Quality
	}
	if req.RuralSupport != nil {
		weights.RuralSupport = *req.RuralSupport
	}
	if req.Hostel != nil {
		weights.Hostel = *req.Hostel
	}
	if req.BranchPriority != nil {
		weights.BranchPriority = *req.BranchPriority
	}

	return weights
}

// Check if the service rejected the request rather than failed on it
func isValidationError(err error) bool {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown category"):
		return true
	case msg == "cutoff must be between 0 and 200":
		return true
	case msg == "budget must be greater than zero":
		return true
	case msg == "district is required":
		return true
	case strings.HasPrefix(msg, "weight "):
		return true
	}
	return false
}
