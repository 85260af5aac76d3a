package service

import (
	"context"
	"fmt"
	"time"

	"carboncalc/internal/emissions"
	"carboncalc/internal/models"
	"carboncalc/internal/repository"

	"github.com/google/uuid"
)

// FootprintService runs the emissions engine and records every completed
// calculation. The engine itself is pure; this layer owns IDs, timestamps,
// and persistence.
type FootprintService struct {
	calcRepo repository.CalculationRepo
}

func NewFootprintService(calcRepo repository.CalculationRepo) *FootprintService {
	return &FootprintService{calcRepo: calcRepo}
}

// Calculate computes the footprint for one fully populated input and appends
// the input/result pair to history.
func (s *FootprintService) Calculate(ctx context.Context, in models.FootprintInput) (models.FootprintResult, error) {
	result := emissions.Calculate(in)

	rec := models.CalculationRecord{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Input:     in,
		Result:    result,
	}
	if err := s.calcRepo.Append(ctx, rec); err != nil {
		return models.FootprintResult{}, fmt.Errorf("store calculation: %w", err)
	}
	return result, nil
}

// Recommend evaluates the advisory rules for the input. Nothing is stored;
// recommendations are derived data.
func (s *FootprintService) Recommend(ctx context.Context, in models.FootprintInput) ([]models.RecommendationCategory, error) {
	return emissions.Recommend(in), nil
}
