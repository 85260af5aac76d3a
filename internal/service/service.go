package service

import (
	"context"
	"time"

	"carboncalc/internal/models"
	"carboncalc/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Footprint exposes the calculation pipeline: full footprint with stored
// history, and the rule-based recommendation set.
type Footprint interface {
	Calculate(ctx context.Context, in models.FootprintInput) (models.FootprintResult, error)
	Recommend(ctx context.Context, in models.FootprintInput) ([]models.RecommendationCategory, error)
}

// History exposes read access to stored calculations.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]models.CalculationRecord, error)
	Latest(ctx context.Context) (models.CalculationRecord, error)
}

// HistoryFilter bounds a history query by creation time.
type HistoryFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
}

// Root Service aggregates all sub-services.
type Service struct {
	Footprint
	History
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Footprint:     NewFootprintService(repos.Calculations),
		History:       NewHistoryService(repos.Calculations),
		Authorization: NewAuthService(repos.Auth),
	}
}
