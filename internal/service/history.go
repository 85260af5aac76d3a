package service

import (
	"context"
	"errors"
	"time"

	"carboncalc/internal/models"
	"carboncalc/internal/repository"
)

type HistoryService struct {
	calcRepo repository.CalculationRepo
}

func NewHistoryService(calcRepo repository.CalculationRepo) *HistoryService {
	return &HistoryService{calcRepo: calcRepo}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter prepares query bounds and validates the range.
func normalizeAndValidateFilter(f HistoryFilter) (time.Time, time.Time, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errInvalidTimeRange
	}
	return from, to, nil
}

func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.CalculationRecord, error) {
	from, to, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.calcRepo.List(ctx, from, to)
}

func (s *HistoryService) Latest(ctx context.Context) (models.CalculationRecord, error) {
	return s.calcRepo.Latest(ctx)
}
