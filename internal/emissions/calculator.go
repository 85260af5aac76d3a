package emissions

import "carboncalc/internal/models"

// Calculate runs the three sector calculators on one fully populated input
// and aggregates them into a total with comparison percentages. It is
// deterministic and never fails: unrecognized categories resolve through the
// documented table fallbacks.
func Calculate(in models.FootprintInput) models.FootprintResult {
	breakdown := models.SectorBreakdown{
		Transport: TransportTonnes(in.Transport),
		Energy:    EnergyTonnes(in.Energy),
		Lifestyle: LifestyleTonnes(in.Lifestyle),
	}
	total := breakdown.Transport + breakdown.Energy + breakdown.Lifestyle

	return models.FootprintResult{
		Total:     total,
		Breakdown: breakdown,
		Comparison: models.Comparison{
			PercentFromNational: percentFrom(total, NationalAverageTonnes),
			PercentFromWorld:    percentFrom(total, WorldAverageTonnes),
			NationalAverage:     NationalAverageTonnes,
			WorldAverage:        WorldAverageTonnes,
		},
	}
}

// percentFrom is the signed deviation of total from a reference average.
func percentFrom(total, average float64) float64 {
	return (total - average) / average * 100
}
