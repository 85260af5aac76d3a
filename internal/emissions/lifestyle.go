package emissions

import "carboncalc/internal/models"

const (
	localFoodReductionPerPct = 0.002 // 100% local food ⇒ 20% off the diet baseline

	clothesKgPerPoint     = 0.1
	electronicsKgPerPoint = 0.2
	furnitureKgPerPoint   = 0.15
	shoppingScale         = 0.01

	recyclingMultiplier  = 0.9
	compostingMultiplier = 0.95
)

// LifestyleTonnes computes annual lifestyle emissions in tonnes CO2e: the
// diet baseline adjusted for local food, shopping intensity, and recycling/
// composting reductions applied to the combined total.
//
// The local-food adjustment is intentionally not clamped; callers are
// expected to supply percentages in [0,100] (validated at the HTTP boundary,
// not here).
func LifestyleTonnes(in models.LifestyleInput) float64 {
	diet := dietBaselineKg(in.Diet) * (1 - in.LocalFoodPercent*localFoodReductionPerPct) / 1000

	shopping := (in.ClothesScore*clothesKgPerPoint +
		in.ElectronicsScore*electronicsKgPerPoint +
		in.FurnitureScore*furnitureKgPerPoint) * shoppingScale

	total := diet + shopping
	if in.Recycles {
		total *= recyclingMultiplier
	}
	if in.Composts {
		total *= compostingMultiplier
	}
	return total
}
