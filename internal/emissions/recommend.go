package emissions

import "carboncalc/internal/models"

// Sector names as they appear in recommendation output.
const (
	SectorTransport = "Transport"
	SectorEnergy    = "Energy"
	SectorLifestyle = "Lifestyle"
)

// Advisory thresholds. Each rule is independent: every rule whose condition
// holds fires, in declaration order.
const (
	highCarKmThreshold  = 15000.0
	highElectricityKwh  = 5000.0
	lowLocalFoodPercent = 30.0
	highShoppingScore   = 70.0
)

type rule struct {
	sector  string
	applies func(models.FootprintInput) bool
	action  models.Recommendation
}

// rules is evaluated top to bottom; output order is declaration order.
var rules = []rule{
	{
		sector: SectorTransport,
		applies: func(in models.FootprintInput) bool {
			return in.Transport.CarKmPerYear > highCarKmThreshold
		},
		action: models.Recommendation{
			Title:       "Reduce car travel",
			Impact:      models.ImpactHigh,
			Description: "You drive well above average. Consider carpooling, public transport, or cycling for regular trips.",
		},
	},
	{
		sector: SectorTransport,
		applies: func(in models.FootprintInput) bool {
			return in.Transport.LongFlights > 0
		},
		action: models.Recommendation{
			Title:       "Rethink long-haul flights",
			Impact:      models.ImpactModerate,
			Description: "A single long-haul flight can outweigh months of other travel. Combine trips or choose closer destinations.",
		},
	},
	{
		sector: SectorTransport,
		applies: func(in models.FootprintInput) bool {
			t := in.Transport.CarType
			return t == models.VehiclePetrol || t == models.VehicleDiesel
		},
		action: models.Recommendation{
			Title:       "Switch to a low-emission vehicle",
			Impact:      models.ImpactHigh,
			Description: "A hybrid or electric car emits a fraction of the CO2 per kilometer of a combustion engine.",
		},
	},
	{
		sector: SectorEnergy,
		applies: func(in models.FootprintInput) bool {
			return in.Energy.ElectricityKwhYear > highElectricityKwh
		},
		action: models.Recommendation{
			Title:       "Cut electricity consumption",
			Impact:      models.ImpactHigh,
			Description: "Your usage is above the typical household. Efficient appliances and LED lighting lower it quickly.",
		},
	},
	{
		sector: SectorEnergy,
		applies: func(in models.FootprintInput) bool {
			return !in.Energy.HasRenewables
		},
		action: models.Recommendation{
			Title:       "Switch to renewable electricity",
			Impact:      models.ImpactVeryHigh,
			Description: "A green tariff or rooftop solar removes most of your electricity emissions at little effort.",
		},
	},
	{
		sector: SectorEnergy,
		applies: func(in models.FootprintInput) bool {
			l := in.Energy.Insulation
			return l == models.InsulationPoor || l == models.InsulationMedium
		},
		action: models.Recommendation{
			Title:       "Improve home insulation",
			Impact:      models.ImpactHigh,
			Description: "Better insulation cuts heating demand permanently. Start with the roof and windows.",
		},
	},
	{
		sector: SectorEnergy,
		applies: func(in models.FootprintInput) bool {
			return in.Energy.HeatingFuel == models.HeatingOil
		},
		action: models.Recommendation{
			Title:       "Replace oil heating",
			Impact:      models.ImpactVeryHigh,
			Description: "Oil is the most carbon-intensive heating fuel. A heat pump emits over 90% less per kWh of heat.",
		},
	},
	{
		sector: SectorLifestyle,
		applies: func(in models.FootprintInput) bool {
			return effectiveDiet(in.Lifestyle.Diet) == models.DietOmnivore
		},
		action: models.Recommendation{
			Title:       "Eat less meat",
			Impact:      models.ImpactHigh,
			Description: "Shifting a few meals a week to plant-based cuts diet emissions substantially.",
		},
	},
	{
		sector: SectorLifestyle,
		applies: func(in models.FootprintInput) bool {
			return in.Lifestyle.LocalFoodPercent < lowLocalFoodPercent
		},
		action: models.Recommendation{
			Title:       "Buy local and seasonal food",
			Impact:      models.ImpactModerate,
			Description: "Local, seasonal produce avoids transport and greenhouse cultivation emissions.",
		},
	},
	{
		sector: SectorLifestyle,
		applies: func(in models.FootprintInput) bool {
			return !in.Lifestyle.Recycles || !in.Lifestyle.Composts
		},
		action: models.Recommendation{
			Title:       "Recycle and compost",
			Impact:      models.ImpactModerate,
			Description: "Separating recyclables and composting organic waste reduces landfill methane and material demand.",
		},
	},
	{
		sector: SectorLifestyle,
		applies: func(in models.FootprintInput) bool {
			return in.Lifestyle.ClothesScore > highShoppingScore ||
				in.Lifestyle.ElectronicsScore > highShoppingScore
		},
		action: models.Recommendation{
			Title:       "Buy less, buy durable",
			Impact:      models.ImpactModerate,
			Description: "Frequent clothes and electronics purchases carry large embedded emissions. Repair and second-hand help.",
		},
	},
}

// effectiveDiet applies the same fallback the calculator uses: anything
// outside the known set counts as omnivore.
func effectiveDiet(d models.DietType) models.DietType {
	switch d {
	case models.DietVegan, models.DietVegetarian, models.DietPescatarian, models.DietFlexitarian:
		return d
	default:
		return models.DietOmnivore
	}
}

// Recommend evaluates every rule against the input and groups the fired
// actions by sector. Sectors keep the fixed Transport, Energy, Lifestyle
// order; sectors with no fired rule are omitted.
func Recommend(in models.FootprintInput) []models.RecommendationCategory {
	bySector := map[string][]models.Recommendation{}
	for _, r := range rules {
		if r.applies(in) {
			bySector[r.sector] = append(bySector[r.sector], r.action)
		}
	}

	var out []models.RecommendationCategory
	for _, sector := range []string{SectorTransport, SectorEnergy, SectorLifestyle} {
		if actions := bySector[sector]; len(actions) > 0 {
			out = append(out, models.RecommendationCategory{Sector: sector, Actions: actions})
		}
	}
	return out
}
