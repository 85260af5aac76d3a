// Package emissions implements the footprint calculation pipeline: fixed
// factor tables, the three sector calculators, the aggregator, and the
// rule-based recommendation engine. Everything in this package is a pure
// function of its input; the tables are process-wide constants.
package emissions

import "carboncalc/internal/models"

// Reference averages for comparison display, tonnes CO2e per person per year.
const (
	NationalAverageTonnes = 9.0
	WorldAverageTonnes    = 4.7
)

// Per-trip flight averages, kg CO2e.
const (
	shortFlightKg  = 180.0
	mediumFlightKg = 400.0
	longFlightKg   = 1800.0
)

// Car use, kg CO2e per km. Zero for an unknown or absent vehicle: an
// unrecognized category must degrade to "no car", never to a lookup failure.
func carFactorKgPerKm(v models.VehicleType) float64 {
	switch v {
	case models.VehicleElectric:
		return 0.024
	case models.VehicleHybrid:
		return 0.089
	case models.VehiclePetrol:
		return 0.192
	case models.VehicleDiesel:
		return 0.171
	default:
		return 0
	}
}

// Public transport, kg CO2e per passenger-km.
func transitFactorKgPerKm(m models.TransitMode) float64 {
	switch m {
	case models.TransitBus:
		return 0.089
	case models.TransitTrain:
		return 0.041
	case models.TransitTram:
		return 0.035
	case models.TransitSubway:
		return 0.033
	default:
		return 0
	}
}

// kWh per native reported unit of heating consumption: m³ for gas, liters
// for oil. An unknown fuel is treated as already reported in kWh.
func heatingKwhPerUnit(f models.HeatingFuel) float64 {
	switch f {
	case models.HeatingGas:
		return 10.55
	case models.HeatingOil:
		return 10.0
	default:
		return 1.0
	}
}

// Heating emission factor, tonnes CO2e per 1000 kWh. Unknown fuels fall back
// to the grid (electric) factor.
func heatingFactorPerMwh(f models.HeatingFuel) float64 {
	switch f {
	case models.HeatingGas:
		return 0.205
	case models.HeatingOil:
		return 0.324
	case models.HeatingHeatPump:
		return 0.019
	default:
		return gridFactorPerMwh
	}
}

// Flat national grid intensity, tonnes CO2e per 1000 kWh of electricity.
const gridFactorPerMwh = 0.0571

// Corrective multiplier on combined home energy emissions. Unknown levels
// count as medium (1.0).
func insulationMultiplier(l models.InsulationLevel) float64 {
	switch l {
	case models.InsulationPoor:
		return 1.3
	case models.InsulationGood:
		return 0.8
	case models.InsulationExcellent:
		return 0.6
	default:
		return 1.0
	}
}

// Annual diet baseline, kg CO2e. Unknown diets count as omnivore.
func dietBaselineKg(d models.DietType) float64 {
	switch d {
	case models.DietVegan:
		return 1000
	case models.DietVegetarian:
		return 1500
	case models.DietPescatarian:
		return 1700
	case models.DietFlexitarian:
		return 2000
	default:
		return 2500
	}
}
