package emissions

import (
	"reflect"
	"testing"

	"carboncalc/internal/models"
)

// zeroInput has every numeric field at zero and every category at its
// "none" / neutral value, except the zero-value categories that fall back to
// non-zero baselines (diet ⇒ omnivore), which the total must still reflect.
func zeroInput() models.FootprintInput {
	return models.FootprintInput{
		Transport: models.TransportInput{
			CarType:     models.VehicleNone,
			TransitMode: models.TransitNone,
		},
		Energy: models.EnergyInput{
			HeatingFuel: models.HeatingElectric,
			Insulation:  models.InsulationMedium,
		},
		Lifestyle: models.LifestyleInput{
			Diet: models.DietVegan, // cheapest diet; no true zero exists
		},
	}
}

func TestCalculate_NeutralInputHasOnlyDietTerm(t *testing.T) {
	res := Calculate(zeroInput())
	if res.Breakdown.Transport != 0 {
		t.Fatalf("expected zero transport, got %v", res.Breakdown.Transport)
	}
	if res.Breakdown.Energy != 0 {
		t.Fatalf("expected zero energy, got %v", res.Breakdown.Energy)
	}
	assertClose(t, res.Breakdown.Lifestyle, 1.0) // vegan baseline
	assertClose(t, res.Total, 1.0)
}

func TestCalculate_TotalIsSumOfSectors(t *testing.T) {
	res := Calculate(models.FootprintInput{
		Transport: models.TransportInput{
			CarType: models.VehiclePetrol, CarKmPerYear: 10000, Passengers: 1,
		},
		Energy: models.EnergyInput{
			ElectricityKwhYear: 3000,
			HeatingFuel:        models.HeatingGas,
			HeatingConsumption: 800,
		},
		Lifestyle: models.LifestyleInput{Diet: models.DietOmnivore},
	})
	sum := res.Breakdown.Transport + res.Breakdown.Energy + res.Breakdown.Lifestyle
	assertClose(t, res.Total, sum)
}

func TestCalculate_ComparisonPercentages(t *testing.T) {
	res := Calculate(zeroInput())
	if res.Comparison.NationalAverage != 9.0 || res.Comparison.WorldAverage != 4.7 {
		t.Fatalf("unexpected reference averages: %+v", res.Comparison)
	}
	assertClose(t, res.Comparison.PercentFromNational, (res.Total-9.0)/9.0*100)
	assertClose(t, res.Comparison.PercentFromWorld, (res.Total-4.7)/4.7*100)
	if res.Comparison.PercentFromNational >= 0 {
		t.Fatalf("a vegan-only footprint should be below the national average")
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	in := models.FootprintInput{
		Transport: models.TransportInput{
			CarType: models.VehicleDiesel, CarKmPerYear: 18000, CarAgeYears: 8, Passengers: 2,
			TransitMode: models.TransitBus, TransitKmYear: 2000,
			ShortFlights: 1, LongFlights: 2,
		},
		Energy: models.EnergyInput{
			ElectricityKwhYear: 5500,
			HeatingFuel:        models.HeatingOil,
			HeatingConsumption: 1200,
			Insulation:         models.InsulationPoor,
		},
		Lifestyle: models.LifestyleInput{
			Diet: models.DietOmnivore, LocalFoodPercent: 10,
			ClothesScore: 80, ElectronicsScore: 60, FurnitureScore: 30,
			Recycles: true,
		},
	}
	first := Calculate(in)
	second := Calculate(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("calculation is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	pct := 40.0
	in := models.FootprintInput{
		Energy: models.EnergyInput{
			ElectricityKwhYear: 2000,
			HasRenewables:      true,
			RenewablePercent:   &pct,
		},
	}
	before := in
	beforePct := pct
	_ = Calculate(in)
	if !reflect.DeepEqual(in, before) || pct != beforePct {
		t.Fatalf("input mutated by calculation")
	}
}
