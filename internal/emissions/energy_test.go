package emissions

import (
	"testing"

	"carboncalc/internal/models"
)

func TestEnergyTonnes_GasHeatingScenario(t *testing.T) {
	// electricity: 6 MWh * 0.0571 = 0.3426 t
	// heating: 1000 m³ * 10.55 = 10550 kWh; 10.55 * 0.205 = 2.16275 t
	// insulation medium ⇒ ×1.0; total 2.50535 t
	got := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 6000,
		HeatingFuel:        models.HeatingGas,
		HeatingConsumption: 1000,
		Insulation:         models.InsulationMedium,
	})
	assertClose(t, got, 2.50535)
}

func TestEnergyTonnes_ElectricitySubTermIsLinear(t *testing.T) {
	base := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 3000,
		Insulation:         models.InsulationMedium,
	})
	doubled := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 6000,
		Insulation:         models.InsulationMedium,
	})
	assertClose(t, doubled, base*2)
}

func TestEnergyTonnes_RenewableShareNetsOutElectricity(t *testing.T) {
	pct := 50.0
	got := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 4000,
		HasRenewables:      true,
		RenewablePercent:   &pct,
	})
	assertClose(t, got, 4*gridFactorPerMwh*0.5)
}

func TestEnergyTonnes_RenewableFlagWithoutPercentIsNoop(t *testing.T) {
	with := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 4000,
		HasRenewables:      true,
	})
	without := EnergyTonnes(models.EnergyInput{
		ElectricityKwhYear: 4000,
	})
	assertClose(t, with, without)
}

func TestEnergyTonnes_InsulationMultipliers(t *testing.T) {
	base := models.EnergyInput{ElectricityKwhYear: 5000}
	cases := []struct {
		level models.InsulationLevel
		mult  float64
	}{
		{models.InsulationPoor, 1.3},
		{models.InsulationMedium, 1.0},
		{models.InsulationGood, 0.8},
		{models.InsulationExcellent, 0.6},
		{models.InsulationLevel("straw"), 1.0}, // unknown ⇒ medium-equivalent
	}
	reference := EnergyTonnes(base)
	for _, tc := range cases {
		in := base
		in.Insulation = tc.level
		assertClose(t, EnergyTonnes(in), reference*tc.mult)
	}
}

func TestEnergyTonnes_UnknownFuelTreatedAsElectricKwh(t *testing.T) {
	unknown := EnergyTonnes(models.EnergyInput{
		HeatingFuel:        models.HeatingFuel("coal"),
		HeatingConsumption: 2000,
	})
	electric := EnergyTonnes(models.EnergyInput{
		HeatingFuel:        models.HeatingElectric,
		HeatingConsumption: 2000,
	})
	assertClose(t, unknown, electric)
}

func TestEnergyTonnes_HeatPump(t *testing.T) {
	// 10000 kWh * 0.019 t/MWh = 0.19 t
	got := EnergyTonnes(models.EnergyInput{
		HeatingFuel:        models.HeatingHeatPump,
		HeatingConsumption: 10000,
	})
	assertClose(t, got, 0.19)
}

func TestEnergyTonnes_OilHeating(t *testing.T) {
	// 1500 L * 10.0 = 15000 kWh; 15 * 0.324 = 4.86 t
	got := EnergyTonnes(models.EnergyInput{
		HeatingFuel:        models.HeatingOil,
		HeatingConsumption: 1500,
	})
	assertClose(t, got, 4.86)
}
