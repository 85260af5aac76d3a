package emissions

import "carboncalc/internal/models"

// EnergyTonnes computes annual household energy emissions in tonnes CO2e:
// grid electricity (optionally netted for a renewable share), heating
// converted from its native unit to kWh, and an insulation multiplier
// applied to the combined sum.
func EnergyTonnes(in models.EnergyInput) float64 {
	electricity := in.ElectricityKwhYear / 1000 * gridFactorPerMwh
	if in.HasRenewables && in.RenewablePercent != nil {
		electricity *= 1 - *in.RenewablePercent/100
	}

	heatingKwh := in.HeatingConsumption * heatingKwhPerUnit(in.HeatingFuel)
	heating := heatingKwh / 1000 * heatingFactorPerMwh(in.HeatingFuel)

	return (electricity + heating) * insulationMultiplier(in.Insulation)
}
