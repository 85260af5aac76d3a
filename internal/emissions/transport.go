package emissions

import "carboncalc/internal/models"

const (
	carAgePenaltyPerYear = 0.02 // +2% per year of vehicle age
	carAgeCapYears       = 15.0 // penalty stops growing past this age
)

// TransportTonnes computes annual transport emissions in tonnes CO2e:
// car use (age-adjusted, split across passengers), public transport, and
// per-trip flight averages.
func TransportTonnes(in models.TransportInput) float64 {
	kg := 0.0

	if in.CarType != models.VehicleNone && in.CarType != "" {
		age := in.CarAgeYears
		if age > carAgeCapYears {
			age = carAgeCapYears
		}
		ageMult := 1 + age*carAgePenaltyPerYear

		passengers := in.Passengers
		if passengers < 1 {
			passengers = 1
		}

		kg += in.CarKmPerYear * carFactorKgPerKm(in.CarType) * ageMult / passengers
	}

	if in.TransitMode != models.TransitNone && in.TransitMode != "" {
		kg += in.TransitKmYear * transitFactorKgPerKm(in.TransitMode)
	}

	kg += float64(in.ShortFlights)*shortFlightKg +
		float64(in.MediumFlights)*mediumFlightKg +
		float64(in.LongFlights)*longFlightKg

	return kg / 1000
}
