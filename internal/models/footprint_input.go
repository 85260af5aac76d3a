package models

// Enumerated categories used by the emission tables. Unknown values never
// fail a calculation; each table defines a documented fallback.
type (
	VehicleType     string
	TransitMode     string
	DietType        string
	HeatingFuel     string
	InsulationLevel string
)

const (
	VehicleNone     VehicleType = "none"
	VehicleElectric VehicleType = "electric"
	VehicleHybrid   VehicleType = "hybrid"
	VehiclePetrol   VehicleType = "petrol"
	VehicleDiesel   VehicleType = "diesel"
)

const (
	TransitNone   TransitMode = "none"
	TransitBus    TransitMode = "bus"
	TransitTrain  TransitMode = "train"
	TransitTram   TransitMode = "tram"
	TransitSubway TransitMode = "subway"
)

const (
	DietVegan       DietType = "vegan"
	DietVegetarian  DietType = "vegetarian"
	DietPescatarian DietType = "pescatarian"
	DietFlexitarian DietType = "flexitarian"
	DietOmnivore    DietType = "omnivore"
)

const (
	HeatingElectric HeatingFuel = "electric"
	HeatingGas      HeatingFuel = "gas"
	HeatingOil      HeatingFuel = "oil"
	HeatingHeatPump HeatingFuel = "heatPump"
)

const (
	InsulationPoor      InsulationLevel = "poor"
	InsulationMedium    InsulationLevel = "medium"
	InsulationGood      InsulationLevel = "good"
	InsulationExcellent InsulationLevel = "excellent"
)

// TransportInput describes a year of personal mobility.
// Motorcycle fields are accepted for forward compatibility but not consumed
// by the current formulas.
type TransportInput struct {
	CarType       VehicleType `json:"car_type"`
	CarKmPerYear  float64     `json:"car_km_per_year" binding:"min=0"`
	CarAgeYears   float64     `json:"car_age_years,omitempty" binding:"min=0,max=30"`
	Passengers    float64     `json:"passengers,omitempty" binding:"min=0"`
	TransitMode   TransitMode `json:"transit_mode"`
	TransitKmYear float64     `json:"transit_km_per_year" binding:"min=0"`
	ShortFlights  int         `json:"short_flights" binding:"min=0"`  // < ~3h
	MediumFlights int         `json:"medium_flights" binding:"min=0"` // ~3-6h
	LongFlights   int         `json:"long_flights" binding:"min=0"`   // > ~6h
	HasMotorcycle bool        `json:"has_motorcycle,omitempty"`
	MotorcycleKm  float64     `json:"motorcycle_km_per_year,omitempty" binding:"min=0"`
}

// EnergyInput describes annual household energy use. Heating consumption is
// reported in the fuel's native unit (kWh for electric/heat pump, m³ for gas,
// liters for oil); the calculator converts to kWh internally.
type EnergyInput struct {
	HomeType           string          `json:"home_type,omitempty"`    // informational
	HomeSizeM2         float64         `json:"home_size_m2,omitempty"` // informational
	Occupants          int             `json:"occupants,omitempty"`    // informational
	ElectricityKwhYear float64         `json:"electricity_kwh_per_year" binding:"min=0"`
	HeatingFuel        HeatingFuel     `json:"heating_fuel"`
	HeatingConsumption float64         `json:"heating_consumption" binding:"min=0"`
	HasRenewables      bool            `json:"has_renewables"`
	RenewablePercent   *float64        `json:"renewable_percent,omitempty" binding:"omitempty,min=0,max=100"`
	Insulation         InsulationLevel `json:"insulation"`
}

// LifestyleInput describes consumption habits. Shopping scores are 0-100
// self-assessments of purchase intensity per category.
type LifestyleInput struct {
	Diet             DietType `json:"diet"`
	MeatFrequency    int      `json:"meat_frequency,omitempty"` // informational
	LocalFoodPercent float64  `json:"local_food_percent" binding:"min=0,max=100"`
	Recycles         bool     `json:"recycles"`
	Composts         bool     `json:"composts"`
	ClothesScore     float64  `json:"clothes_score" binding:"min=0,max=100"`
	ElectronicsScore float64  `json:"electronics_score" binding:"min=0,max=100"`
	FurnitureScore   float64  `json:"furniture_score" binding:"min=0,max=100"`
	WaterLitersDay   float64  `json:"water_liters_per_day,omitempty"` // informational
}

// FootprintInput is one fully populated calculation request. It is assembled
// once per request and treated as read-only by every consumer.
type FootprintInput struct {
	Transport TransportInput `json:"transport"`
	Energy    EnergyInput    `json:"energy"`
	Lifestyle LifestyleInput `json:"lifestyle"`
}
