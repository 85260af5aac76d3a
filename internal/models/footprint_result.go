package models

// SectorBreakdown holds the per-sector emission totals, tonnes CO2e/year.
type SectorBreakdown struct {
	Transport float64 `json:"transport"`
	Energy    float64 `json:"energy"`
	Lifestyle float64 `json:"lifestyle"`
}

// Comparison relates a total to two fixed per-capita reference averages.
// Percentages are positive when the total exceeds the average.
type Comparison struct {
	PercentFromNational float64 `json:"percentage_from_national"`
	PercentFromWorld    float64 `json:"percentage_from_world"`
	NationalAverage     float64 `json:"national_average"`
	WorldAverage        float64 `json:"world_average"`
}

// FootprintResult is the complete response for one calculation.
type FootprintResult struct {
	Total      float64         `json:"total"` // tonnes CO2e/year
	Breakdown  SectorBreakdown `json:"breakdown"`
	Comparison Comparison      `json:"comparison"`
}

// Impact grades how much a recommended action would reduce emissions.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactModerate Impact = "moderate"
	ImpactHigh     Impact = "high"
	ImpactVeryHigh Impact = "very_high"
)

// Recommendation is one advisory action. Fields are set once and never
// modified after the engine emits them.
type Recommendation struct {
	Title       string `json:"title"`
	Impact      Impact `json:"impact"`
	Description string `json:"description"`
}

// RecommendationCategory groups a sector's triggered actions. A sector with
// no triggered actions is omitted from the result entirely.
type RecommendationCategory struct {
	Sector  string           `json:"sector"` // Transport | Energy | Lifestyle
	Actions []Recommendation `json:"actions"`
}
