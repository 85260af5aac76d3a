package models

import "time"

// CalculationRecord is one stored calculation: the input snapshot and the
// result it produced, keyed by a generated ID.
type CalculationRecord struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Input     FootprintInput  `json:"input"`
	Result    FootprintResult `json:"result"`
}
