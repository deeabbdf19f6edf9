package models

import "time"

// Competition tier constants, derived from difficulty.
const (
	CompetitionLow    = "low"
	CompetitionMedium = "medium"
	CompetitionHigh   = "high"
)

// Keyword represents a researched keyword with synthesized metrics.
// The keyword text is the business key; rows are immutable once created.
type Keyword struct {
	ID           int64     `json:"id"`
	Keyword      string    `json:"keyword"`
	SearchVolume int       `json:"search_volume"`
	Difficulty   float64   `json:"difficulty"`
	CPC          float64   `json:"cpc"`
	Competition  string    `json:"competition"`
	TrendData    *string   `json:"trend_data"`
	CreatedAt    time.Time `json:"created_at"`
}
