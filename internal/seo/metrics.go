package seo

import (
	"encoding/json"
	"math"
	"strings"

	"seoplanner/internal/models"
)

// commercialIntentWords raise the base CPC when present in a keyword.
var commercialIntentWords = []string{"best", "buy", "price", "cost", "review", "comparison"}

// trendMonths are the fixed labels attached to synthesized trend data.
var trendMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// KeywordMetrics holds the synthesized metric set for one keyword candidate.
type KeywordMetrics struct {
	SearchVolume int
	Difficulty   float64
	CPC          float64
	Competition  string
	TrendData    string
}

// SynthesizeMetrics produces plausible SEO metrics for a keyword relative to
// the seed it was derived from. Pure apart from draws on rng.
func SynthesizeMetrics(rng Rand, keyword, seed string) KeywordMetrics {
	volumeBase := 10000
	if keyword != seed {
		volumeBase = 1000 + rng.IntN(8000)
	}
	volume := int(float64(volumeBase) * (0.5 + rng.Float64()*0.5))

	difficultyBase := 60.0
	if len(keyword) > len(seed) {
		difficultyBase = 30.0
	}
	difficulty := round2(clamp(difficultyBase+(rng.Float64()*40-20), 5, 100))

	cpcBase := 1.20
	if containsAny(keyword, commercialIntentWords) {
		cpcBase = 3.50
	}
	cpc := round2(cpcBase + rng.Float64()*2)

	return KeywordMetrics{
		SearchVolume: volume,
		Difficulty:   difficulty,
		CPC:          cpc,
		Competition:  CompetitionForDifficulty(difficulty),
		TrendData:    synthesizeTrend(rng),
	}
}

// CompetitionForDifficulty maps a difficulty score onto a competition tier.
func CompetitionForDifficulty(difficulty float64) string {
	switch {
	case difficulty > 70:
		return models.CompetitionHigh
	case difficulty > 40:
		return models.CompetitionMedium
	default:
		return models.CompetitionLow
	}
}

func synthesizeTrend(rng Rand) string {
	values := make([]int, len(trendMonths))
	for i := range values {
		values[i] = 50 + rng.IntN(100)
	}
	data, _ := json.Marshal(map[string]any{
		"months": trendMonths,
		"values": values,
	})
	return string(data)
}

func containsAny(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// round2 rounds to two decimal places so scores round-trip exactly through
// the NUMERIC(6,2) columns.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
