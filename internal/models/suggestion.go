package models

import "time"

// Suggestion type constants, one per optimization rule group.
const (
	SuggestionTitle           = "title"
	SuggestionMetaDescription = "meta_description"
	SuggestionHeadings        = "headings"
	SuggestionInternalLinks   = "internal_links"
	SuggestionImages          = "images"
	SuggestionKeywordDensity  = "keyword_density"
	SuggestionReadability     = "readability"
)

// Priority constants for suggestions.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// OptimizationSuggestion represents one actionable SEO recommendation for a
// content outline. Only is_implemented is ever mutated after creation.
type OptimizationSuggestion struct {
	ID               int64     `json:"id"`
	ContentOutlineID int64     `json:"content_outline_id"`
	SuggestionType   string    `json:"suggestion_type"`
	Priority         string    `json:"priority"`
	Suggestion       string    `json:"suggestion"`
	CurrentValue     *string   `json:"current_value"`
	RecommendedValue *string   `json:"recommended_value"`
	ImpactScore      float64   `json:"impact_score"`
	IsImplemented    bool      `json:"is_implemented"`
	CreatedAt        time.Time `json:"created_at"`
}
