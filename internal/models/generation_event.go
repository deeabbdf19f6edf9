package models

import "time"

// Generation event kinds recorded for metrics export.
const (
	EventKeywordResearch    = "keyword_research"
	EventCompetitorAnalysis = "competitor_analysis"
	EventOutlineGenerated   = "outline_generated"
	EventSuggestionsBatch   = "suggestions_generated"
)

// Generation event outcome constants.
const (
	OutcomeHit       = "hit"
	OutcomeCreated   = "created"
	OutcomeFiltered  = "filtered"
	OutcomeGenerated = "generated"
)

// GenerationEvent represents a per-kind generation count by outcome.
type GenerationEvent struct {
	Kind       string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
