package models

import "time"

// Competitor represents one synthetic SERP entry for a target keyword.
// Within a batch, ranking positions run 1..N and authority trends downward
// with rank (plus a small variance band).
type Competitor struct {
	ID                  int64     `json:"id"`
	Domain              string    `json:"domain"`
	Title               string    `json:"title"`
	URL                 string    `json:"url"`
	MetaDescription     *string   `json:"meta_description"`
	WordCount           int       `json:"word_count"`
	DomainAuthority     float64   `json:"domain_authority"`
	PageAuthority       float64   `json:"page_authority"`
	ContentQualityScore float64   `json:"content_quality_score"`
	Backlinks           int       `json:"backlinks"`
	RankingPosition     int       `json:"ranking_position"`
	TargetKeyword       string    `json:"target_keyword"`
	AnalyzedAt          time.Time `json:"analyzed_at"`
}
