package models

import "time"

// Content type constants for outlines.
const (
	ContentTypeBlogPost = "blog_post"
	ContentTypeArticle  = "article"
	ContentTypeGuide    = "guide"
	ContentTypeTutorial = "tutorial"
	ContentTypeReview   = "review"
)

// ContentTypes lists all valid content types, in display order.
var ContentTypes = []string{
	ContentTypeBlogPost,
	ContentTypeArticle,
	ContentTypeGuide,
	ContentTypeTutorial,
	ContentTypeReview,
}

// Difficulty level constants for outlines.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ContentOutline represents a planned piece of content. The JSON-valued
// columns (secondary_keywords, outline_structure, seo_suggestions) are stored
// as opaque serialized text; consumers tolerate malformed content.
type ContentOutline struct {
	ID                   int64     `json:"id"`
	Title                string    `json:"title"`
	TargetKeyword        string    `json:"target_keyword"`
	SecondaryKeywords    *string   `json:"secondary_keywords"`
	MetaDescription      *string   `json:"meta_description"`
	WordCountTarget      int       `json:"word_count_target"`
	OutlineStructure     string    `json:"outline_structure"`
	SEOSuggestions       *string   `json:"seo_suggestions"`
	ContentType          string    `json:"content_type"`
	DifficultyLevel      string    `json:"difficulty_level"`
	EstimatedReadingTime int       `json:"estimated_reading_time"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// OutlineUpdate carries a partial update for an outline. Nil fields are left
// unchanged; updated_at is refreshed regardless.
type OutlineUpdate struct {
	Title                *string `json:"title"`
	TargetKeyword        *string `json:"target_keyword"`
	SecondaryKeywords    *string `json:"secondary_keywords"`
	MetaDescription      *string `json:"meta_description"`
	WordCountTarget      *int    `json:"word_count_target"`
	OutlineStructure     *string `json:"outline_structure"`
	SEOSuggestions       *string `json:"seo_suggestions"`
	ContentType          *string `json:"content_type"`
	DifficultyLevel      *string `json:"difficulty_level"`
	EstimatedReadingTime *int    `json:"estimated_reading_time"`
}
