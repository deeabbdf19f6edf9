package validation

import (
	"regexp"
	"strings"

	"seoplanner/internal/models"
)

// SeedKeywordPattern defines the valid seed keyword format: words made of
// letters, numbers, hyphens, and apostrophes, separated by single spaces.
var SeedKeywordPattern = regexp.MustCompile(`^[a-zA-Z0-9'-]+( [a-zA-Z0-9'-]+)*$`)

// NormalizeKeyword trims, collapses whitespace, and lowercases a keyword so
// lookups and the research idempotence check are case-insensitive.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.Join(strings.Fields(keyword), " "))
}

// ValidateSeedKeyword checks that a seed keyword is non-empty, short enough,
// and matches the allowed pattern. Call after NormalizeKeyword.
func ValidateSeedKeyword(keyword string) bool {
	if keyword == "" || len(keyword) > 100 {
		return false
	}
	return SeedKeywordPattern.MatchString(keyword)
}

// ValidContentType reports whether v is one of the allowed content types.
func ValidContentType(v string) bool {
	for _, t := range models.ContentTypes {
		if v == t {
			return true
		}
	}
	return false
}

// ValidDifficultyLevel reports whether v is a valid outline difficulty level.
func ValidDifficultyLevel(v string) bool {
	switch v {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}
	return false
}

// ValidCompetition reports whether v is a valid competition tier.
func ValidCompetition(v string) bool {
	switch v {
	case models.CompetitionLow, models.CompetitionMedium, models.CompetitionHigh:
		return true
	}
	return false
}

// ValidPriority reports whether v is a valid suggestion priority.
func ValidPriority(v string) bool {
	switch v {
	case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
		return true
	}
	return false
}

// ValidSuggestionType reports whether v is a valid suggestion type.
func ValidSuggestionType(v string) bool {
	switch v {
	case models.SuggestionTitle, models.SuggestionMetaDescription,
		models.SuggestionHeadings, models.SuggestionInternalLinks,
		models.SuggestionImages, models.SuggestionKeywordDensity,
		models.SuggestionReadability:
		return true
	}
	return false
}
