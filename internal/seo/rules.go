package seo

import (
	"encoding/json"
	"fmt"
	"strings"

	"seoplanner/internal/models"
)

// Title and meta description length bounds used by the optimization rules.
const (
	titleMaxLen = 60
	titleMinLen = 30
	metaMaxLen  = 160
	minWords    = 300
)

// EvaluateOutline runs the seven optimization rule groups against an outline
// and returns suggestion drafts in rule-group order. Malformed embedded JSON
// is tolerated and treated as absent.
func EvaluateOutline(outline *models.ContentOutline) []models.OptimizationSuggestion {
	var out []models.OptimizationSuggestion
	add := func(suggestionType, priority, text string, current, recommended *string, impact float64) {
		out = append(out, models.OptimizationSuggestion{
			ContentOutlineID: outline.ID,
			SuggestionType:   suggestionType,
			Priority:         priority,
			Suggestion:       text,
			CurrentValue:     current,
			RecommendedValue: recommended,
			ImpactScore:      impact,
		})
	}

	keyword := strings.ToLower(outline.TargetKeyword)

	// Title rules
	if len(outline.Title) > titleMaxLen {
		add(models.SuggestionTitle, models.PriorityHigh,
			"Title is too long and will be truncated in search results",
			ptr(outline.Title),
			ptr(fmt.Sprintf("Keep the title between %d and %d characters", titleMinLen, titleMaxLen)),
			85)
	} else if len(outline.Title) < titleMinLen {
		add(models.SuggestionTitle, models.PriorityMedium,
			"Title is too short; expand it to be more descriptive",
			ptr(outline.Title),
			ptr(fmt.Sprintf("Aim for %d to %d characters", titleMinLen, titleMaxLen)),
			70)
	}
	if !strings.Contains(strings.ToLower(outline.Title), keyword) {
		add(models.SuggestionTitle, models.PriorityHigh,
			"Include the target keyword in the title",
			ptr(outline.Title),
			ptr(fmt.Sprintf("Add %q to the title", outline.TargetKeyword)),
			90)
	}

	// Meta description rules
	if outline.MetaDescription == nil {
		add(models.SuggestionMetaDescription, models.PriorityHigh,
			"Add a meta description to improve click-through rate",
			nil,
			ptr(fmt.Sprintf("Write a 150-%d character meta description including %q", metaMaxLen, outline.TargetKeyword)),
			80)
	} else {
		meta := *outline.MetaDescription
		if len(meta) > metaMaxLen {
			add(models.SuggestionMetaDescription, models.PriorityMedium,
				"Meta description is too long and will be truncated in search results",
				ptr(meta),
				ptr(fmt.Sprintf("Keep the meta description under %d characters", metaMaxLen)),
				65)
		}
		if !strings.Contains(strings.ToLower(meta), keyword) {
			add(models.SuggestionMetaDescription, models.PriorityMedium,
				"Include the target keyword in the meta description",
				ptr(meta),
				ptr(fmt.Sprintf("Mention %q in the meta description", outline.TargetKeyword)),
				75)
		}
	}

	// Heading rules
	if json.Valid([]byte(outline.OutlineStructure)) {
		add(models.SuggestionHeadings, models.PriorityMedium,
			"Use a hierarchical heading structure (H1-H6) to organize the content",
			nil,
			ptr("Nest subsections under H2 headings where appropriate"),
			70)
	} else {
		add(models.SuggestionHeadings, models.PriorityHigh,
			"Create a heading structure for the content",
			nil,
			ptr("Define an outline with an introduction, main sections, and a conclusion"),
			85)
	}

	// Internal link rule
	add(models.SuggestionInternalLinks, models.PriorityMedium,
		"Add internal links to related content",
		nil,
		ptr("Link to 3-5 relevant pages on your site"),
		60)

	// Image rule
	add(models.SuggestionImages, models.PriorityMedium,
		"Add descriptive alt text to all images",
		nil,
		ptr(fmt.Sprintf("Include %q in at least one image alt attribute", outline.TargetKeyword)),
		55)

	// Keyword density rules
	add(models.SuggestionKeywordDensity, models.PriorityMedium,
		"Maintain a keyword density of 1-2% for the target keyword",
		nil,
		ptr(fmt.Sprintf("Mention %q naturally throughout the content", outline.TargetKeyword)),
		65)
	if secondaryKeywordCount(outline.SecondaryKeywords) > 0 {
		add(models.SuggestionKeywordDensity, models.PriorityLow,
			"Distribute secondary keywords across section headings and body text",
			nil,
			ptr("Work each secondary keyword into at least one section"),
			50)
	}

	// Readability rules
	add(models.SuggestionReadability, models.PriorityMedium,
		"Match the reading level to your audience",
		ptr(outline.DifficultyLevel),
		ptr("Target a "+gradeBand(outline.DifficultyLevel)+" reading level"),
		60)
	if outline.WordCountTarget < minWords {
		add(models.SuggestionReadability, models.PriorityHigh,
			"Increase the word count; very short content rarely ranks",
			ptr(fmt.Sprintf("%d words", outline.WordCountTarget)),
			ptr(fmt.Sprintf("Target at least %d words", minWords)),
			75)
	}

	return out
}

// secondaryKeywordCount parses the serialized secondary keyword list. Parse
// failures degrade to zero rather than erroring.
func secondaryKeywordCount(raw *string) int {
	if raw == nil {
		return 0
	}
	var keywords []string
	if err := json.Unmarshal([]byte(*raw), &keywords); err != nil {
		return 0
	}
	return len(keywords)
}

func gradeBand(difficulty string) string {
	switch difficulty {
	case models.DifficultyBeginner:
		return "Grade 6-8"
	case models.DifficultyAdvanced:
		return "Grade 10-12"
	default:
		return "Grade 8-10"
	}
}

func ptr(s string) *string {
	return &s
}
