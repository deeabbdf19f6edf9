package seo

import (
	"encoding/json"
	"math"
	"strings"

	"seoplanner/internal/models"
)

// baseReadingSpeed is the unadjusted reading speed in words per minute. Each
// template's complexity factor divides it.
const baseReadingSpeed = 200.0

// outlineTemplate is the immutable per-content-type configuration. Section,
// keyword, tip, meta, and title patterns use a [keyword] placeholder.
type outlineTemplate struct {
	MinWords          int
	MaxWords          int
	ComplexityFactor  float64
	Sections          []string
	SecondaryKeywords []string
	Tips              []string
	Meta              string
	Title             string
}

var genericSecondaryKeywords = []string{
	"best [keyword]",
	"[keyword] tips",
}

var genericTips = []string{
	"Include [keyword] in the first 100 words",
	"Use [keyword] in at least one H2 heading",
	"Add internal links to related [keyword] content",
	"Optimize images with [keyword] alt text",
	"Keep paragraphs short to improve readability",
}

var outlineTemplates = map[string]outlineTemplate{
	models.ContentTypeBlogPost: {
		MinWords:         800,
		MaxWords:         2000,
		ComplexityFactor: 1.0,
		Sections: []string{
			"What Is [keyword]?",
			"Why [keyword] Matters",
			"How to Get Started with [keyword]",
			"Common [keyword] Mistakes to Avoid",
			"Best Practices for [keyword]",
		},
		SecondaryKeywords: []string{"[keyword] ideas", "[keyword] examples"},
		Tips: []string{
			"Share first-hand experience with [keyword] to build trust",
			"End the post with a question to encourage comments",
		},
		Meta:  "Discover everything you need to know about [keyword]. Practical tips, examples, and advice you can apply today.",
		Title: "The Complete Guide to [keyword]",
	},
	models.ContentTypeArticle: {
		MinWords:         1000,
		MaxWords:         2500,
		ComplexityFactor: 2.0,
		Sections: []string{
			"Understanding [keyword]",
			"The Current State of [keyword]",
			"Key Benefits of [keyword]",
			"Challenges and Limitations",
			"What's Next for [keyword]",
		},
		SecondaryKeywords: []string{"[keyword] trends", "[keyword] statistics"},
		Tips: []string{
			"Cite recent data and studies about [keyword]",
			"Include expert quotes to strengthen the [keyword] article",
		},
		Meta:  "An in-depth look at [keyword]: current trends, key benefits, and what the future holds.",
		Title: "[keyword]: Everything You Need to Know",
	},
	models.ContentTypeGuide: {
		MinWords:         1500,
		MaxWords:         4000,
		ComplexityFactor: 3.5,
		Sections: []string{
			"Getting Started with [keyword]",
			"Essential [keyword] Concepts",
			"Step-by-Step [keyword] Walkthrough",
			"Advanced [keyword] Strategies",
			"Tools and Resources for [keyword]",
			"Troubleshooting Common [keyword] Problems",
		},
		SecondaryKeywords: []string{"[keyword] for beginners", "advanced [keyword]"},
		Tips: []string{
			"Add a table of contents so readers can navigate the [keyword] guide",
			"Break the [keyword] guide into clearly numbered steps",
		},
		Meta:  "The definitive [keyword] guide: from the basics to advanced strategies, with tools and troubleshooting.",
		Title: "The Ultimate [keyword] Guide",
	},
	models.ContentTypeTutorial: {
		MinWords:         1200,
		MaxWords:         3000,
		ComplexityFactor: 3.0,
		Sections: []string{
			"Prerequisites for This [keyword] Tutorial",
			"Setting Up for [keyword]",
			"Step 1: [keyword] Basics",
			"Step 2: Putting [keyword] into Practice",
			"Step 3: Testing Your [keyword] Setup",
			"Next Steps",
		},
		SecondaryKeywords: []string{"[keyword] tutorial for beginners", "learn [keyword]"},
		Tips: []string{
			"Include a screenshot or snippet for every [keyword] step",
			"Add checkpoints so readers can verify their [keyword] progress",
		},
		Meta:  "Learn [keyword] step by step. A hands-on tutorial with practical examples and checkpoints.",
		Title: "How to Master [keyword]: A Step-by-Step Tutorial",
	},
	models.ContentTypeReview: {
		MinWords:         800,
		MaxWords:         1800,
		ComplexityFactor: 2.5,
		Sections: []string{
			"[keyword] at a Glance",
			"Key Features of [keyword]",
			"Pros and Cons",
			"Pricing and Alternatives",
			"Our Verdict on [keyword]",
		},
		SecondaryKeywords: []string{"[keyword] review", "[keyword] alternatives"},
		Tips: []string{
			"Disclose how you tested [keyword]",
			"Compare [keyword] against at least two alternatives",
		},
		Meta:  "An honest [keyword] review: features, pros and cons, pricing, and whether it's worth it.",
		Title: "[keyword] Review: Is It Worth It?",
	},
}

// outlineSection is one main section in the serialized outline structure.
type outlineSection struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

type outlineBlock struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type outlineStructure struct {
	Introduction outlineBlock     `json:"introduction"`
	Sections     []outlineSection `json:"sections"`
	Conclusion   outlineBlock     `json:"conclusion"`
}

// BuildOutline synthesizes a content outline for a keyword from the fixed
// per-content-type template. An unknown content type yields a ValidationError
// naming the allowed set.
func BuildOutline(rng Rand, targetKeyword, contentType string) (*models.ContentOutline, error) {
	tmpl, ok := outlineTemplates[contentType]
	if !ok {
		return nil, &ValidationError{
			Field:   "content_type",
			Value:   contentType,
			Message: "must be one of " + strings.Join(models.ContentTypes, ", "),
		}
	}

	wordCount := tmpl.MinWords + rng.IntN(tmpl.MaxWords-tmpl.MinWords+1)
	readingSpeed := baseReadingSpeed / tmpl.ComplexityFactor
	readingTime := int(math.Ceil(float64(wordCount) / readingSpeed))

	structure := outlineStructure{
		Introduction: outlineBlock{
			Title:       "Introduction",
			Description: substitute("Introduce [keyword] and what the reader will learn.", targetKeyword),
		},
		Conclusion: outlineBlock{
			Title:       "Conclusion",
			Description: substitute("Summarize the key takeaways about [keyword].", targetKeyword),
		},
	}
	for i, pattern := range tmpl.Sections {
		structure.Sections = append(structure.Sections, outlineSection{
			Title: substitute(pattern, targetKeyword),
			Order: i + 1,
		})
	}
	structureJSON, err := json.Marshal(structure)
	if err != nil {
		return nil, err
	}

	secondary := substituteAll(append(append([]string{}, genericSecondaryKeywords...), tmpl.SecondaryKeywords...), targetKeyword)
	secondaryJSON, err := json.Marshal(secondary)
	if err != nil {
		return nil, err
	}

	tips := substituteAll(append(append([]string{}, genericTips...), tmpl.Tips...), targetKeyword)
	tipsJSON, err := json.Marshal(tips)
	if err != nil {
		return nil, err
	}

	secondaryText := string(secondaryJSON)
	tipsText := string(tipsJSON)
	meta := substitute(tmpl.Meta, targetKeyword)

	return &models.ContentOutline{
		Title:                substitute(tmpl.Title, targetKeyword),
		TargetKeyword:        targetKeyword,
		SecondaryKeywords:    &secondaryText,
		MetaDescription:      &meta,
		WordCountTarget:      wordCount,
		OutlineStructure:     string(structureJSON),
		SEOSuggestions:       &tipsText,
		ContentType:          contentType,
		DifficultyLevel:      DeriveDifficulty(contentType, wordCount),
		EstimatedReadingTime: readingTime,
	}, nil
}

// DeriveDifficulty maps a content type and word count target onto a
// difficulty level. Type rules take precedence over the word-count fallback.
func DeriveDifficulty(contentType string, wordCount int) string {
	if contentType == models.ContentTypeBlogPost || wordCount < 1200 {
		return models.DifficultyBeginner
	}
	if contentType == models.ContentTypeGuide || contentType == models.ContentTypeTutorial || wordCount > 2500 {
		return models.DifficultyAdvanced
	}
	return models.DifficultyIntermediate
}

// EstimateReadingTime computes reading minutes at the base reading speed.
// Used when outlines are created manually without an explicit estimate.
func EstimateReadingTime(wordCount int) int {
	return int(math.Ceil(float64(wordCount) / baseReadingSpeed))
}

func substitute(pattern, keyword string) string {
	return strings.ReplaceAll(pattern, "[keyword]", keyword)
}

func substituteAll(patterns []string, keyword string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = substitute(p, keyword)
	}
	return out
}
