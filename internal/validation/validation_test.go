package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"seoplanner/internal/models"
)

func TestNormalizeKeyword(t *testing.T) {
	cases := map[string]string{
		"Coffee":              "coffee",
		"  Digital Marketing": "digital marketing",
		"seo\t\ttools":        "seo tools",
		"a  b   c":            "a b c",
		"   ":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeKeyword(in), "input %q", in)
	}
}

func TestValidateSeedKeyword(t *testing.T) {
	valid := []string{
		"coffee",
		"digital marketing",
		"top-10 tools",
		"beginner's guide",
		"seo 2026",
		strings.Repeat("a", 100),
	}
	for _, kw := range valid {
		assert.True(t, ValidateSeedKeyword(kw), "keyword %q", kw)
	}

	invalid := []string{
		"",
		" leading space",
		"trailing space ",
		"double  space",
		"semi;colon",
		"<script>",
		"under_score",
		"café",
		strings.Repeat("a", 101),
	}
	for _, kw := range invalid {
		assert.False(t, ValidateSeedKeyword(kw), "keyword %q", kw)
	}
}

func TestValidContentType(t *testing.T) {
	for _, ct := range models.ContentTypes {
		assert.True(t, ValidContentType(ct))
	}
	assert.False(t, ValidContentType("ebook"))
	assert.False(t, ValidContentType(""))
	assert.False(t, ValidContentType("Blog_Post"))
}

func TestValidDifficultyLevel(t *testing.T) {
	assert.True(t, ValidDifficultyLevel(models.DifficultyBeginner))
	assert.True(t, ValidDifficultyLevel(models.DifficultyIntermediate))
	assert.True(t, ValidDifficultyLevel(models.DifficultyAdvanced))
	assert.False(t, ValidDifficultyLevel("expert"))
}

func TestValidCompetition(t *testing.T) {
	assert.True(t, ValidCompetition(models.CompetitionLow))
	assert.True(t, ValidCompetition(models.CompetitionMedium))
	assert.True(t, ValidCompetition(models.CompetitionHigh))
	assert.False(t, ValidCompetition("extreme"))
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority(models.PriorityHigh))
	assert.True(t, ValidPriority(models.PriorityMedium))
	assert.True(t, ValidPriority(models.PriorityLow))
	assert.False(t, ValidPriority("urgent"))
}

func TestValidSuggestionType(t *testing.T) {
	for _, st := range []string{
		models.SuggestionTitle, models.SuggestionMetaDescription,
		models.SuggestionHeadings, models.SuggestionInternalLinks,
		models.SuggestionImages, models.SuggestionKeywordDensity,
		models.SuggestionReadability,
	} {
		assert.True(t, ValidSuggestionType(st))
	}
	assert.False(t, ValidSuggestionType("fonts"))
}
