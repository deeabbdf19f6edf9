package seo

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoplanner/internal/models"
)

func TestBuildOutlineBlogPost(t *testing.T) {
	rng := NewRand(21)
	outline, err := BuildOutline(rng, "digital marketing", models.ContentTypeBlogPost)
	require.NoError(t, err)

	assert.Equal(t, "The Complete Guide to digital marketing", outline.Title)
	assert.Equal(t, "digital marketing", outline.TargetKeyword)
	assert.Equal(t, models.ContentTypeBlogPost, outline.ContentType)
	assert.GreaterOrEqual(t, outline.WordCountTarget, 800)
	assert.LessOrEqual(t, outline.WordCountTarget, 2000)

	require.NotNil(t, outline.MetaDescription)
	assert.Contains(t, *outline.MetaDescription, "digital marketing")

	var structure struct {
		Introduction struct {
			Title string `json:"title"`
		} `json:"introduction"`
		Sections []struct {
			Title string `json:"title"`
			Order int    `json:"order"`
		} `json:"sections"`
		Conclusion struct {
			Title string `json:"title"`
		} `json:"conclusion"`
	}
	require.NoError(t, json.Unmarshal([]byte(outline.OutlineStructure), &structure))
	assert.Equal(t, "Introduction", structure.Introduction.Title)
	assert.Equal(t, "Conclusion", structure.Conclusion.Title)
	require.Len(t, structure.Sections, 5)
	assert.Equal(t, "What Is digital marketing?", structure.Sections[0].Title)
	for i, s := range structure.Sections {
		assert.Equal(t, i+1, s.Order)
		assert.NotContains(t, s.Title, "[keyword]")
	}

	require.NotNil(t, outline.SecondaryKeywords)
	var secondary []string
	require.NoError(t, json.Unmarshal([]byte(*outline.SecondaryKeywords), &secondary))
	require.Len(t, secondary, 4, "two generic plus two per-type")
	assert.Equal(t, "best digital marketing", secondary[0])
	assert.Equal(t, "digital marketing tips", secondary[1])

	require.NotNil(t, outline.SEOSuggestions)
	var tips []string
	require.NoError(t, json.Unmarshal([]byte(*outline.SEOSuggestions), &tips))
	assert.Len(t, tips, 7, "five generic plus two per-type")

	// Blog posts are always beginner regardless of word count.
	assert.Equal(t, models.DifficultyBeginner, outline.DifficultyLevel)
}

func TestBuildOutlineGuideProperties(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		outline, err := BuildOutline(NewRand(seed), "kubernetes", models.ContentTypeGuide)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, outline.WordCountTarget, 1500)
		assert.LessOrEqual(t, outline.WordCountTarget, 4000)
		assert.Equal(t, models.DifficultyAdvanced, outline.DifficultyLevel)

		want := int(math.Ceil(float64(outline.WordCountTarget) / (200.0 / 3.5)))
		assert.Equal(t, want, outline.EstimatedReadingTime)
	}
}

func TestBuildOutlineUnknownType(t *testing.T) {
	_, err := BuildOutline(NewRand(1), "seo", "whitepaper")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content_type", verr.Field)
	assert.Equal(t, "whitepaper", verr.Value)
	assert.Contains(t, verr.Message, models.ContentTypeBlogPost)
}

func TestDeriveDifficulty(t *testing.T) {
	assert.Equal(t, models.DifficultyBeginner, DeriveDifficulty(models.ContentTypeBlogPost, 3000))
	assert.Equal(t, models.DifficultyBeginner, DeriveDifficulty(models.ContentTypeArticle, 1100))
	assert.Equal(t, models.DifficultyAdvanced, DeriveDifficulty(models.ContentTypeGuide, 1500))
	assert.Equal(t, models.DifficultyAdvanced, DeriveDifficulty(models.ContentTypeTutorial, 1200))
	assert.Equal(t, models.DifficultyAdvanced, DeriveDifficulty(models.ContentTypeArticle, 2501))
	assert.Equal(t, models.DifficultyIntermediate, DeriveDifficulty(models.ContentTypeArticle, 2000))
	assert.Equal(t, models.DifficultyIntermediate, DeriveDifficulty(models.ContentTypeReview, 1400))
}

func TestEstimateReadingTime(t *testing.T) {
	assert.Equal(t, 1, EstimateReadingTime(200))
	assert.Equal(t, 2, EstimateReadingTime(201))
	assert.Equal(t, 10, EstimateReadingTime(2000))
}
