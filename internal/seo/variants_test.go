package seo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandVariantsSeedOnly(t *testing.T) {
	assert.Equal(t, []string{"coffee"}, ExpandVariants("coffee", false))
}

func TestExpandVariantsSingleWord(t *testing.T) {
	variants := ExpandVariants("coffee", true)

	require.Len(t, variants, 11)
	assert.Equal(t, "coffee", variants[0], "seed comes first")
	assert.Contains(t, variants, "coffee guide")
	assert.Contains(t, variants, "best coffee")
	assert.Contains(t, variants, "how to coffee")
	assert.Contains(t, variants, "coffee cost")
}

func TestExpandVariantsMultiWord(t *testing.T) {
	variants := ExpandVariants("digital marketing", true)

	require.Len(t, variants, 13)
	assert.Equal(t, "digital marketing", variants[0])
	assert.Contains(t, variants, "marketing digital", "words reversed")
	assert.Contains(t, variants, "digital", "last word dropped")
}

func TestExpandVariantsDeduplicates(t *testing.T) {
	variants := ExpandVariants("top picks", true)

	// "top top picks" comes from the template; the reversal "picks top" and
	// the drop "top" are distinct, so all entries must be unique.
	seen := make(map[string]struct{})
	for _, v := range variants {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate variant %q", v)
		seen[v] = struct{}{}
	}
}
