package seo

import (
	"fmt"
	"math"
	"strings"
	"time"

	"seoplanner/internal/models"
)

// maxCompetitors caps a generated batch at the size of the reference domain
// list.
const maxCompetitors = 10

// referenceDomains is the fixed ordered list the mock generator draws from.
// Position in this list determines ranking position.
var referenceDomains = []struct {
	domain string
	label  string
}{
	{"wikipedia.org", "Wikipedia"},
	{"forbes.com", "Forbes"},
	{"hubspot.com", "HubSpot"},
	{"medium.com", "Medium"},
	{"entrepreneur.com", "Entrepreneur"},
	{"businessinsider.com", "Business Insider"},
	{"techcrunch.com", "TechCrunch"},
	{"mashable.com", "Mashable"},
	{"neilpatel.com", "Neil Patel"},
	{"searchenginejournal.com", "Search Engine Journal"},
}

// GenerateCompetitors produces up to min(n, 10) synthetic competitor records
// for a target keyword. Authority and quality trend downward with rank inside
// a ±5 variance band, mimicking real SERP noise.
func GenerateCompetitors(rng Rand, targetKeyword string, n int) []models.Competitor {
	if n > maxCompetitors {
		n = maxCompetitors
	}
	if n < 1 {
		n = 1
	}

	now := time.Now()
	competitors := make([]models.Competitor, 0, n)
	for i := 1; i <= n; i++ {
		ref := referenceDomains[i-1]
		baseAuthority := math.Max(95-float64(i)*8, 30)
		variance := rng.Float64()*10 - 5

		meta := fmt.Sprintf("Learn everything about %s with expert insights, practical tips, and proven strategies from %s.",
			targetKeyword, ref.label)

		competitors = append(competitors, models.Competitor{
			Domain:              ref.domain,
			Title:               fmt.Sprintf("%s - Complete Guide | %s", targetKeyword, ref.label),
			URL:                 fmt.Sprintf("https://%s/%s", ref.domain, Slugify(targetKeyword)),
			MetaDescription:     &meta,
			WordCount:           1500 + rng.IntN(2000),
			DomainAuthority:     math.Round(math.Max(baseAuthority+variance, 10)),
			PageAuthority:       math.Round(math.Max(baseAuthority-5+variance, 5)),
			ContentQualityScore: math.Round(math.Max(90-float64(i)*3+variance, 40)),
			Backlinks:           rng.IntN(1000) + 100*(11-i),
			RankingPosition:     i,
			TargetKeyword:       targetKeyword,
			AnalyzedAt:          now,
		})
	}
	return competitors
}

// Slugify converts a keyword into a URL path segment.
func Slugify(keyword string) string {
	return strings.Join(strings.Fields(strings.ToLower(keyword)), "-")
}
