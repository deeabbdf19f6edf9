package seo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seoplanner/internal/models"
)

// fakeStore is an in-memory Store with the same contracts as the real one:
// (nil, nil) lookups on absence and ErrDuplicate on unique conflicts.
type fakeStore struct {
	keywords    map[string]models.Keyword
	competitors map[string][]models.Competitor
	outlines    map[int64]models.ContentOutline
	suggestions map[int64]models.OptimizationSuggestion
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		keywords:    make(map[string]models.Keyword),
		competitors: make(map[string][]models.Competitor),
		outlines:    make(map[int64]models.ContentOutline),
		suggestions: make(map[int64]models.OptimizationSuggestion),
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) FindKeywordByText(_ context.Context, keyword string) (*models.Keyword, error) {
	if kw, ok := f.keywords[keyword]; ok {
		return &kw, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateKeyword(_ context.Context, kw *models.Keyword) error {
	if _, ok := f.keywords[kw.Keyword]; ok {
		return ErrDuplicate
	}
	kw.ID = f.id()
	f.keywords[kw.Keyword] = *kw
	return nil
}

func (f *fakeStore) ListCompetitorsByKeyword(_ context.Context, targetKeyword string, limit int) ([]models.Competitor, error) {
	batch := f.competitors[targetKeyword]
	if len(batch) > limit {
		batch = batch[:limit]
	}
	return batch, nil
}

func (f *fakeStore) CreateCompetitor(_ context.Context, comp *models.Competitor) error {
	for _, existing := range f.competitors[comp.TargetKeyword] {
		if existing.RankingPosition == comp.RankingPosition {
			return ErrDuplicate
		}
	}
	comp.ID = f.id()
	f.competitors[comp.TargetKeyword] = append(f.competitors[comp.TargetKeyword], *comp)
	return nil
}

func (f *fakeStore) GetOutline(_ context.Context, id int64) (*models.ContentOutline, error) {
	if o, ok := f.outlines[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (f *fakeStore) CreateOutline(_ context.Context, outline *models.ContentOutline) error {
	outline.ID = f.id()
	f.outlines[outline.ID] = *outline
	return nil
}

func (f *fakeStore) CreateSuggestion(_ context.Context, s *models.OptimizationSuggestion) error {
	s.ID = f.id()
	f.suggestions[s.ID] = *s
	return nil
}

func (f *fakeStore) SetSuggestionImplemented(_ context.Context, id int64, implemented bool) (*models.OptimizationSuggestion, error) {
	s, ok := f.suggestions[id]
	if !ok {
		return nil, nil
	}
	s.IsImplemented = implemented
	f.suggestions[id] = s
	return &s, nil
}

func newTestService(store Store) *Service {
	return NewService(store, NewRand(42), nil)
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

func TestResearchKeywordsCreates(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	results, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{SeedKeyword: "Coffee  Brewing"})
	require.NoError(t, err)

	require.NotEmpty(t, results)
	assert.Equal(t, "coffee brewing", results[0].Keyword, "seed is normalized and first")
	assert.Len(t, store.keywords, len(results))
	for _, kw := range results {
		assert.NotZero(t, kw.ID)
		assert.NotEmpty(t, kw.Competition)
		require.NotNil(t, kw.TrendData)
	}
}

func TestResearchKeywordsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	req := models.ResearchRequest{SeedKeyword: "email marketing"}

	first, err := svc.ResearchKeywords(context.Background(), req)
	require.NoError(t, err)
	stored := len(store.keywords)

	second, err := svc.ResearchKeywords(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, stored, len(store.keywords), "second run creates no rows")
	// Metrics are re-rolled each call, so the second run may filter
	// differently, but everything it returns must be a stored row from the
	// first run.
	firstByText := make(map[string]models.Keyword, len(first))
	for _, kw := range first {
		firstByText[kw.Keyword] = kw
	}
	for _, kw := range second {
		prev, ok := firstByText[kw.Keyword]
		require.True(t, ok, "unexpected new keyword %q", kw.Keyword)
		assert.Equal(t, prev.ID, kw.ID)
		assert.Equal(t, prev.SearchVolume, kw.SearchVolume)
	}
}

func TestResearchKeywordsSeedOnly(t *testing.T) {
	svc := newTestService(newFakeStore())

	results, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{
		SeedKeyword:    "gardening",
		IncludeRelated: boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gardening", results[0].Keyword)
}

func TestResearchKeywordsFiltersEverything(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	results, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{
		SeedKeyword:     "niche hobby",
		MinSearchVolume: 1000000,
	})
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, store.keywords)
}

func TestResearchKeywordsMaxDifficulty(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	results, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{
		SeedKeyword:   "project management",
		MaxDifficulty: floatPtr(50),
	})
	require.NoError(t, err)
	for _, kw := range results {
		assert.LessOrEqual(t, kw.Difficulty, 50.0)
	}
}

func TestResearchKeywordsRejectsBadSeed(t *testing.T) {
	svc := newTestService(newFakeStore())

	for _, seed := range []string{"", "   ", "drop; tables", "<script>", string(make([]byte, 101))} {
		_, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{SeedKeyword: seed})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "seed %q", seed)
		assert.Equal(t, "seed_keyword", verr.Field)
	}
}

func TestResearchKeywordsDuplicateRace(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	// Simulate a row landing between the find and the create: the store
	// already holds the seed, but under different metrics.
	trend := `{"months":[],"values":[]}`
	store.keywords["racing"] = models.Keyword{ID: 7, Keyword: "racing", SearchVolume: 1234, Competition: models.CompetitionLow, TrendData: &trend}

	results, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{
		SeedKeyword:    "racing",
		IncludeRelated: boolPtr(false),
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(7), results[0].ID)
	assert.Equal(t, 1234, results[0].SearchVolume, "stored row wins over synthesized metrics")
}

func TestAnalyzeCompetitorsGeneratesThenCaches(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	req := models.AnalyzeRequest{TargetKeyword: "SEO Tools", Limit: 5}

	first, err := svc.AnalyzeCompetitors(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, first, 5)
	assert.Equal(t, "seo tools", first[0].TargetKeyword, "keyword normalized before generation")
	assert.Len(t, store.competitors["seo tools"], 5)

	second, err := svc.AnalyzeCompetitors(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, second, 5)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "cached batch is returned verbatim")
		assert.Equal(t, first[i].DomainAuthority, second[i].DomainAuthority)
	}
}

func TestAnalyzeCompetitorsDefaultLimit(t *testing.T) {
	svc := newTestService(newFakeStore())

	results, err := svc.AnalyzeCompetitors(context.Background(), models.AnalyzeRequest{TargetKeyword: "crm software"})
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

func TestAnalyzeCompetitorsRejectsBadKeyword(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.AnalyzeCompetitors(context.Background(), models.AnalyzeRequest{TargetKeyword: "bad!keyword!"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "target_keyword", verr.Field)
}

func TestGenerateOutlinePersists(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	outline, err := svc.GenerateOutline(context.Background(), "Content  Strategy", models.ContentTypeGuide)
	require.NoError(t, err)

	assert.NotZero(t, outline.ID)
	assert.Equal(t, "content strategy", outline.TargetKeyword)
	assert.Contains(t, store.outlines, outline.ID)
}

func TestGenerateOutlineUnknownType(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	_, err := svc.GenerateOutline(context.Background(), "seo", "ebook")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content_type", verr.Field)
	assert.Empty(t, store.outlines, "nothing persisted on validation failure")
}

func TestGenerateSuggestionsPersistsBatch(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	outline, err := svc.GenerateOutline(context.Background(), "seo tools", models.ContentTypeBlogPost)
	require.NoError(t, err)

	suggestions, err := svc.GenerateSuggestions(context.Background(), outline.ID)
	require.NoError(t, err)

	require.NotEmpty(t, suggestions)
	assert.Len(t, store.suggestions, len(suggestions))
	for _, s := range suggestions {
		assert.NotZero(t, s.ID)
		assert.Equal(t, outline.ID, s.ContentOutlineID)
		assert.False(t, s.IsImplemented)
	}
}

func TestGenerateSuggestionsMissingOutline(t *testing.T) {
	svc := newTestService(newFakeStore())

	_, err := svc.GenerateSuggestions(context.Background(), 999999)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "content outline", nfe.Entity)
	assert.Equal(t, int64(999999), nfe.ID)
	assert.Equal(t, "content outline 999999 not found", nfe.Error())
}

func TestCreateSuggestionValidation(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	outline, err := svc.GenerateOutline(context.Background(), "seo", models.ContentTypeBlogPost)
	require.NoError(t, err)

	cases := []struct {
		name  string
		sug   models.OptimizationSuggestion
		field string
	}{
		{"bad type", models.OptimizationSuggestion{ContentOutlineID: outline.ID, SuggestionType: "fonts", Priority: models.PriorityHigh, Suggestion: "x", ImpactScore: 50}, "suggestion_type"},
		{"bad priority", models.OptimizationSuggestion{ContentOutlineID: outline.ID, SuggestionType: models.SuggestionTitle, Priority: "urgent", Suggestion: "x", ImpactScore: 50}, "priority"},
		{"empty text", models.OptimizationSuggestion{ContentOutlineID: outline.ID, SuggestionType: models.SuggestionTitle, Priority: models.PriorityHigh, ImpactScore: 50}, "suggestion"},
		{"impact too high", models.OptimizationSuggestion{ContentOutlineID: outline.ID, SuggestionType: models.SuggestionTitle, Priority: models.PriorityHigh, Suggestion: "x", ImpactScore: 101}, "impact_score"},
		{"impact negative", models.OptimizationSuggestion{ContentOutlineID: outline.ID, SuggestionType: models.SuggestionTitle, Priority: models.PriorityHigh, Suggestion: "x", ImpactScore: -1}, "impact_score"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sug := tc.sug
			err := svc.CreateSuggestion(context.Background(), &sug)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestCreateSuggestionMissingOutline(t *testing.T) {
	svc := newTestService(newFakeStore())

	sug := models.OptimizationSuggestion{
		ContentOutlineID: 12345,
		SuggestionType:   models.SuggestionTitle,
		Priority:         models.PriorityHigh,
		Suggestion:       "Shorten the title",
		ImpactScore:      80,
	}
	err := svc.CreateSuggestion(context.Background(), &sug)
	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, int64(12345), nfe.ID)
}

func TestCreateSuggestionRoundsImpact(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	outline, err := svc.GenerateOutline(context.Background(), "seo", models.ContentTypeBlogPost)
	require.NoError(t, err)

	sug := models.OptimizationSuggestion{
		ContentOutlineID: outline.ID,
		SuggestionType:   models.SuggestionImages,
		Priority:         models.PriorityLow,
		Suggestion:       "Compress images",
		ImpactScore:      33.33333,
	}
	require.NoError(t, svc.CreateSuggestion(context.Background(), &sug))
	assert.Equal(t, 33.33, sug.ImpactScore)
}

func TestSetSuggestionImplemented(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	outline, err := svc.GenerateOutline(context.Background(), "seo", models.ContentTypeBlogPost)
	require.NoError(t, err)
	batch, err := svc.GenerateSuggestions(context.Background(), outline.ID)
	require.NoError(t, err)
	require.NotEmpty(t, batch)

	updated, err := svc.SetSuggestionImplemented(context.Background(), batch[0].ID, true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsImplemented)

	reverted, err := svc.SetSuggestionImplemented(context.Background(), batch[0].ID, false)
	require.NoError(t, err)
	require.NotNil(t, reverted)
	assert.False(t, reverted.IsImplemented)
}

func TestSetSuggestionImplementedUnknownID(t *testing.T) {
	svc := newTestService(newFakeStore())

	sug, err := svc.SetSuggestionImplemented(context.Background(), 424242, true)
	require.NoError(t, err)
	assert.Nil(t, sug)
}

func TestServiceRecordsGenerationEvents(t *testing.T) {
	store := newFakeStore()
	counts := make(map[string]int)
	svc := NewService(store, NewRand(42), func(kind, outcome string) {
		counts[kind+"/"+outcome]++
	})

	_, err := svc.ResearchKeywords(context.Background(), models.ResearchRequest{
		SeedKeyword:    "coffee",
		IncludeRelated: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.EventKeywordResearch+"/"+models.OutcomeCreated])

	_, err = svc.AnalyzeCompetitors(context.Background(), models.AnalyzeRequest{TargetKeyword: "coffee", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.EventCompetitorAnalysis+"/"+models.OutcomeGenerated])

	_, err = svc.AnalyzeCompetitors(context.Background(), models.AnalyzeRequest{TargetKeyword: "coffee", Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.EventCompetitorAnalysis+"/"+models.OutcomeHit])

	outline, err := svc.GenerateOutline(context.Background(), "coffee", models.ContentTypeReview)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.EventOutlineGenerated+"/"+models.ContentTypeReview])

	_, err = svc.GenerateSuggestions(context.Background(), outline.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[models.EventSuggestionsBatch+"/"+models.OutcomeGenerated])
}
