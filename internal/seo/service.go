// Package seo contains the content-planning rule engines: keyword metric
// synthesis, variant expansion, competitor mocking, outline templating, and
// optimization suggestions, plus the orchestrators that tie them to storage.
package seo

import (
	"context"
	"errors"
	"fmt"

	"seoplanner/internal/models"
	"seoplanner/internal/validation"
)

// defaultCompetitorLimit applies when an analysis request omits the limit.
const defaultCompetitorLimit = 10

// Service orchestrates the generators over the store. The record hook feeds
// the generation-event metrics and may be nil.
type Service struct {
	store  Store
	rng    Rand
	record func(kind, outcome string)
}

// NewService creates a Service. Pass a seeded Rand for reproducible output.
func NewService(store Store, rng Rand, record func(kind, outcome string)) *Service {
	if record == nil {
		record = func(string, string) {}
	}
	return &Service{store: store, rng: rng, record: record}
}

// ResearchKeywords expands the seed into variants, synthesizes metrics for
// each, filters by the caller's thresholds, and persists the survivors.
// Existing rows are reused verbatim, so repeated calls are idempotent.
func (s *Service) ResearchKeywords(ctx context.Context, req models.ResearchRequest) ([]models.Keyword, error) {
	seed := validation.NormalizeKeyword(req.SeedKeyword)
	if !validation.ValidateSeedKeyword(seed) {
		return nil, &ValidationError{
			Field:   "seed_keyword",
			Value:   req.SeedKeyword,
			Message: "must be 1-100 characters of letters, numbers, hyphens, and spaces",
		}
	}

	includeRelated := true
	if req.IncludeRelated != nil {
		includeRelated = *req.IncludeRelated
	}
	maxDifficulty := 100.0
	if req.MaxDifficulty != nil {
		maxDifficulty = *req.MaxDifficulty
	}

	results := make([]models.Keyword, 0)
	for _, variant := range ExpandVariants(seed, includeRelated) {
		metrics := SynthesizeMetrics(s.rng, variant, seed)
		if metrics.SearchVolume < req.MinSearchVolume || metrics.Difficulty > maxDifficulty {
			s.record(models.EventKeywordResearch, models.OutcomeFiltered)
			continue
		}

		existing, err := s.store.FindKeywordByText(ctx, variant)
		if err != nil {
			return nil, fmt.Errorf("find keyword %q: %w", variant, err)
		}
		if existing != nil {
			results = append(results, *existing)
			s.record(models.EventKeywordResearch, models.OutcomeHit)
			continue
		}

		kw := &models.Keyword{
			Keyword:      variant,
			SearchVolume: metrics.SearchVolume,
			Difficulty:   metrics.Difficulty,
			CPC:          metrics.CPC,
			Competition:  metrics.Competition,
			TrendData:    &metrics.TrendData,
		}
		if err := s.store.CreateKeyword(ctx, kw); err != nil {
			if errors.Is(err, ErrDuplicate) {
				// Row appeared under a concurrent identical request; reuse it.
				existing, rerr := s.store.FindKeywordByText(ctx, variant)
				if rerr != nil || existing == nil {
					return nil, fmt.Errorf("re-read keyword %q: %w", variant, rerr)
				}
				results = append(results, *existing)
				s.record(models.EventKeywordResearch, models.OutcomeHit)
				continue
			}
			return nil, fmt.Errorf("create keyword %q: %w", variant, err)
		}
		results = append(results, *kw)
		s.record(models.EventKeywordResearch, models.OutcomeCreated)
	}
	return results, nil
}

// AnalyzeCompetitors returns the stored competitor batch for a keyword, or on
// first request generates and persists one. Cache-aside with no expiry: once
// rows exist, the generator is never invoked again for that keyword.
func (s *Service) AnalyzeCompetitors(ctx context.Context, req models.AnalyzeRequest) ([]models.Competitor, error) {
	keyword := validation.NormalizeKeyword(req.TargetKeyword)
	if !validation.ValidateSeedKeyword(keyword) {
		return nil, &ValidationError{
			Field:   "target_keyword",
			Value:   req.TargetKeyword,
			Message: "must be 1-100 characters of letters, numbers, hyphens, and spaces",
		}
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultCompetitorLimit
	}

	existing, err := s.store.ListCompetitorsByKeyword(ctx, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("list competitors for %q: %w", keyword, err)
	}
	if len(existing) > 0 {
		s.record(models.EventCompetitorAnalysis, models.OutcomeHit)
		return existing, nil
	}

	generated := GenerateCompetitors(s.rng, keyword, limit)
	for i := range generated {
		if err := s.store.CreateCompetitor(ctx, &generated[i]); err != nil {
			if errors.Is(err, ErrDuplicate) {
				// A concurrent request won the race; return its batch.
				stored, rerr := s.store.ListCompetitorsByKeyword(ctx, keyword, limit)
				if rerr != nil {
					return nil, fmt.Errorf("re-read competitors for %q: %w", keyword, rerr)
				}
				s.record(models.EventCompetitorAnalysis, models.OutcomeHit)
				return stored, nil
			}
			return nil, fmt.Errorf("create competitor for %q: %w", keyword, err)
		}
	}
	s.record(models.EventCompetitorAnalysis, models.OutcomeGenerated)
	return generated, nil
}

// GenerateOutline builds an outline from the content-type template and
// persists it.
func (s *Service) GenerateOutline(ctx context.Context, targetKeyword, contentType string) (*models.ContentOutline, error) {
	keyword := validation.NormalizeKeyword(targetKeyword)
	if !validation.ValidateSeedKeyword(keyword) {
		return nil, &ValidationError{
			Field:   "target_keyword",
			Value:   targetKeyword,
			Message: "must be 1-100 characters of letters, numbers, hyphens, and spaces",
		}
	}

	outline, err := BuildOutline(s.rng, keyword, contentType)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateOutline(ctx, outline); err != nil {
		return nil, fmt.Errorf("create outline for %q: %w", keyword, err)
	}
	s.record(models.EventOutlineGenerated, contentType)
	return outline, nil
}

// GenerateSuggestions evaluates the optimization rules against an existing
// outline and persists the resulting batch with is_implemented=false.
func (s *Service) GenerateSuggestions(ctx context.Context, outlineID int64) ([]models.OptimizationSuggestion, error) {
	outline, err := s.store.GetOutline(ctx, outlineID)
	if err != nil {
		return nil, fmt.Errorf("get outline %d: %w", outlineID, err)
	}
	if outline == nil {
		return nil, &NotFoundError{Entity: "content outline", ID: outlineID}
	}

	suggestions := EvaluateOutline(outline)
	for i := range suggestions {
		suggestions[i].ImpactScore = round2(suggestions[i].ImpactScore)
		if err := s.store.CreateSuggestion(ctx, &suggestions[i]); err != nil {
			return nil, fmt.Errorf("create suggestion for outline %d: %w", outlineID, err)
		}
	}
	s.record(models.EventSuggestionsBatch, models.OutcomeGenerated)
	return suggestions, nil
}

// CreateSuggestion validates and persists a manually supplied suggestion.
// The referenced outline must exist.
func (s *Service) CreateSuggestion(ctx context.Context, sug *models.OptimizationSuggestion) error {
	if !validation.ValidSuggestionType(sug.SuggestionType) {
		return &ValidationError{Field: "suggestion_type", Value: sug.SuggestionType,
			Message: "must be one of title, meta_description, headings, internal_links, images, keyword_density, readability"}
	}
	if !validation.ValidPriority(sug.Priority) {
		return &ValidationError{Field: "priority", Value: sug.Priority, Message: "must be one of high, medium, low"}
	}
	if sug.Suggestion == "" {
		return &ValidationError{Field: "suggestion", Value: "", Message: "must not be empty"}
	}
	if sug.ImpactScore < 0 || sug.ImpactScore > 100 {
		return &ValidationError{Field: "impact_score", Value: fmt.Sprintf("%v", sug.ImpactScore),
			Message: "must be between 0 and 100"}
	}

	outline, err := s.store.GetOutline(ctx, sug.ContentOutlineID)
	if err != nil {
		return fmt.Errorf("get outline %d: %w", sug.ContentOutlineID, err)
	}
	if outline == nil {
		return &NotFoundError{Entity: "content outline", ID: sug.ContentOutlineID}
	}

	sug.ImpactScore = round2(sug.ImpactScore)
	if err := s.store.CreateSuggestion(ctx, sug); err != nil {
		return fmt.Errorf("create suggestion for outline %d: %w", sug.ContentOutlineID, err)
	}
	return nil
}

// SetSuggestionImplemented toggles the implemented flag. A missing id returns
// (nil, nil) rather than an error; no other field is mutated.
func (s *Service) SetSuggestionImplemented(ctx context.Context, id int64, implemented bool) (*models.OptimizationSuggestion, error) {
	sug, err := s.store.SetSuggestionImplemented(ctx, id, implemented)
	if err != nil {
		return nil, fmt.Errorf("set suggestion %d implemented: %w", id, err)
	}
	return sug, nil
}
