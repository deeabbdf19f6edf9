package seo

import (
	"context"

	"seoplanner/internal/models"
)

// Store is the persistence surface the orchestrators depend on. Lookup
// methods return (nil, nil) when no row matches; inserts return ErrDuplicate
// (wrapped) when a uniqueness constraint is hit.
type Store interface {
	FindKeywordByText(ctx context.Context, keyword string) (*models.Keyword, error)
	CreateKeyword(ctx context.Context, kw *models.Keyword) error

	ListCompetitorsByKeyword(ctx context.Context, targetKeyword string, limit int) ([]models.Competitor, error)
	CreateCompetitor(ctx context.Context, comp *models.Competitor) error

	GetOutline(ctx context.Context, id int64) (*models.ContentOutline, error)
	CreateOutline(ctx context.Context, outline *models.ContentOutline) error

	CreateSuggestion(ctx context.Context, s *models.OptimizationSuggestion) error
	SetSuggestionImplemented(ctx context.Context, id int64, implemented bool) (*models.OptimizationSuggestion, error)
}
