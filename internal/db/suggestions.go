package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"seoplanner/internal/models"
)

// suggestionColumns is the standard column list for suggestion queries.
const suggestionColumns = `id, content_outline_id, suggestion_type, priority, suggestion,
	current_value, recommended_value, impact_score, is_implemented, created_at`

// scanSuggestion scans a row into an OptimizationSuggestion struct. Returns
// (nil, nil) when no row matched.
func scanSuggestion(row pgx.Row) (*models.OptimizationSuggestion, error) {
	var s models.OptimizationSuggestion
	err := row.Scan(
		&s.ID,
		&s.ContentOutlineID,
		&s.SuggestionType,
		&s.Priority,
		&s.Suggestion,
		&s.CurrentValue,
		&s.RecommendedValue,
		&s.ImpactScore,
		&s.IsImplemented,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSuggestion inserts a new suggestion row.
func (d *DB) CreateSuggestion(ctx context.Context, s *models.OptimizationSuggestion) error {
	query := `
		INSERT INTO optimization_suggestions (content_outline_id, suggestion_type,
			priority, suggestion, current_value, recommended_value, impact_score,
			is_implemented)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := d.Pool.QueryRow(ctx, query,
		s.ContentOutlineID,
		s.SuggestionType,
		s.Priority,
		s.Suggestion,
		s.CurrentValue,
		s.RecommendedValue,
		s.ImpactScore,
		s.IsImplemented,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return ErrOutlineReference
		}
		return err
	}

	return nil
}

// ListSuggestionsByOutline retrieves all suggestions for an outline in
// creation order.
func (d *DB) ListSuggestionsByOutline(ctx context.Context, outlineID int64) ([]models.OptimizationSuggestion, error) {
	query := `
		SELECT ` + suggestionColumns + `
		FROM optimization_suggestions
		WHERE content_outline_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := d.Pool.Query(ctx, query, outlineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suggestions []models.OptimizationSuggestion
	for rows.Next() {
		var s models.OptimizationSuggestion
		if err := rows.Scan(
			&s.ID,
			&s.ContentOutlineID,
			&s.SuggestionType,
			&s.Priority,
			&s.Suggestion,
			&s.CurrentValue,
			&s.RecommendedValue,
			&s.ImpactScore,
			&s.IsImplemented,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		suggestions = append(suggestions, s)
	}

	return suggestions, rows.Err()
}

// GetSuggestion retrieves a suggestion by id, or (nil, nil) if absent.
func (d *DB) GetSuggestion(ctx context.Context, id int64) (*models.OptimizationSuggestion, error) {
	query := `SELECT ` + suggestionColumns + ` FROM optimization_suggestions WHERE id = $1`
	return scanSuggestion(d.Pool.QueryRow(ctx, query, id))
}

// SetSuggestionImplemented updates only the implemented flag. Returns
// (nil, nil) when the id is unknown.
func (d *DB) SetSuggestionImplemented(ctx context.Context, id int64, implemented bool) (*models.OptimizationSuggestion, error) {
	query := `
		UPDATE optimization_suggestions
		SET is_implemented = $1
		WHERE id = $2
		RETURNING ` + suggestionColumns
	return scanSuggestion(d.Pool.QueryRow(ctx, query, implemented, id))
}

// CountSuggestions returns the total suggestion row count.
func (d *DB) CountSuggestions(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM optimization_suggestions`).Scan(&count)
	return count, err
}
