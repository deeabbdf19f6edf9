package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"seoplanner/internal/models"
)

// competitorColumns is the standard column list for competitor queries.
const competitorColumns = `id, domain, title, url, meta_description, word_count,
	domain_authority, page_authority, content_quality_score, backlinks,
	ranking_position, target_keyword, analyzed_at`

// scanCompetitors scans multiple rows into a slice of Competitors.
func scanCompetitors(rows pgx.Rows) ([]models.Competitor, error) {
	defer rows.Close()

	var competitors []models.Competitor
	for rows.Next() {
		var c models.Competitor
		if err := rows.Scan(
			&c.ID,
			&c.Domain,
			&c.Title,
			&c.URL,
			&c.MetaDescription,
			&c.WordCount,
			&c.DomainAuthority,
			&c.PageAuthority,
			&c.ContentQualityScore,
			&c.Backlinks,
			&c.RankingPosition,
			&c.TargetKeyword,
			&c.AnalyzedAt,
		); err != nil {
			return nil, err
		}
		competitors = append(competitors, c)
	}

	return competitors, rows.Err()
}

// CreateCompetitor inserts a new competitor row.
func (d *DB) CreateCompetitor(ctx context.Context, c *models.Competitor) error {
	query := `
		INSERT INTO competitors (domain, title, url, meta_description, word_count,
			domain_authority, page_authority, content_quality_score, backlinks,
			ranking_position, target_keyword, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := d.Pool.QueryRow(ctx, query,
		c.Domain,
		c.Title,
		c.URL,
		c.MetaDescription,
		c.WordCount,
		c.DomainAuthority,
		c.PageAuthority,
		c.ContentQualityScore,
		c.Backlinks,
		c.RankingPosition,
		c.TargetKeyword,
		c.AnalyzedAt,
	).Scan(&c.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateCompetitor
		}
		return err
	}

	return nil
}

// ListCompetitorsByKeyword retrieves competitors for a target keyword ordered
// by ranking position ascending.
func (d *DB) ListCompetitorsByKeyword(ctx context.Context, targetKeyword string, limit int) ([]models.Competitor, error) {
	query := `
		SELECT ` + competitorColumns + `
		FROM competitors
		WHERE target_keyword = $1
		ORDER BY ranking_position ASC
		LIMIT $2
	`
	rows, err := d.Pool.Query(ctx, query, targetKeyword, limit)
	if err != nil {
		return nil, err
	}
	return scanCompetitors(rows)
}

// ListCompetitors retrieves all competitors, most recently analyzed first.
func (d *DB) ListCompetitors(ctx context.Context) ([]models.Competitor, error) {
	query := `SELECT ` + competitorColumns + ` FROM competitors ORDER BY analyzed_at DESC, ranking_position ASC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanCompetitors(rows)
}

// CountCompetitors returns the total competitor row count.
func (d *DB) CountCompetitors(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM competitors`).Scan(&count)
	return count, err
}
