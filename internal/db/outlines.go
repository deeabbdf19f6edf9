package db

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"seoplanner/internal/models"
)

// outlineColumns is the standard column list for outline queries.
const outlineColumns = `id, title, target_keyword, secondary_keywords, meta_description,
	word_count_target, outline_structure, seo_suggestions, content_type,
	difficulty_level, estimated_reading_time, created_at, updated_at`

// scanOutline scans a row into a ContentOutline struct. Returns (nil, nil)
// when no row matched.
func scanOutline(row pgx.Row) (*models.ContentOutline, error) {
	var o models.ContentOutline
	err := row.Scan(
		&o.ID,
		&o.Title,
		&o.TargetKeyword,
		&o.SecondaryKeywords,
		&o.MetaDescription,
		&o.WordCountTarget,
		&o.OutlineStructure,
		&o.SEOSuggestions,
		&o.ContentType,
		&o.DifficultyLevel,
		&o.EstimatedReadingTime,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// scanOutlines scans multiple rows into a slice of ContentOutlines.
func scanOutlines(rows pgx.Rows) ([]models.ContentOutline, error) {
	defer rows.Close()

	var outlines []models.ContentOutline
	for rows.Next() {
		var o models.ContentOutline
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.TargetKeyword,
			&o.SecondaryKeywords,
			&o.MetaDescription,
			&o.WordCountTarget,
			&o.OutlineStructure,
			&o.SEOSuggestions,
			&o.ContentType,
			&o.DifficultyLevel,
			&o.EstimatedReadingTime,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		outlines = append(outlines, o)
	}

	return outlines, rows.Err()
}

// CreateOutline inserts a new content outline row.
func (d *DB) CreateOutline(ctx context.Context, o *models.ContentOutline) error {
	query := `
		INSERT INTO content_outlines (title, target_keyword, secondary_keywords,
			meta_description, word_count_target, outline_structure, seo_suggestions,
			content_type, difficulty_level, estimated_reading_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		o.Title,
		o.TargetKeyword,
		o.SecondaryKeywords,
		o.MetaDescription,
		o.WordCountTarget,
		o.OutlineStructure,
		o.SEOSuggestions,
		o.ContentType,
		o.DifficultyLevel,
		o.EstimatedReadingTime,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

// GetOutline retrieves an outline by id, or (nil, nil) if absent.
func (d *DB) GetOutline(ctx context.Context, id int64) (*models.ContentOutline, error) {
	query := `SELECT ` + outlineColumns + ` FROM content_outlines WHERE id = $1`
	return scanOutline(d.Pool.QueryRow(ctx, query, id))
}

// ListOutlines retrieves all outlines, newest first.
func (d *DB) ListOutlines(ctx context.Context) ([]models.ContentOutline, error) {
	query := `SELECT ` + outlineColumns + ` FROM content_outlines ORDER BY created_at DESC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanOutlines(rows)
}

// UpdateOutline applies a partial update: only non-nil fields change, and
// updated_at is refreshed even when no field values do. Returns (nil, nil)
// when the id is unknown.
func (d *DB) UpdateOutline(ctx context.Context, id int64, update models.OutlineUpdate) (*models.ContentOutline, error) {
	sql := `UPDATE content_outlines SET updated_at = NOW()`
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sql += `, ` + column + ` = $` + strconv.Itoa(len(args))
	}

	if update.Title != nil {
		set("title", *update.Title)
	}
	if update.TargetKeyword != nil {
		set("target_keyword", *update.TargetKeyword)
	}
	if update.SecondaryKeywords != nil {
		set("secondary_keywords", *update.SecondaryKeywords)
	}
	if update.MetaDescription != nil {
		set("meta_description", *update.MetaDescription)
	}
	if update.WordCountTarget != nil {
		set("word_count_target", *update.WordCountTarget)
	}
	if update.OutlineStructure != nil {
		set("outline_structure", *update.OutlineStructure)
	}
	if update.SEOSuggestions != nil {
		set("seo_suggestions", *update.SEOSuggestions)
	}
	if update.ContentType != nil {
		set("content_type", *update.ContentType)
	}
	if update.DifficultyLevel != nil {
		set("difficulty_level", *update.DifficultyLevel)
	}
	if update.EstimatedReadingTime != nil {
		set("estimated_reading_time", *update.EstimatedReadingTime)
	}

	args = append(args, id)
	sql += ` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + outlineColumns

	return scanOutline(d.Pool.QueryRow(ctx, sql, args...))
}

// CountOutlines returns the total outline row count.
func (d *DB) CountOutlines(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM content_outlines`).Scan(&count)
	return count, err
}
