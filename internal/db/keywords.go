package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"seoplanner/internal/models"
)

// keywordColumns is the standard column list for keyword queries.
const keywordColumns = `id, keyword, search_volume, difficulty, cpc, competition, trend_data, created_at`

// scanKeyword scans a row into a Keyword struct. Returns (nil, nil) when no
// row matched.
func scanKeyword(row pgx.Row) (*models.Keyword, error) {
	var kw models.Keyword
	err := row.Scan(
		&kw.ID,
		&kw.Keyword,
		&kw.SearchVolume,
		&kw.Difficulty,
		&kw.CPC,
		&kw.Competition,
		&kw.TrendData,
		&kw.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &kw, nil
}

// scanKeywords scans multiple rows into a slice of Keywords.
func scanKeywords(rows pgx.Rows) ([]models.Keyword, error) {
	defer rows.Close()

	var keywords []models.Keyword
	for rows.Next() {
		var kw models.Keyword
		if err := rows.Scan(
			&kw.ID,
			&kw.Keyword,
			&kw.SearchVolume,
			&kw.Difficulty,
			&kw.CPC,
			&kw.Competition,
			&kw.TrendData,
			&kw.CreatedAt,
		); err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}

	return keywords, rows.Err()
}

// CreateKeyword inserts a new keyword row.
func (d *DB) CreateKeyword(ctx context.Context, kw *models.Keyword) error {
	query := `
		INSERT INTO keywords (keyword, search_volume, difficulty, cpc, competition, trend_data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := d.Pool.QueryRow(ctx, query,
		kw.Keyword,
		kw.SearchVolume,
		kw.Difficulty,
		kw.CPC,
		kw.Competition,
		kw.TrendData,
	).Scan(&kw.ID, &kw.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateKeyword
		}
		return err
	}

	return nil
}

// FindKeywordByText retrieves a keyword by its exact text, or (nil, nil) if
// absent.
func (d *DB) FindKeywordByText(ctx context.Context, keyword string) (*models.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE keyword = $1`
	return scanKeyword(d.Pool.QueryRow(ctx, query, keyword))
}

// ListKeywords retrieves all keywords, newest first.
func (d *DB) ListKeywords(ctx context.Context) ([]models.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords ORDER BY created_at DESC`
	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanKeywords(rows)
}

// CountKeywords returns the total keyword row count.
func (d *DB) CountKeywords(ctx context.Context) (int64, error) {
	var count int64
	err := d.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM keywords`).Scan(&count)
	return count, err
}
