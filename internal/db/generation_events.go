package db

import (
	"context"

	"seoplanner/internal/models"
)

// IncrementGenerationEvent upserts a generation event count by outcome.
func (d *DB) IncrementGenerationEvent(ctx context.Context, kind, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO generation_events (kind, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (kind, outcome) DO UPDATE
		SET count = generation_events.count + 1, last_seen_at = NOW()
	`, kind, outcome)
	return err
}

// GetAllGenerationEvents returns all generation event rows for metrics export.
func (d *DB) GetAllGenerationEvents(ctx context.Context) ([]models.GenerationEvent, error) {
	rows, err := d.Pool.Query(ctx, `SELECT kind, outcome, count, last_seen_at FROM generation_events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.GenerationEvent
	for rows.Next() {
		var e models.GenerationEvent
		if err := rows.Scan(&e.Kind, &e.Outcome, &e.Count, &e.LastSeenAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
