package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"schedule_merger/internal/domain"
)

// ObservationStore reads the append-only bronze tables written by the
// scrapers. No write methods on purpose.
type ObservationStore struct {
	db *sqlx.DB
}

func NewObservationStore(db *sqlx.DB) *ObservationStore {
	return &ObservationStore{db: db}
}

func (s *ObservationStore) ListSince(ctx context.Context, source string, since time.Time) ([]domain.Observation, error) {
	query := `
		SELECT id, run_id, source, class_name, instructor, location,
		       start_ts, end_ts, capacity, spots_booked, status, url,
		       scraped_at, raw
		FROM schedule_snapshots
		WHERE source = $1 AND scraped_at > $2
		ORDER BY scraped_at, id`

	var obs []domain.Observation
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &obs, query, source, since)
	if err != nil {
		return nil, err
	}
	return obs, nil
}
