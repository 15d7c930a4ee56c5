package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"schedule_merger/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

// Begin inserts the ledger entry before any merge work so a crash leaves a
// visible "running" row. Deliberately outside the merge transaction.
func (s *RunStore) Begin(ctx context.Context, run *domain.MergeRun) error {
	query := `
		INSERT INTO merge_runs (run_id, source, started_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		run.RunID, run.Source, run.StartedAt, run.Status,
	).Scan(&run.ID)
}

func (s *RunStore) Complete(ctx context.Context, run *domain.MergeRun) error {
	query := `
		UPDATE merge_runs SET
			completed_at = NOW(),
			status = $2,
			records_processed = $3,
			records_inserted = $4,
			records_updated = $5,
			records_cancelled = $6,
			watermark = $7
		WHERE run_id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		run.RunID,
		run.Status,
		run.Processed,
		run.Inserted,
		run.Updated,
		run.Cancelled,
		run.Watermark,
	)
	return err
}

func (s *RunStore) Fail(ctx context.Context, runID string, errMsg string) error {
	query := `
		UPDATE merge_runs SET
			completed_at = NOW(),
			status = $2,
			error_message = $3
		WHERE run_id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		runID, domain.RunStatusFailed, errMsg,
	)
	return err
}

// LastWatermark returns the max watermark over successful runs for the
// source. Failed and still-running entries never advance it, which is what
// makes crashed runs safe to retry.
func (s *RunStore) LastWatermark(ctx context.Context, source string) (time.Time, error) {
	query := `
		SELECT MAX(watermark)
		FROM merge_runs
		WHERE source = $1 AND status = $2`

	var watermark sql.NullTime
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, source, domain.RunStatusSuccess).Scan(&watermark)
	if err != nil {
		return time.Time{}, err
	}
	if !watermark.Valid {
		return time.Time{}, nil
	}
	return watermark.Time, nil
}
