package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"schedule_merger/internal/domain"
)

const classColumns = `
	class_id, source, class_name, instructor, location,
	start_ts, end_ts, capacity, spots_booked, status, url,
	first_seen_at, last_updated_at, last_scraped_at,
	is_cancelled, is_past, source_run_id, source_snapshot_id, raw`

type ClassStore struct {
	db *sqlx.DB
}

func NewClassStore(db *sqlx.DB) *ClassStore {
	return &ClassStore{db: db}
}

func (s *ClassStore) GetByIDs(ctx context.Context, classIDs []string) (map[string]*domain.ClassRecord, error) {
	result := make(map[string]*domain.ClassRecord, len(classIDs))
	if len(classIDs) == 0 {
		return result, nil
	}

	query := `SELECT` + classColumns + `
		FROM classes
		WHERE class_id = ANY($1)`

	var recs []domain.ClassRecord
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &recs, query, pq.Array(classIDs))
	if err != nil {
		return nil, err
	}

	for i := range recs {
		result[recs[i].ClassID] = &recs[i]
	}
	return result, nil
}

func (s *ClassStore) Insert(ctx context.Context, rec *domain.ClassRecord) error {
	query := `
		INSERT INTO classes (` + classColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
		        $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.ClassID,
		rec.Source,
		rec.ClassName,
		rec.Instructor,
		rec.Location,
		rec.StartTS,
		rec.EndTS,
		rec.Capacity,
		rec.SpotsBooked,
		rec.Status,
		rec.URL,
		rec.FirstSeenAt,
		rec.LastUpdatedAt,
		rec.LastScrapedAt,
		rec.IsCancelled,
		rec.IsPast,
		rec.SourceRunID,
		rec.SourceSnapshotID,
		rec.Raw,
	)
	return err
}

// Update refreshes all business fields and merge metadata. first_seen_at is
// deliberately untouched.
func (s *ClassStore) Update(ctx context.Context, rec *domain.ClassRecord) error {
	query := `
		UPDATE classes SET
			class_name = $2,
			instructor = $3,
			location = $4,
			start_ts = $5,
			end_ts = $6,
			capacity = $7,
			spots_booked = $8,
			status = $9,
			url = $10,
			last_updated_at = $11,
			last_scraped_at = $12,
			is_cancelled = $13,
			is_past = $14,
			source_run_id = $15,
			source_snapshot_id = $16,
			raw = $17
		WHERE class_id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.ClassID,
		rec.ClassName,
		rec.Instructor,
		rec.Location,
		rec.StartTS,
		rec.EndTS,
		rec.Capacity,
		rec.SpotsBooked,
		rec.Status,
		rec.URL,
		rec.LastUpdatedAt,
		rec.LastScrapedAt,
		rec.IsCancelled,
		rec.IsPast,
		rec.SourceRunID,
		rec.SourceSnapshotID,
		rec.Raw,
	)
	return err
}

func (s *ClassStore) TouchScraped(ctx context.Context, classID string, scrapedAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE classes SET last_scraped_at = $2 WHERE class_id = $1`,
		classID, scrapedAt,
	)
	return err
}

func (s *ClassStore) MarkCancelledMissing(ctx context.Context, source string, seen []string, now time.Time) ([]domain.ClassRecord, error) {
	query := `
		UPDATE classes SET
			is_cancelled = TRUE,
			last_updated_at = $3
		WHERE source = $1
		  AND is_cancelled = FALSE
		  AND start_ts > $3
		  AND NOT (class_id = ANY($2))
		RETURNING` + classColumns

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, source, pq.Array(seen), now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []domain.ClassRecord
	for rows.Next() {
		var rec domain.ClassRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		cancelled = append(cancelled, rec)
	}
	return cancelled, rows.Err()
}
