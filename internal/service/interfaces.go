package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"schedule_merger/internal/domain"
)

// ObservationStore reads the append-only scrape snapshots. The merger never
// writes to it.
type ObservationStore interface {
	// ListSince returns all observations for a source scraped strictly after
	// the given time, ordered by (scraped_at, id) ascending.
	ListSince(ctx context.Context, source string, since time.Time) ([]domain.Observation, error)
}

type ClassStore interface {
	GetByIDs(ctx context.Context, classIDs []string) (map[string]*domain.ClassRecord, error)
	Insert(ctx context.Context, rec *domain.ClassRecord) error
	Update(ctx context.Context, rec *domain.ClassRecord) error
	TouchScraped(ctx context.Context, classID string, scrapedAt time.Time) error
	// MarkCancelledMissing flags every non-cancelled future class of the
	// source whose class_id is not in seen, and returns the flagged records.
	MarkCancelledMissing(ctx context.Context, source string, seen []string, now time.Time) ([]domain.ClassRecord, error)
}

type RunStore interface {
	Begin(ctx context.Context, run *domain.MergeRun) error
	Complete(ctx context.Context, run *domain.MergeRun) error
	Fail(ctx context.Context, runID string, errMsg string) error
	// LastWatermark returns the max watermark over successful runs for the
	// source, or the zero time if none exists.
	LastWatermark(ctx context.Context, source string) (time.Time, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, rec *domain.ClassRecord, action string) error
	Close() error
}
