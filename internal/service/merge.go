package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"schedule_merger/internal/config"
	"schedule_merger/internal/domain"
	"schedule_merger/internal/enrich"
	"schedule_merger/internal/identity"
)

// Change-feed actions published for canonical record transitions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionCancel = "cancel"
)

// ErrOutOfOrder reports an observation batch that regressed in scrape time
// for a single class. Applying it would risk an older observation
// overwriting newer state, so the run fails instead.
var ErrOutOfOrder = errors.New("observations out of order for class")

// MergeService reconciles new observations of one source into the canonical
// class table. A single invocation is one ledger run: begin the run, merge
// and sweep inside one transaction, finalize the run in that same
// transaction, then publish change events. Every write path is idempotent,
// so a failed or crashed run is safe to retry wholesale.
type MergeService struct {
	source       string
	observations ObservationStore
	classes      ClassStore
	runs         RunStore
	txManager    TransactionManager
	publisher    Publisher
	logger       *slog.Logger
	config       config.MergeConfig
}

func NewMergeService(
	source string,
	observations ObservationStore,
	classes ClassStore,
	runs RunStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.MergeConfig,
) *MergeService {
	return &MergeService{
		source:       source,
		observations: observations,
		classes:      classes,
		runs:         runs,
		txManager:    txManager,
		publisher:    publisher,
		logger:       logger.With("source", source),
		config:       cfg,
	}
}

func (s *MergeService) Source() string {
	return s.source
}

// Merge runs one incremental merge from the last successful watermark. A
// source with no successful run yet is bounded by the configured initial
// lookback rather than scanning all history.
func (s *MergeService) Merge(ctx context.Context) (*domain.MergeStats, error) {
	watermark, err := s.runs.LastWatermark(ctx, s.source)
	if err != nil {
		return nil, fmt.Errorf("read watermark: %w", err)
	}
	if watermark.IsZero() {
		watermark = time.Now().Add(-s.config.InitialLookback)
	}
	return s.run(ctx, watermark)
}

// Rebuild replays every historical observation of the source through the
// same merge logic. Intended as a one-time operation after a key-derivation
// change or to repopulate an empty canonical table.
func (s *MergeService) Rebuild(ctx context.Context) (*domain.MergeStats, error) {
	return s.run(ctx, time.Time{})
}

type changeEvent struct {
	rec    domain.ClassRecord
	action string
}

func (s *MergeService) run(ctx context.Context, since time.Time) (*domain.MergeStats, error) {
	startTime := time.Now()

	run := &domain.MergeRun{
		RunID:     newRunID(s.source, startTime),
		Source:    s.source,
		StartedAt: startTime.UTC(),
		Status:    domain.RunStatusRunning,
	}
	if err := s.runs.Begin(ctx, run); err != nil {
		return nil, fmt.Errorf("begin run: %w", err)
	}

	s.logger.Info("starting merge", "run_id", run.RunID, "since", since)

	stats, events, err := s.merge(ctx, run, since)
	if err != nil {
		if failErr := s.runs.Fail(ctx, run.RunID, err.Error()); failErr != nil {
			s.logger.Error("failed to mark run failed", "run_id", run.RunID, "error", failErr)
		}
		return nil, err
	}

	s.publish(ctx, events, stats)

	stats.Duration = time.Since(startTime)

	s.logger.Info("merge completed",
		"run_id", run.RunID,
		"processed", stats.Processed,
		"inserted", stats.Inserted,
		"updated", stats.Updated,
		"unchanged", stats.Unchanged,
		"cancelled", stats.Cancelled,
		"anomalies", stats.Anomalies,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *MergeService) merge(ctx context.Context, run *domain.MergeRun, since time.Time) (*domain.MergeStats, []changeEvent, error) {
	obs, err := s.observations.ListSince(ctx, s.source, since)
	if err != nil {
		return nil, nil, fmt.Errorf("list observations: %w", err)
	}

	stats := &domain.MergeStats{Source: s.source, RunID: run.RunID}

	if len(obs) == 0 {
		// Nothing new. Finalize the run so the ledger never shows a healthy
		// invocation as running; a nil watermark keeps the previous one.
		run.Status = domain.RunStatusSuccess
		if err := s.runs.Complete(ctx, run); err != nil {
			return nil, nil, fmt.Errorf("complete run: %w", err)
		}
		return stats, nil, nil
	}

	var events []changeEvent
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		events, txErr = s.applyBatch(txCtx, obs, stats)
		if txErr != nil {
			return txErr
		}

		watermark := maxScrapedAt(obs)
		run.Status = domain.RunStatusSuccess
		run.Processed = stats.Processed
		run.Inserted = stats.Inserted
		run.Updated = stats.Updated
		run.Cancelled = stats.Cancelled
		run.Watermark = &watermark

		// Completion rides the merge transaction: success is never visible
		// without its writes, and vice versa.
		return s.runs.Complete(txCtx, run)
	})
	if err != nil {
		return nil, nil, err
	}

	return stats, events, nil
}

func (s *MergeService) applyBatch(ctx context.Context, obs []domain.Observation, stats *domain.MergeStats) ([]changeEvent, error) {
	keys := make([]string, len(obs))
	keySet := make(map[string]struct{}, len(obs))
	unique := make([]string, 0, len(obs))
	for i := range obs {
		// Backfill missing schedule columns from the raw payload first:
		// freezing and the cancellation sweep both need start_ts.
		enrich.Observation(&obs[i])
		keys[i] = identity.ClassID(&obs[i])
		if _, ok := keySet[keys[i]]; !ok {
			keySet[keys[i]] = struct{}{}
			unique = append(unique, keys[i])
		}
	}

	recs, err := s.classes.GetByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("load canonical records: %w", err)
	}

	now := time.Now().UTC()
	lastApplied := make(map[string]time.Time, len(unique))
	var events []changeEvent

	for i := range obs {
		o := &obs[i]
		key := keys[i]

		if prev, ok := lastApplied[key]; ok && o.ScrapedAt.Before(prev) {
			return nil, fmt.Errorf("%w %s: %s before %s",
				ErrOutOfOrder, key,
				o.ScrapedAt.Format(time.RFC3339), prev.Format(time.RFC3339))
		}
		lastApplied[key] = o.ScrapedAt
		stats.Processed++

		rec := recs[key]
		switch {
		case rec == nil:
			rec = domain.NewClassRecord(key, o, now)
			if err := s.classes.Insert(ctx, rec); err != nil {
				return nil, fmt.Errorf("insert class %s: %w", key, err)
			}
			recs[key] = rec
			stats.Inserted++
			events = append(events, changeEvent{rec: *rec, action: ActionCreate})

		case rec.Frozen(now):
			// The class already started: business fields are immutable.
			// Divergent data is an upstream quality problem, not ours to fix.
			if !rec.Matches(o) {
				s.logger.Warn("past class observed with divergent data",
					"class_id", key, "snapshot_id", o.ID)
				stats.Anomalies++
			}
			if rec.IsCancelled {
				s.logger.Warn("cancelled past class reappeared",
					"class_id", key, "snapshot_id", o.ID)
				stats.Anomalies++
			}
			if o.ScrapedAt.After(rec.LastScrapedAt) {
				if err := s.classes.TouchScraped(ctx, key, o.ScrapedAt); err != nil {
					return nil, fmt.Errorf("touch class %s: %w", key, err)
				}
				rec.LastScrapedAt = o.ScrapedAt
			}
			stats.Unchanged++

		default:
			changed := !rec.Matches(o)
			reappeared := rec.IsCancelled
			if changed || reappeared {
				if reappeared {
					s.logger.Info("cancelled class reappeared", "class_id", key)
				}
				rec.Refresh(o, now)
				if err := s.classes.Update(ctx, rec); err != nil {
					return nil, fmt.Errorf("update class %s: %w", key, err)
				}
				stats.Updated++
				events = append(events, changeEvent{rec: *rec, action: ActionUpdate})
			} else {
				if o.ScrapedAt.After(rec.LastScrapedAt) {
					if err := s.classes.TouchScraped(ctx, key, o.ScrapedAt); err != nil {
						return nil, fmt.Errorf("touch class %s: %w", key, err)
					}
					rec.LastScrapedAt = o.ScrapedAt
				}
				stats.Unchanged++
			}
		}
	}

	// A future class absent from a batch that did observe its source has
	// been pulled from the schedule. Flag it, never delete it.
	cancelled, err := s.classes.MarkCancelledMissing(ctx, s.source, unique, now)
	if err != nil {
		return nil, fmt.Errorf("sweep cancellations: %w", err)
	}
	stats.Cancelled = len(cancelled)
	for i := range cancelled {
		events = append(events, changeEvent{rec: cancelled[i], action: ActionCancel})
	}

	return events, nil
}

// publish emits change events after the run transaction has committed.
// Publish failures are counted and logged, never fatal: the canonical table
// is the source of truth, the feed is best-effort.
func (s *MergeService) publish(ctx context.Context, events []changeEvent, stats *domain.MergeStats) {
	if s.publisher == nil {
		return
	}
	for i := range events {
		if err := s.publisher.Publish(ctx, &events[i].rec, events[i].action); err != nil {
			s.logger.Error("publish class event",
				"class_id", events[i].rec.ClassID,
				"action", events[i].action,
				"error", err,
			)
			continue
		}
		stats.Published++
	}
}

func maxScrapedAt(obs []domain.Observation) time.Time {
	max := obs[0].ScrapedAt
	for i := range obs[1:] {
		if obs[i+1].ScrapedAt.After(max) {
			max = obs[i+1].ScrapedAt
		}
	}
	return max
}

func newRunID(source string, t time.Time) string {
	return fmt.Sprintf("merge_%s_%s", source, t.UTC().Format("20060102_150405"))
}
