package scheduler

import (
	"context"
	"log/slog"
	"time"

	"schedule_merger/internal/domain"
)

// Merger defines the interface for per-source merge operations.
type Merger interface {
	Source() string
	Merge(ctx context.Context) (*domain.MergeStats, error)
}

// Scheduler runs all mergers sequentially on a fixed interval. Sequential on
// purpose: the merge engine assumes a single writer.
type Scheduler struct {
	mergers  []Merger
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(mergers []Merger, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		mergers:  mergers,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "sources", len(s.mergers))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, m := range s.mergers {
		if ctx.Err() != nil {
			return
		}

		mergeCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		if _, err := m.Merge(mergeCtx); err != nil {
			s.logger.Error("merge failed", "source", m.Source(), "error", err)
		}
		cancel()
	}
}
