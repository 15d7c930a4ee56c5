package domain

import "time"

type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// MergeRun is one ledger entry per merge invocation. Entries are never
// deleted; a crashed invocation leaves its entry in "running" and the next
// invocation simply re-selects from the last successful watermark.
type MergeRun struct {
	ID          int64      `db:"id"`
	RunID       string     `db:"run_id"`
	Source      string     `db:"source"`
	StartedAt   time.Time  `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	Status      RunStatus  `db:"status"`
	Processed   int        `db:"records_processed"`
	Inserted    int        `db:"records_inserted"`
	Updated     int        `db:"records_updated"`
	Cancelled   int        `db:"records_cancelled"`
	// Watermark is the max scraped_at this run processed. The change tracker
	// reads the max watermark over successful runs; nil means the run had
	// nothing new and the previous watermark stands.
	Watermark    *time.Time `db:"watermark"`
	ErrorMessage *string    `db:"error_message"`
}

// MergeStats summarizes one merge invocation for logging and callers.
type MergeStats struct {
	Source    string
	RunID     string
	Processed int
	Inserted  int
	Updated   int
	Unchanged int
	Cancelled int
	Anomalies int
	Published int
	Duration  time.Duration
}
