package domain

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Observation is one raw scrape result for one class at one point in time.
// Rows are append-only and owned by the upstream scrapers; the merger only
// reads them.
//
// SpotsBooked carries what the booking sites label "spots available" — in
// every source it actually counts bookings, not remaining capacity. The
// misleading upstream name stops at this boundary.
type Observation struct {
	ID          int64          `db:"id"`
	RunID       string         `db:"run_id"`
	Source      string         `db:"source"`
	ClassName   *string        `db:"class_name"`
	Instructor  *string        `db:"instructor"`
	Location    *string        `db:"location"`
	StartTS     *time.Time     `db:"start_ts"`
	EndTS       *time.Time     `db:"end_ts"`
	Capacity    *int           `db:"capacity"`
	SpotsBooked *int           `db:"spots_booked"`
	Status      *string        `db:"status"`
	URL         *string        `db:"url"`
	ScrapedAt   time.Time      `db:"scraped_at"`
	Raw         types.JSONText `db:"raw"`
}

// ClassRecord is the canonical, deduplicated row for one real-world class.
// Exactly one record exists per ClassID. Once the class has started its
// business fields are frozen; only LastScrapedAt and IsCancelled may still
// move.
type ClassRecord struct {
	ClassID     string     `db:"class_id"`
	Source      string     `db:"source"`
	ClassName   *string    `db:"class_name"`
	Instructor  *string    `db:"instructor"`
	Location    *string    `db:"location"`
	StartTS     *time.Time `db:"start_ts"`
	EndTS       *time.Time `db:"end_ts"`
	Capacity    *int       `db:"capacity"`
	SpotsBooked *int       `db:"spots_booked"`
	Status      *string    `db:"status"`
	URL         *string    `db:"url"`

	FirstSeenAt   time.Time `db:"first_seen_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastScrapedAt time.Time `db:"last_scraped_at"`
	IsCancelled   bool      `db:"is_cancelled"`
	IsPast        bool      `db:"is_past"`

	SourceRunID      *string        `db:"source_run_id"`
	SourceSnapshotID *int64         `db:"source_snapshot_id"`
	Raw              types.JSONText `db:"raw"`
}

// NewClassRecord builds the canonical record for a first-ever observation of
// a class. First-seen, last-updated and last-scraped all start at the
// observation time.
func NewClassRecord(classID string, o *Observation, now time.Time) *ClassRecord {
	rec := &ClassRecord{
		ClassID:          classID,
		Source:           o.Source,
		ClassName:        o.ClassName,
		Instructor:       o.Instructor,
		Location:         o.Location,
		StartTS:          o.StartTS,
		EndTS:            o.EndTS,
		Capacity:         o.Capacity,
		SpotsBooked:      o.SpotsBooked,
		Status:           o.Status,
		URL:              o.URL,
		FirstSeenAt:      o.ScrapedAt,
		LastUpdatedAt:    o.ScrapedAt,
		LastScrapedAt:    o.ScrapedAt,
		SourceRunID:      &o.RunID,
		SourceSnapshotID: &o.ID,
		Raw:              o.Raw,
	}
	rec.IsPast = startedBefore(o.StartTS, now)
	return rec
}

// Frozen reports whether the record's business fields are immutable: either
// it was already flagged past, or its start time has since elapsed.
func (r *ClassRecord) Frozen(now time.Time) bool {
	return r.IsPast || startedBefore(r.StartTS, now)
}

// Matches reports whether the observation carries the same business field
// values as the stored record. Used to keep re-applied observations
// write-free.
func (r *ClassRecord) Matches(o *Observation) bool {
	return strPtrEqual(r.ClassName, o.ClassName) &&
		strPtrEqual(r.Instructor, o.Instructor) &&
		strPtrEqual(r.Location, o.Location) &&
		timePtrEqual(r.StartTS, o.StartTS) &&
		timePtrEqual(r.EndTS, o.EndTS) &&
		intPtrEqual(r.Capacity, o.Capacity) &&
		intPtrEqual(r.SpotsBooked, o.SpotsBooked) &&
		strPtrEqual(r.Status, o.Status) &&
		strPtrEqual(r.URL, o.URL)
}

// Refresh overwrites the business fields with the observation's values,
// recomputes IsPast and clears IsCancelled. LastUpdatedAt is set to the
// observation time; the caller decides when a refresh is warranted.
func (r *ClassRecord) Refresh(o *Observation, now time.Time) {
	r.ClassName = o.ClassName
	r.Instructor = o.Instructor
	r.Location = o.Location
	r.StartTS = o.StartTS
	r.EndTS = o.EndTS
	r.Capacity = o.Capacity
	r.SpotsBooked = o.SpotsBooked
	r.Status = o.Status
	r.URL = o.URL
	r.IsPast = startedBefore(o.StartTS, now)
	r.IsCancelled = false
	r.LastUpdatedAt = o.ScrapedAt
	r.LastScrapedAt = o.ScrapedAt
	r.SourceRunID = &o.RunID
	r.SourceSnapshotID = &o.ID
	r.Raw = o.Raw
}

func startedBefore(start *time.Time, now time.Time) bool {
	return start != nil && start.Before(now)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
