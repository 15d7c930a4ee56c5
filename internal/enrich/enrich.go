// Package enrich backfills schedule columns the scrapers could not extract
// structurally, by parsing each source's raw payload. Bronze rows regularly
// arrive with start_ts, capacity or spots_booked NULL while the raw JSON
// still carries the data in source-specific shapes; without the backfill
// those rows could never freeze or be swept, because both hinge on start_ts.
package enrich

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"schedule_merger/internal/domain"
)

// rowreformer lists no end times; classes there run 50 minutes.
const rowreformerDuration = 50 * time.Minute

var dayMonthPattern = regexp.MustCompile(`(\d{1,2})\s+(\p{L}+)`)

var englishMonths = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var dutchMonths = map[string]time.Month{
	"januari": time.January, "februari": time.February, "maart": time.March,
	"april": time.April, "mei": time.May, "juni": time.June,
	"juli": time.July, "augustus": time.August, "september": time.September,
	"oktober": time.October, "november": time.November, "december": time.December,
}

// Observation fills start_ts, end_ts, capacity and spots_booked from the raw
// payload when the structured columns are missing. Columns that are already
// set are never overwritten, and unparseable payloads leave the observation
// untouched.
func Observation(o *domain.Observation) {
	if len(o.Raw) == 0 {
		return
	}
	var raw map[string]any
	if err := json.Unmarshal(o.Raw, &raw); err != nil {
		return
	}

	switch o.Source {
	case "coolcharm":
		coolcharm(o, raw)
	case "rowreformer":
		rowreformer(o, raw)
	case "koepel":
		koepel(o, raw)
	}
}

// coolcharm: {"date":"01/09/2025" or "SATURDAY 21 JUNE","time":"10:00 - 10:50","availability":"4 / 5",...}
func coolcharm(o *domain.Observation, raw map[string]any) {
	if o.StartTS == nil {
		if day, ok := parseDay(str(raw["date"]), englishMonths, o.ScrapedAt); ok {
			applyTimeRange(o, day, str(raw["time"]))
		}
	}
	setBookings(o, str(raw["availability"]))
}

// rowreformer: {"date":"18/05/2025","details":["REFORM","9:00 AM" or "13:00",...,"8/10",...],...}
func rowreformer(o *domain.Observation, raw map[string]any) {
	details, _ := raw["details"].([]any)

	if o.StartTS == nil && len(details) > 1 {
		if day, ok := parseDay(str(raw["date"]), englishMonths, o.ScrapedAt); ok {
			if clock, ok := parseClock(str(details[1])); ok {
				start := day.Add(clock)
				end := start.Add(rowreformerDuration)
				o.StartTS, o.EndTS = &start, &end
			}
		}
	}
	if len(details) > 5 {
		setBookings(o, str(details[5]))
	}
}

// koepel: {"date":"zaterdag 17 mei","time":"11:00 - 11:45","capacity":"3 / 4",...}
func koepel(o *domain.Observation, raw map[string]any) {
	if o.StartTS == nil {
		if day, ok := parseDay(str(raw["date"]), dutchMonths, o.ScrapedAt); ok {
			applyTimeRange(o, day, str(raw["time"]))
		}
	}
	setBookings(o, str(raw["capacity"]))
}

// parseDay handles the numeric DD/MM/YYYY form and the spelled-out
// "SATURDAY 21 JUNE" / "zaterdag 17 mei" form. Spelled-out dates carry no
// year; schedules are scraped close to the class, so the scrape year
// applies.
func parseDay(s string, months map[string]time.Month, scrapedAt time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if day, err := time.ParseInLocation("02/01/2006", s, time.UTC); err == nil {
		return day, true
	}

	m := dayMonthPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := months[strings.ToLower(m[2])]
	if !ok {
		return time.Time{}, false
	}
	return time.Date(scrapedAt.UTC().Year(), month, day, 0, 0, 0, 0, time.UTC), true
}

// applyTimeRange parses "11:00 - 11:45" onto the given day.
func applyTimeRange(o *domain.Observation, day time.Time, rng string) {
	parts := strings.Split(rng, " - ")
	if len(parts) != 2 {
		return
	}
	startClock, ok := parseClock(parts[0])
	if !ok {
		return
	}
	endClock, ok := parseClock(parts[1])
	if !ok {
		return
	}
	start := day.Add(startClock)
	end := day.Add(endClock)
	o.StartTS, o.EndTS = &start, &end
}

// parseClock accepts both 24-hour ("13:00") and 12-hour ("9:00 AM") forms.
func parseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "3:04 PM"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
		}
	}
	return 0, false
}

// setBookings splits "4 / 5" or "8/10" into booked count and capacity. The
// first number is bookings, not free spots; see domain.Observation.
func setBookings(o *domain.Observation, s string) {
	if o.Capacity != nil && o.SpotsBooked != nil {
		return
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return
	}
	booked, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return
	}
	capacity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return
	}
	if o.SpotsBooked == nil {
		o.SpotsBooked = &booked
	}
	if o.Capacity == nil {
		o.Capacity = &capacity
	}
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
