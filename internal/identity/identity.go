// Package identity derives the stable class ID that ties repeated
// observations of the same real-world class together.
//
// The derivation is part of the storage contract: changing a source's field
// list invalidates every historically written class_id and requires a full
// rebuild. Treat any edit here as a breaking schema change.
package identity

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"schedule_merger/internal/domain"
)

// keySpec names the raw fields that identify a class for one source.
type keySpec struct {
	fields []string
}

// Per-source key fields. Sources expose wildly different raw shapes, so each
// gets its own combination; unknown sources fall back to a generic spec so an
// observation is never dropped for lack of a key.
var specs = map[string]keySpec{
	"coolcharm":   {fields: []string{"date", "time", "class_name", "location"}},
	"koepel":      {fields: []string{"date", "time", "instructor", "description"}},
	"rite":        {fields: []string{"name", "date", "hour", "address", "instructor"}},
	"rowreformer": {fields: []string{"week_day", "details"}},
}

var fallbackSpec = keySpec{fields: []string{"class_name", "start_ts", "location"}}

// missingValue substitutes for any absent key field so incomplete
// observations still resolve deterministically.
const missingValue = "unknown"

// ClassID derives the canonical identity key for an observation. Pure and
// stable: the same observation always yields the same key, across restarts
// and across the dataset's lifetime.
func ClassID(o *domain.Observation) string {
	spec, ok := specs[o.Source]
	if !ok {
		spec = fallbackSpec
	}

	var raw map[string]any
	if len(o.Raw) > 0 {
		// Malformed raw payloads fall through to the column values.
		_ = json.Unmarshal(o.Raw, &raw)
	}

	values := make([]string, 0, len(spec.fields))
	for _, field := range spec.fields {
		values = append(values, fieldValue(o, raw, field))
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(values, "|")))
	return fmt.Sprintf("%s:%012d", o.Source, h.Sum64()%1_000_000_000_000)
}

func fieldValue(o *domain.Observation, raw map[string]any, field string) string {
	if v, ok := raw[field]; ok && v != nil {
		return normalize(stringify(v))
	}
	if v := columnValue(o, field); v != "" {
		return normalize(v)
	}
	return missingValue
}

// columnValue maps key fields onto the structured observation columns for
// observations whose raw payload lacks them.
func columnValue(o *domain.Observation, field string) string {
	switch field {
	case "class_name", "name":
		return deref(o.ClassName)
	case "instructor":
		return deref(o.Instructor)
	case "location", "address":
		return deref(o.Location)
	case "status":
		return deref(o.Status)
	case "start_ts":
		if o.StartTS != nil {
			return o.StartTS.UTC().Format(time.RFC3339)
		}
	}
	return ""
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	// Lists and nested objects (e.g. rowreformer "details") print
	// deterministically for decoded JSON values.
	return fmt.Sprintf("%v", v)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return missingValue
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
