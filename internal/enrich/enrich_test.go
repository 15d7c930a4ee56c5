package enrich

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule_merger/internal/domain"
	"schedule_merger/testdata/utils"
)

func observation(source, raw string) domain.Observation {
	return domain.Observation{
		Source:    source,
		ScrapedAt: time.Date(2025, 5, 16, 8, 0, 0, 0, time.UTC),
		Raw:       types.JSONText(raw),
	}
}

func TestObservation_CoolcharmNumericDate(t *testing.T) {
	o := observation("coolcharm", `{"date":"01/09/2025","time":"10:00 - 10:50","class_name":"Cycle","availability":"4 / 12"}`)

	Observation(&o)

	require.NotNil(t, o.StartTS)
	require.NotNil(t, o.EndTS)
	assert.Equal(t, time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), *o.StartTS)
	assert.Equal(t, time.Date(2025, 9, 1, 10, 50, 0, 0, time.UTC), *o.EndTS)
	require.NotNil(t, o.SpotsBooked)
	require.NotNil(t, o.Capacity)
	assert.Equal(t, 4, *o.SpotsBooked)
	assert.Equal(t, 12, *o.Capacity)
}

func TestObservation_CoolcharmSpelledDateUsesScrapeYear(t *testing.T) {
	o := observation("coolcharm", `{"date":"SATURDAY 21 JUNE","time":"09:00 - 09:50"}`)

	Observation(&o)

	require.NotNil(t, o.StartTS)
	assert.Equal(t, time.Date(2025, 6, 21, 9, 0, 0, 0, time.UTC), *o.StartTS)
}

func TestObservation_KoepelDutchDate(t *testing.T) {
	o := observation("koepel", `{"date":"zaterdag 17 mei","time":"11:00 - 11:45","capacity":"3 / 4"}`)

	Observation(&o)

	require.NotNil(t, o.StartTS)
	require.NotNil(t, o.EndTS)
	assert.Equal(t, time.Date(2025, 5, 17, 11, 0, 0, 0, time.UTC), *o.StartTS)
	assert.Equal(t, time.Date(2025, 5, 17, 11, 45, 0, 0, time.UTC), *o.EndTS)
	assert.Equal(t, 3, *o.SpotsBooked)
	assert.Equal(t, 4, *o.Capacity)
}

func TestObservation_RowreformerTwelveHourClock(t *testing.T) {
	o := observation("rowreformer", `{"date":"18/05/2025","details":["REFORM","9:00 AM","Anna","Ghent","open","8/10"]}`)

	Observation(&o)

	require.NotNil(t, o.StartTS)
	require.NotNil(t, o.EndTS)
	assert.Equal(t, time.Date(2025, 5, 18, 9, 0, 0, 0, time.UTC), *o.StartTS)
	assert.Equal(t, o.StartTS.Add(50*time.Minute), *o.EndTS)
	assert.Equal(t, 8, *o.SpotsBooked)
	assert.Equal(t, 10, *o.Capacity)
}

func TestObservation_RowreformerTwentyFourHourClock(t *testing.T) {
	o := observation("rowreformer", `{"date":"18/05/2025","details":["REFORM","13:00"]}`)

	Observation(&o)

	require.NotNil(t, o.StartTS)
	assert.Equal(t, time.Date(2025, 5, 18, 13, 0, 0, 0, time.UTC), *o.StartTS)
	assert.Nil(t, o.Capacity)
}

func TestObservation_KeepsExistingColumns(t *testing.T) {
	start := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	o := observation("koepel", `{"date":"zaterdag 17 mei","time":"11:00 - 11:45","capacity":"3 / 4"}`)
	o.StartTS = utils.Ptr(start)
	o.Capacity = utils.Ptr(20)
	o.SpotsBooked = utils.Ptr(19)

	Observation(&o)

	assert.Equal(t, start, *o.StartTS)
	assert.Equal(t, 20, *o.Capacity)
	assert.Equal(t, 19, *o.SpotsBooked)
}

func TestObservation_UnparseablePayloadIsUntouched(t *testing.T) {
	cases := map[string]domain.Observation{
		"invalid json":    observation("koepel", `{"date":`),
		"empty payload":   observation("koepel", ``),
		"missing fields":  observation("koepel", `{"description":"Reformer"}`),
		"bad date":        observation("koepel", `{"date":"onbekend","time":"11:00 - 11:45"}`),
		"bad time range":  observation("coolcharm", `{"date":"01/09/2025","time":"later"}`),
		"bad bookings":    observation("coolcharm", `{"availability":"vol"}`),
		"unknown source":  observation("newstudio", `{"date":"01/09/2025","time":"10:00 - 10:50"}`),
		"partial details": observation("rowreformer", `{"date":"18/05/2025","details":["REFORM"]}`),
	}

	for name, o := range cases {
		Observation(&o)

		assert.Nil(t, o.StartTS, name)
		assert.Nil(t, o.EndTS, name)
		assert.Nil(t, o.Capacity, name)
		assert.Nil(t, o.SpotsBooked, name)
	}
}
