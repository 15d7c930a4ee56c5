package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"

	"schedule_merger/internal/domain"
	"schedule_merger/testdata/utils"
)

func koepelObservation(raw string) domain.Observation {
	return domain.Observation{
		Source:     "koepel",
		Instructor: utils.Ptr("Anna"),
		Raw:        types.JSONText(raw),
	}
}

func TestClassID_Deterministic(t *testing.T) {
	o := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00 - 11:45","instructor":"Anna","description":"Reformer"}`)

	assert.Equal(t, ClassID(&o), ClassID(&o))
}

func TestClassID_IgnoresNonIdentityFields(t *testing.T) {
	a := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00 - 11:45","instructor":"Anna","description":"Reformer","capacity":"3 / 4"}`)
	b := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00 - 11:45","instructor":"Anna","description":"Reformer","capacity":"4 / 4"}`)

	// Booking changes across scrapes must map to the same class.
	assert.Equal(t, ClassID(&a), ClassID(&b))
}

func TestClassID_DistinguishesSlots(t *testing.T) {
	a := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00 - 11:45","instructor":"Anna","description":"Reformer"}`)
	b := koepelObservation(`{"date":"zaterdag 17 mei","time":"12:00 - 12:45","instructor":"Anna","description":"Reformer"}`)

	assert.NotEqual(t, ClassID(&a), ClassID(&b))
}

func TestClassID_NormalizesCaseAndWhitespace(t *testing.T) {
	a := koepelObservation(`{"date":"Zaterdag 17 Mei","time":" 11:00 - 11:45 ","instructor":"ANNA","description":"Reformer"}`)
	b := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00 - 11:45","instructor":"anna","description":"reformer"}`)

	assert.Equal(t, ClassID(&a), ClassID(&b))
}

func TestClassID_SourcePrefixAndShape(t *testing.T) {
	o := koepelObservation(`{"date":"zaterdag 17 mei","time":"11:00"}`)

	key := ClassID(&o)
	assert.True(t, strings.HasPrefix(key, "koepel:"))
	assert.Len(t, key, len("koepel:")+12)
}

func TestClassID_MissingFieldsUseFallbackValue(t *testing.T) {
	// Empty raw payload: every key field degrades to the sentinel, the
	// observation still resolves.
	a := domain.Observation{Source: "koepel"}
	b := domain.Observation{Source: "koepel"}

	assert.Equal(t, ClassID(&a), ClassID(&b))
	assert.True(t, strings.HasPrefix(ClassID(&a), "koepel:"))
}

func TestClassID_FallsBackToColumns(t *testing.T) {
	// koepel keys on the raw instructor; without raw it comes from the column.
	a := domain.Observation{Source: "koepel", Instructor: utils.Ptr("Anna")}
	b := domain.Observation{Source: "koepel", Instructor: utils.Ptr("Bram")}

	assert.NotEqual(t, ClassID(&a), ClassID(&b))
}

func TestClassID_UnknownSourceUsesGenericSpec(t *testing.T) {
	start := time.Date(2025, 6, 21, 10, 0, 0, 0, time.UTC)
	a := domain.Observation{
		Source:    "newstudio",
		ClassName: utils.Ptr("HIIT"),
		StartTS:   utils.Ptr(start),
		Location:  utils.Ptr("Main Hall"),
	}
	b := a
	b.StartTS = utils.Ptr(start.Add(time.Hour))

	assert.True(t, strings.HasPrefix(ClassID(&a), "newstudio:"))
	assert.NotEqual(t, ClassID(&a), ClassID(&b))
}

func TestClassID_PerSourceFieldSelection(t *testing.T) {
	// coolcharm keys on date+time+class_name+location; instructor changes
	// must not split the class.
	a := domain.Observation{
		Source:     "coolcharm",
		Instructor: utils.Ptr("Anna"),
		Raw:        types.JSONText(`{"date":"01/09/2025","time":"10:00 - 10:50","class_name":"Cycle","location":"Antwerp"}`),
	}
	b := a
	b.Instructor = utils.Ptr("Bram")

	assert.Equal(t, ClassID(&a), ClassID(&b))
}
