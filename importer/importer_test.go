package importer

import (
	"testing"

	"github.com/jettchent/timeblok-go/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//Test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:1@example.com\r\n" +
	"DTSTAMP:20230101T000000Z\r\n" +
	"SUMMARY:Standup\r\n" +
	"DTSTART:20230404T100000Z\r\n" +
	"DTEND:20230404T103000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VTODO\r\n" +
	"UID:2@example.com\r\n" +
	"DTSTAMP:20230101T000000Z\r\n" +
	"SUMMARY:Buy milk\r\n" +
	"STATUS:NEEDS-ACTION\r\n" +
	"END:VTODO\r\n" +
	"END:VCALENDAR\r\n"

func TestDecodeAndToRecords(t *testing.T) {
	cal, err := Decode([]byte(sampleICS))
	require.NoError(t, err)

	records := ToRecords(cal)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Event)
	assert.Equal(t, "Standup", records[0].Event.Name)
	require.NotNil(t, records[0].Event.Range.TimeRange)

	require.NotNil(t, records[1].Todo)
	assert.Equal(t, "Buy milk", records[1].Todo.Name)
	assert.Equal(t, ir.TodoNeedsAction, records[1].Todo.Status)
}

func TestSetFilterFromICS(t *testing.T) {
	cal, err := Decode([]byte(sampleICS))
	require.NoError(t, err)
	filt := FromICS(cal)

	fake := &fakeEnv{dt: ir.ExactDateTimeFromYMDHMS(2023, 4, 4, 0, 0, 0)}
	assert.True(t, filt.Check(ir.DateFromYMD(2023, 4, 4), fake))
	assert.False(t, filt.Check(ir.DateFromYMD(2023, 4, 5), fake))
}

type fakeEnv struct {
	dt ir.ExactDateTime
}

func (f *fakeEnv) DateTime() ir.ExactDateTime       { return f.dt }
func (f *fakeEnv) Current() ir.DateTime             { return ir.DateTime{} }
func (f *fakeEnv) Get(string) (ir.IdentData, bool)  { return ir.IdentData{}, false }
func (f *fakeEnv) Set(string, ir.IdentData)         {}
func (f *fakeEnv) Del(string)                       {}
func (f *fakeEnv) Iter() (ir.DateIter, error)        { return nil, nil }
