package preset

import (
	"testing"

	"github.com/emersion/go-ical"
	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdayPresetMatchesKnownMonday(t *testing.T) {
	env := environment.FromExact(ir.ExactDateTimeFromYMDHMS(2023, 4, 4, 0, 0, 0))
	Insert(env)

	data, ok := env.Get("monday")
	require.True(t, ok)
	filt, ok := data.Value.DateFilter.(ir.DynFilter[ir.Date])
	require.True(t, ok)

	assert.True(t, filt.Check(ir.DateFromYMD(2023, 4, 3), env))
	assert.False(t, filt.Check(ir.DateFromYMD(2023, 4, 4), env))
}

func TestWorkdayAndWeekendAreComplementary(t *testing.T) {
	env := environment.FromExact(ir.ExactDateTimeFromYMDHMS(2023, 4, 1, 0, 0, 0))
	Insert(env)

	workday, _ := env.Get("workday")
	weekend, _ := env.Get("weekend")

	sat := ir.DateFromYMD(2023, 4, 1)
	assert.False(t, workday.Value.DateFilter.Check(sat, env))
	assert.True(t, weekend.Value.DateFilter.Check(sat, env))
}

func TestSetCommandRuns(t *testing.T) {
	env := environment.FromExact(ir.ExactDateTimeFromYMDHMS(2023, 4, 1, 0, 0, 0))
	Insert(env)

	setData, ok := env.Get("set")
	require.True(t, ok)
	_, err := setData.Command.Run(env, &ir.CommandCall{
		Command: "set",
		Args:    []ir.Value{ir.ValueIdent("x"), ir.ValueNum(ir.Number(5))},
	})
	require.NoError(t, err)
}

func TestTimezoneCommandParsesOffset(t *testing.T) {
	env := environment.FromExact(ir.ExactDateTimeFromYMDHMS(2023, 4, 1, 0, 0, 0))
	Insert(env)

	tzData, ok := env.Get("tz")
	require.True(t, ok)
	actions, err := tzData.Command.Run(env, &ir.CommandCall{Command: "tz", Plain: "pdt"})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	require.NotNil(t, actions[0].SetTZ)
}

type fakeFetcher struct{}

func (fakeFetcher) FetchHolidays(string) (*ical.Calendar, error) { return ical.NewCalendar(), nil }
func (fakeFetcher) FetchWorkdays(string) ([]ir.ExactDate, error) {
	return []ir.ExactDate{{Year: 2023, Month: 4, Day: 3}}, nil
}
func (fakeFetcher) FetchICS(string) (*ical.Calendar, error) { return ical.NewCalendar(), nil }

func TestRegionCommandBindsWorkdayAndWeekend(t *testing.T) {
	env := environment.FromExact(ir.ExactDateTimeFromYMDHMS(2023, 4, 1, 0, 0, 0))
	InsertWithFetcher(env, fakeFetcher{})

	regionData, ok := env.Get("region")
	require.True(t, ok)
	_, err := regionData.Command.Run(env, &ir.CommandCall{
		Command: "region",
		Args:    []ir.Value{ir.ValueIdent("us")},
	})
	require.NoError(t, err)

	weekend, ok := env.Get("usweekend")
	require.True(t, ok)
	assert.True(t, weekend.Value.DateFilter.Check(ir.DateFromYMD(2023, 4, 3), env))

	workday, ok := env.Get("usworkday")
	require.True(t, ok)
	assert.False(t, workday.Value.DateFilter.Check(ir.DateFromYMD(2023, 4, 3), env))
}
