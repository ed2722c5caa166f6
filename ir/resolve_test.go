package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnv is a minimal Env for testing resolve helpers in isolation,
// without pulling in the environment package (which depends on ir).
type fakeEnv struct {
	dt      ExactDateTime
	current DateTime
	ns      map[string]IdentData
}

func newFakeEnv(dt ExactDateTime) *fakeEnv {
	return &fakeEnv{dt: dt, ns: map[string]IdentData{}}
}

func (f *fakeEnv) DateTime() ExactDateTime { return f.dt }
func (f *fakeEnv) Current() DateTime       { return f.current }
func (f *fakeEnv) Get(name string) (IdentData, bool) {
	v, ok := f.ns[name]
	return v, ok
}
func (f *fakeEnv) Set(name string, data IdentData) { f.ns[name] = data }
func (f *fakeEnv) Del(name string)                 { delete(f.ns, name) }
func (f *fakeEnv) Iter() (DateIter, error)          { return nil, nil }

func TestResolveTimeAMPMBoundaries(t *testing.T) {
	env := newFakeEnv(ExactDateTimeFromYMDHMS(2023, 1, 1, 0, 0, 0))

	hour, err := ResolveTime(Time{Hour: Number(12), Tod: TodAM}, env)
	require.NoError(t, err)
	assert.Equal(t, 0, hour.Hour)

	hour, err = ResolveTime(Time{Hour: Number(12), Tod: TodPM}, env)
	require.NoError(t, err)
	assert.Equal(t, 12, hour.Hour)

	_, err = ResolveTime(Time{Hour: Number(13), Tod: TodAM}, env)
	assert.Error(t, err)

	_, err = ResolveTime(Time{Hour: Number(24)}, env)
	assert.Error(t, err)

	_, err = ResolveTime(Time{Minute: Number(60)}, env)
	assert.Error(t, err)
}

func TestResolveDateDefaults(t *testing.T) {
	env := newFakeEnv(ExactDateTimeFromYMDHMS(2023, 1, 1, 0, 0, 0))
	d, err := ResolveDate(Date{Year: Number(2024)}, env)
	require.NoError(t, err)
	assert.Equal(t, ExactDate{Year: 2024, Month: 1, Day: 1}, d)
}

func TestResolveRangeDurationDefaultsTo30Minutes(t *testing.T) {
	env := newFakeEnv(ExactDateTimeFromYMDHMS(2023, 4, 4, 10, 0, 0))
	dt := DateTime{}
	r, err := ResolveRange(RangeDuration(Duration{Start: dt, Duration: Unsure}), env)
	require.NoError(t, err)
	require.NotNil(t, r.TimeRange)
	start, _ := r.TimeRange.Start.ToTime()
	end, _ := r.TimeRange.End.ToTime()
	assert.Equal(t, 30*60, int(end.Sub(start).Seconds()))
}

func TestResolveRangeNegativeDurationErrors(t *testing.T) {
	env := newFakeEnv(ExactDateTimeFromYMDHMS(2023, 4, 4, 10, 0, 0))
	_, err := ResolveRange(RangeDuration(Duration{Start: DateTime{}, Duration: Number(-5)}), env)
	assert.Error(t, err)
}
