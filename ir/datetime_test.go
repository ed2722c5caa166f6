package ir

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLocalWallClockDetectsGapAndFold(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata for America/New_York not available: %v", err)
	}

	// 2023-03-12: US spring-forward, 02:00 jumps straight to 03:00, so
	// 02:30 never occurs (DST gap).
	_, err = resolveLocalWallClock(2023, time.March, 12, 2, 30, 0, loc)
	assert.Error(t, err)

	// 2023-11-05: US fall-back, 02:00 becomes 01:00, so 01:30 occurs
	// twice (DST fold) — this is the case a naive round-trip check
	// misses, since both interpretations reproduce the same wall clock.
	_, err = resolveLocalWallClock(2023, time.November, 5, 1, 30, 0, loc)
	assert.Error(t, err)

	// An ordinary wall-clock time away from any transition resolves
	// cleanly to a single instant.
	resolved, err := resolveLocalWallClock(2023, time.June, 1, 12, 0, 0, loc)
	require.NoError(t, err)
	y, m, d := resolved.In(loc).Date()
	hh, mm, _ := resolved.In(loc).Clock()
	assert.Equal(t, 2023, y)
	assert.Equal(t, time.June, m)
	assert.Equal(t, 1, d)
	assert.Equal(t, 12, hh)
	assert.Equal(t, 0, mm)
}

func TestExactDateTimeToTimeRejectsAmbiguousOffsetZoneIsUnaffected(t *testing.T) {
	// A fixed Offset timezone never observes DST, so the same wall clock
	// that would be ambiguous in a named zone always resolves cleanly.
	dt := ExactDateTime{
		Date: ExactDate{Year: 2023, Month: time.November, Day: 5},
		Time: ExactTime{Hour: 1, Minute: 30, Second: 0},
		TZ:   TZOffset(-5 * time.Hour),
	}
	_, err := dt.ToTime()
	assert.NoError(t, err)
}
