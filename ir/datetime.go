package ir

import (
	"fmt"
	"time"
)

// TimeZoneChoice selects how an ExactDateTime's wall-clock fields map to
// an instant: the host's local zone, UTC, or a fixed offset.
type TimeZoneChoice struct {
	kind   tzKind
	offset time.Duration // only meaningful when kind == tzOffset
}

type tzKind int

const (
	tzLocal tzKind = iota
	tzUTC
	tzOffset
)

// TZLocal is the host's local timezone.
var TZLocal = TimeZoneChoice{kind: tzLocal}

// TZUTC is UTC.
var TZUTC = TimeZoneChoice{kind: tzUTC}

// TZOffset is a fixed offset from UTC (east positive), e.g. -7*time.Hour
// for PDT.
func TZOffset(d time.Duration) TimeZoneChoice {
	return TimeZoneChoice{kind: tzOffset, offset: d}
}

func (tz TimeZoneChoice) location() *time.Location {
	switch tz.kind {
	case tzUTC:
		return time.UTC
	case tzOffset:
		secs := int(tz.offset / time.Second)
		return time.FixedZone(fmt.Sprintf("UTC%+03d:%02d", secs/3600, (secs%3600)/60), secs)
	default:
		return time.Local
	}
}

func (tz TimeZoneChoice) String() string {
	switch tz.kind {
	case tzUTC:
		return "utc"
	case tzOffset:
		secs := int(tz.offset / time.Second)
		return fmt.Sprintf("%+03d:%02d", secs/3600, (secs%3600)/60)
	default:
		return "local"
	}
}

// DateTime is a possibly-partial occasion: any of date, time or timezone
// may be entirely absent, meaning "default from the environment".
type DateTime struct {
	Date    *Date
	Time    *Time
	TZ      *TimeZoneChoice
	HasDate bool
	HasTime bool
	HasTZ   bool
}

// DateTimeFromYMD builds a date-only occasion with an implicit local zone,
// mirroring the original's DateTime::from_ymd.
func DateTimeFromYMD(year, month, day int64) DateTime {
	d := DateFromYMD(year, month, day)
	tz := TZLocal
	return DateTime{Date: &d, HasDate: true, TZ: &tz, HasTZ: true}
}

// DateTimeFromYMDHMS builds a fully-specified occasion, local zone.
func DateTimeFromYMDHMS(year, month, day, hour, minute, second int64) DateTime {
	d := DateFromYMD(year, month, day)
	t := Time{Hour: Number(hour), Minute: Number(minute), Second: Number(second)}
	tz := TZLocal
	return DateTime{Date: &d, HasDate: true, Time: &t, HasTime: true, TZ: &tz, HasTZ: true}
}

// DateTimeFromExact widens an ExactDateTime back to a fully-specified
// partial DateTime (used by environment.FromExact for a root scope's
// Current).
func DateTimeFromExact(e ExactDateTime) DateTime {
	d := e.Date.ToDate()
	t := Time{Hour: Number(int64(e.Time.Hour)), Minute: Number(int64(e.Time.Minute)), Second: Number(int64(e.Time.Second))}
	tz := e.TZ
	return DateTime{Date: &d, HasDate: true, Time: &t, HasTime: true, TZ: &tz, HasTZ: true}
}

// ExactDateTime is a fully-resolved moment: a calendar date, a time of
// day, and the timezone that anchors the pair to an instant.
type ExactDateTime struct {
	Date ExactDate
	Time ExactTime
	TZ   TimeZoneChoice
}

// ExactDateTimeFromYMDHMS builds an ExactDateTime directly, local zone.
func ExactDateTimeFromYMDHMS(year int, month time.Month, day, hour, minute, second int) ExactDateTime {
	return ExactDateTime{
		Date: ExactDate{Year: year, Month: month, Day: day},
		Time: ExactTime{Hour: hour, Minute: minute, Second: second},
		TZ:   TZLocal,
	}
}

// ExactDateTimeFromTime lifts a time.Time, recording its zone as a fixed
// offset (or UTC, if the zone's offset is zero, whatever its name).
func ExactDateTimeFromTime(t time.Time) ExactDateTime {
	_, offset := t.Zone()
	tz := TZOffset(time.Duration(offset) * time.Second)
	if offset == 0 {
		tz = TZUTC
	}
	return ExactDateTime{
		Date: ExactDateFromTime(t),
		Time: ExactTimeFromTime(t),
		TZ:   tz,
	}
}

// ExactDateTimeFromUnixMilli builds an ExactDateTime (UTC, midnight time
// component zeroed like the original's from_timestamp) from a Unix
// millisecond epoch.
func ExactDateTimeFromUnixMilli(ms int64) ExactDateTime {
	t := time.UnixMilli(ms).UTC()
	return ExactDateTime{
		Date: ExactDateFromTime(t),
		Time: ExactTime{},
		TZ:   TZUTC,
	}
}

// ToTime converts the ExactDateTime to an absolute instant (UTC), failing
// if the wall-clock time is ambiguous (DST fold) or doesn't exist (DST
// gap) in the chosen zone — the original's to_chrono() rejects anything
// but LocalResult::Single rather than silently picking a side.
func (e ExactDateTime) ToTime() (time.Time, error) {
	if err := e.Time.valid(); err != nil {
		return time.Time{}, err
	}
	d, err := e.Date.ToTime()
	if err != nil {
		return time.Time{}, err
	}
	loc := e.TZ.location()
	if loc == time.Local || e.TZ.kind == tzLocal {
		t, err := resolveLocalWallClock(d.Year(), d.Month(), d.Day(), e.Time.Hour, e.Time.Minute, e.Time.Second, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("ambiguous or non-existent local time: %s %s: %w", d.Format("2006-01-02"), e.Time, err)
		}
		return t.UTC(), nil
	}
	naive := time.Date(d.Year(), d.Month(), d.Day(), e.Time.Hour, e.Time.Minute, e.Time.Second, 0, loc)
	return naive.UTC(), nil
}

// resolveLocalWallClock resolves a wall-clock date/time against loc to a
// single unambiguous instant. It probes the zone offsets in effect the
// day before and after the nominal instant (bracketing any DST
// transition) and checks which of those offsets actually reproduce the
// requested wall-clock fields when applied: zero matches means the time
// falls in a DST gap (doesn't exist), two matches means it falls in a
// DST fold (ambiguous) — mirroring the original's rejection of anything
// but LocalResult::Single.
func resolveLocalWallClock(year int, month time.Month, day, hour, minute, second int, loc *time.Location) (time.Time, error) {
	wallAsUTC := time.Date(year, month, day, hour, minute, second, 0, time.UTC)
	nominal := time.Date(year, month, day, hour, minute, second, 0, loc)
	_, offBefore := nominal.AddDate(0, 0, -1).Zone()
	_, offAfter := nominal.AddDate(0, 0, 1).Zone()

	offsets := map[int]struct{}{offBefore: {}, offAfter: {}}
	var matches []time.Time
	for off := range offsets {
		cand := wallAsUTC.Add(-time.Duration(off) * time.Second)
		inLoc := cand.In(loc)
		y, m, dd := inLoc.Date()
		hh, mm, ss := inLoc.Clock()
		if y == year && m == month && dd == day && hh == hour && mm == minute && ss == second {
			matches = append(matches, cand)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return time.Time{}, fmt.Errorf("does not exist (DST gap)")
	default:
		return time.Time{}, fmt.Errorf("ambiguous, occurs twice (DST fold)")
	}
}

// ExactDateTimeFromUTC is the inverse of ToTime, always producing a UTC-anchored
// ExactDateTime (mirrors the original's ExactDateTime::from_chrono).
func ExactDateTimeFromUTC(t time.Time) ExactDateTime {
	u := t.UTC()
	return ExactDateTime{
		Date: ExactDateFromTime(u),
		Time: ExactTimeFromTime(u),
		TZ:   TZUTC,
	}
}
