package ir

import (
	"fmt"

	"github.com/samber/mo"
)

// resolveDateResult does the actual field-by-field defaulting (spec
// §4.3.1) and is wrapped in a mo.Result the way the teacher's
// propfind.Resolver funcs return mo.Result[props.Property] (see
// server/propfind_resolvers.go) before being unwrapped into the
// (T, error) shape the rest of the compiler consumes.
func resolveDateResult(d Date, env Env) mo.Result[ExactDate] {
	base := env.DateTime().Date
	year := base.Year
	if v, ok := d.Year.Get(); ok {
		year = int(v)
	}
	month := base.Month
	if v, ok := d.Month.Get(); ok {
		month = timeMonth(v)
	}
	day := base.Day
	if v, ok := d.Day.Get(); ok {
		day = int(v)
	}
	return mo.Ok(ExactDate{Year: year, Month: month, Day: day})
}

// ResolveDate resolves a partial Date against env's anchor (spec §4.3.1):
// each concrete field wins, each Unsure field defaults from env.
func ResolveDate(d Date, env Env) (ExactDate, error) {
	return resolveDateResult(d, env).Get()
}

// ResolveTime resolves a partial Time against env's anchor, applying the
// AM/PM hour rules and bounds checks of spec §4.3.2.
func ResolveTime(t Time, env Env) (ExactTime, error) {
	base := env.DateTime().Time
	result := resolveTimeResult(t, base)
	return result.Get()
}

func resolveTimeResult(t Time, base ExactTime) mo.Result[ExactTime] {
	var hour int
	if n, ok := t.Hour.Get(); ok {
		switch t.Tod {
		case TodAM, TodPM:
			if n > 12 {
				return mo.Err[ExactTime](fmt.Errorf("Hour value cannot exceed 12 when AM/PM is specified(found: %d)", n))
			}
			if n == 12 {
				if t.Tod == TodAM {
					hour = 0
				} else {
					hour = 12
				}
			} else if t.Tod == TodAM {
				hour = int(n)
			} else {
				hour = int(n) + 12
			}
		default:
			if n > 23 {
				return mo.Err[ExactTime](fmt.Errorf("Hour value cannot exceed 23(found: %d)", n))
			}
			hour = int(n)
		}
	} else {
		hour = base.Hour
	}

	minute := base.Minute
	if n, ok := t.Minute.Get(); ok {
		if n > 59 {
			return mo.Err[ExactTime](fmt.Errorf("Minute value cannot exceed 59(found: %d)", n))
		}
		minute = int(n)
	}

	second := base.Second
	if n, ok := t.Second.Get(); ok {
		if n > 59 {
			return mo.Err[ExactTime](fmt.Errorf("Second value cannot exceed 59(found: %d)", n))
		}
		second = int(n)
	}

	return mo.Ok(ExactTime{Hour: hour, Minute: minute, Second: second})
}

// ResolveOccasion resolves a partial DateTime against env: each of
// date/time falls back to the anchor's corresponding component when
// absent; the timezone is always taken from env (spec §4.3.4).
func ResolveOccasion(dt DateTime, env Env) (ExactDateTime, error) {
	anchor := env.DateTime()
	date := anchor.Date
	if dt.HasDate {
		d, err := ResolveDate(*dt.Date, env)
		if err != nil {
			return ExactDateTime{}, err
		}
		date = d
	}
	t := anchor.Time
	if dt.HasTime {
		rt, err := ResolveTime(*dt.Time, env)
		if err != nil {
			return ExactDateTime{}, err
		}
		t = rt
	}
	return ExactDateTime{Date: date, Time: t, TZ: anchor.TZ}, nil
}

// ResolveRange resolves a partial Range against env (spec §4.3.3).
func ResolveRange(r Range, env Env) (ExactRange, error) {
	switch r.kind {
	case rangeAllDay:
		d, err := ResolveDate(*r.allDay, env)
		if err != nil {
			return ExactRange{}, err
		}
		return ExactRangeAllDay(d), nil
	case rangeTime:
		start, err := ResolveOccasion(r.timeR.Start, env)
		if err != nil {
			return ExactRange{}, err
		}
		end, err := ResolveOccasion(r.timeR.End, env)
		if err != nil {
			return ExactRange{}, err
		}
		return ExactRangeTime(ExactTimeRange{Start: start, End: end}), nil
	case rangeDuration:
		start, err := ResolveOccasion(r.duration.Start, env)
		if err != nil {
			return ExactRange{}, err
		}
		minutes := int64(30)
		if n, ok := r.duration.Duration.Get(); ok {
			if n < 0 {
				return ExactRange{}, fmt.Errorf("duration cannot be negative")
			}
			minutes = n
		}
		startT, err := start.ToTime()
		if err != nil {
			return ExactRange{}, err
		}
		endT := startT.Add(durationMinutes(minutes))
		end := ExactDateTimeFromUTC(endT)
		return ExactRangeTime(ExactTimeRange{Start: start, End: end}), nil
	default:
		return ExactRange{}, fmt.Errorf("unknown range kind")
	}
}

// ResolveEvent resolves an Event's range, keeping its name/notes as-is.
func ResolveEvent(e Event, env Env) (ExactEvent, error) {
	r, err := ResolveRange(e.Range, env)
	if err != nil {
		return ExactEvent{}, err
	}
	return ExactEvent{Range: r, Name: e.Name, Notes: e.Notes}, nil
}
