package importer

import (
	"github.com/emersion/go-ical"
	"github.com/jettchent/timeblok-go/ir"
)

// SetFilter is a date predicate backed by an explicit set of concrete
// dates, as produced by the `holidays`/`region`/2-arg `import` commands.
// Grounded on importer.rs's SetFilter.
type SetFilter struct {
	dates map[ir.ExactDate]struct{}
}

// FromDates builds a SetFilter directly from a list of exact dates.
func FromDates(dates []ir.ExactDate) SetFilter {
	s := make(map[ir.ExactDate]struct{}, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return SetFilter{dates: s}
}

// FromICS collects dates from each VEVENT in cal, matching
// SetFilter::from_ics: a timed event contributes every date from its
// start date to its end date, inclusive of both; an all-day event
// contributes only its DTSTART date, whatever its DTEND.
func FromICS(cal *ical.Calendar) SetFilter {
	set := map[ir.ExactDate]struct{}{}
	for _, child := range cal.Children {
		if child.Name != ical.CompEvent {
			continue
		}
		rng, ok := eventRange(child)
		if !ok {
			continue
		}
		var start, end ir.ExactDate
		switch {
		case rng.AllDay != nil:
			start, end = *rng.AllDay, *rng.AllDay
		case rng.TimeRange != nil:
			start, end = rng.TimeRange.Start.Date, rng.TimeRange.End.Date
		default:
			continue
		}
		for d := start; ; d = d.AddDays(1) {
			set[d] = struct{}{}
			if d == end {
				break
			}
		}
	}
	return SetFilter{dates: set}
}

// Check implements ir.Filter[ir.Date], resolving value against env before
// testing set membership.
func (f SetFilter) Check(value ir.Date, env ir.Env) bool {
	d, err := ir.ResolveDate(value, env)
	if err != nil {
		return false
	}
	_, ok := f.dates[d]
	return ok
}

var _ ir.Filter[ir.Date] = SetFilter{}
