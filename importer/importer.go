// Package importer turns an already-fetched iCalendar document into
// TimeBlok's exact records and date filters. Fetching the document itself
// (HTTP download, disk cache) is out of scope; callers supply the decoded
// *ical.Calendar.
package importer

import (
	"bytes"
	"fmt"

	"github.com/emersion/go-ical"
	"github.com/jettchent/timeblok-go/ir"
)

// Decode parses a raw ICS document into a *ical.Calendar. The input must
// be a full VCALENDAR document; no boilerplate is added around fragments.
func Decode(data []byte) (*ical.Calendar, error) {
	dec := ical.NewDecoder(bytes.NewReader(data))
	cal, err := dec.Decode()
	if err != nil {
		return nil, fmt.Errorf("decode ics: %w", err)
	}
	return cal, nil
}

// ToRecords converts every VEVENT/VTODO in cal into an ir.ExactRecord,
// mirroring importer.rs's ics_to_records. A VEVENT with neither a
// readable DTSTART nor a readable DTEND is skipped.
func ToRecords(cal *ical.Calendar) []ir.ExactRecord {
	var records []ir.ExactRecord
	for _, child := range cal.Children {
		switch child.Name {
		case ical.CompEvent:
			rng, ok := eventRange(child)
			if !ok {
				continue
			}
			name, _ := child.Props.Text(ical.PropSummary)
			var notes *string
			if desc, err := child.Props.Text(ical.PropDescription); err == nil && desc != "" {
				notes = &desc
			}
			records = append(records, ir.ExactRecordEvent(ir.ExactEvent{
				Range: rng,
				Name:  name,
				Notes: notes,
			}))
		case ical.CompToDo:
			name, _ := child.Props.Text(ical.PropSummary)
			status := ir.TodoNeedsAction
			if s, err := child.Props.Text(ical.PropStatus); err == nil {
				status = todoStatusFromICS(s)
			}
			var due *ir.ExactDate
			if dt, ok := propDate(child, ical.PropDue); ok {
				d := dt
				due = &d
			}
			records = append(records, ir.ExactRecordTodo(ir.Todo{Name: name, Due: due, Status: status}))
		}
	}
	return records
}

func todoStatusFromICS(s string) ir.TodoStatus {
	switch s {
	case "COMPLETED":
		return ir.TodoCompleted
	case "IN-PROCESS":
		return ir.TodoInProcess
	case "CANCELLED":
		return ir.TodoCancelled
	default:
		return ir.TodoNeedsAction
	}
}

// eventRange resolves a VEVENT's DTSTART/DTEND into an ExactRange: a
// timed range when both bounds are present and at least one carries a
// time component, otherwise an all-day range on the date of whichever
// bound is present (DTSTART first). Matches
// ics_to_records's (Some,Some)/(Some,None)/(None,Some) match arms.
func eventRange(c *ical.Component) (ir.ExactRange, bool) {
	start, startHasTime, startOK := propDateTime(c, ical.PropDateTimeStart)
	end, endHasTime, endOK := propDateTime(c, ical.PropDateTimeEnd)

	switch {
	case startOK && endOK:
		if startHasTime || endHasTime {
			return ir.ExactRangeTime(ir.ExactTimeRange{Start: start, End: end}), true
		}
		return ir.ExactRangeAllDay(start.Date), true
	case startOK:
		return ir.ExactRangeAllDay(start.Date), true
	case endOK:
		return ir.ExactRangeAllDay(end.Date), true
	default:
		return ir.ExactRange{}, false
	}
}

// propDateTime reads name as a DATE-TIME when possible, falling back to a
// bare DATE (all-day), reporting whether a time-of-day was present.
func propDateTime(c *ical.Component, name string) (ir.ExactDateTime, bool, bool) {
	prop := c.Props.Get(name)
	if prop == nil {
		return ir.ExactDateTime{}, false, false
	}
	if prop.Params.Get("VALUE") == "DATE" {
		d, ok := propDate(c, name)
		if !ok {
			return ir.ExactDateTime{}, false, false
		}
		return ir.ExactDateTime{Date: d, TZ: ir.TZLocal}, false, true
	}
	t, err := c.Props.DateTime(name, nil)
	if err != nil {
		return ir.ExactDateTime{}, false, false
	}
	return ir.ExactDateTimeFromTime(t), true, true
}

func propDate(c *ical.Component, name string) (ir.ExactDate, bool) {
	if c.Props.Get(name) == nil {
		return ir.ExactDate{}, false
	}
	t, err := c.Props.DateTime(name, nil)
	if err != nil {
		return ir.ExactDate{}, false
	}
	return ir.ExactDateFromTime(t), true
}
