// Package emit renders resolved records to iCalendar and CSV, the two
// output formats of spec §4.5.
package emit

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/jettchent/timeblok-go/ir"
)

// ICalOption configures ToICal.
type ICalOption func(*icalConfig)

type icalConfig struct {
	deterministicTimestamp *time.Time
}

// Deterministic fixes every emitted DTSTAMP to ts and derives each VEVENT
// and VTODO's UID from its position via uuid.NewMD5 against the
// NameSpaceURL namespace (converter.rs's `Uuid::new_v3`), so two
// compilations of the same source produce byte-identical output.
func Deterministic(ts time.Time) ICalOption {
	return func(c *icalConfig) { c.deterministicTimestamp = &ts }
}

// ToICal renders records as a VCALENDAR document (spec §4.5).
func ToICal(records []ir.ExactRecord, opts ...ICalOption) (string, error) {
	cfg := icalConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//TimeBlok//Go Compiler//EN")

	emitted := 0
	for _, rec := range records {
		var key string
		if cfg.deterministicTimestamp != nil {
			key = fmt.Sprintf("%d", emitted)
		}
		switch {
		case rec.Event != nil:
			comp, err := eventToComponent(*rec.Event, key, cfg.deterministicTimestamp)
			if err != nil {
				return "", fmt.Errorf("emit event %q: %w", rec.Event.Name, err)
			}
			cal.Children = append(cal.Children, comp)
			emitted++
		case rec.Todo != nil:
			comp, err := todoToComponent(*rec.Todo, key, cfg.deterministicTimestamp)
			if err != nil {
				return "", fmt.Errorf("emit todo %q: %w", rec.Todo.Name, err)
			}
			cal.Children = append(cal.Children, comp)
			emitted++
		case rec.Note != nil:
			// Notes carry no calendar representation (spec §4.5); skipped
			// the same as converter.rs's ExactRecord::Note(_) => {} arm.
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return "", fmt.Errorf("encode calendar: %w", err)
	}
	return buf.String(), nil
}

func uidFor(key string) string {
	return uuid.NewMD5(uuid.NameSpaceURL, []byte(key)).String()
}

func eventToComponent(e ir.ExactEvent, key string, tsmp *time.Time) (*ical.Component, error) {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropSummary, e.Name)
	if e.Notes != nil {
		event.Props.SetText(ical.PropDescription, *e.Notes)
	}
	if key != "" {
		event.Props.SetText(ical.PropUID, uidFor(key))
	}
	if tsmp != nil {
		event.Props.SetDateTime(ical.PropDateTimeStamp, *tsmp)
	}

	switch {
	case e.Range.TimeRange != nil:
		start, err := e.Range.TimeRange.Start.ToTime()
		if err != nil {
			return nil, err
		}
		end, err := e.Range.TimeRange.End.ToTime()
		if err != nil {
			return nil, err
		}
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
	case e.Range.AllDay != nil:
		t, err := e.Range.AllDay.ToTime()
		if err != nil {
			return nil, err
		}
		event.Props.SetDate(ical.PropDateTimeStart, t)
		event.Props.SetDate(ical.PropDateTimeEnd, t.AddDate(0, 0, 1))
	default:
		return nil, fmt.Errorf("event %q has no range", e.Name)
	}

	return event.Component, nil
}

func todoToComponent(t ir.Todo, key string, tsmp *time.Time) (*ical.Component, error) {
	todo := &ical.Component{Name: ical.CompToDo, Props: make(ical.Props)}
	todo.Props.SetText(ical.PropSummary, t.Name)
	todo.Props.SetText(ical.PropStatus, t.Status.String())
	if key != "" {
		todo.Props.SetText(ical.PropUID, uidFor(key))
	}
	if tsmp != nil {
		todo.Props.SetDateTime(ical.PropDateTimeStamp, *tsmp)
	}
	if t.Due != nil {
		due, err := t.Due.ToTime()
		if err != nil {
			return nil, err
		}
		todo.Props.SetDate(ical.PropDue, due)
	}
	return todo, nil
}
