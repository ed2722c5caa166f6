// Package environment implements TimeBlok's lexically-scoped environment
// tree (spec §4.2): a linked stack of scopes holding contextual
// date/time defaults plus a mutable per-scope namespace of identifier
// bindings.
package environment

import (
	"fmt"
	"time"

	"github.com/jettchent/timeblok-go/ir"
)

// Environment is one scope in the tree. It is single-owner: mutation is
// confined to this scope's own namespace map, and lookups walk the
// parent chain read-only (spec §5 "Shared state").
type Environment struct {
	dateTime  ir.ExactDateTime
	current   ir.DateTime
	parent    *Environment
	namespace map[string]ir.IdentData
}

// New creates a scope anchored at dateTime, whose Current() is the
// partial occasion that produced it, chained to parent (nil for the
// root).
func New(dateTime ir.ExactDateTime, current ir.DateTime, parent *Environment) *Environment {
	return &Environment{
		dateTime:  dateTime,
		current:   current,
		parent:    parent,
		namespace: make(map[string]ir.IdentData),
	}
}

// FromExact builds a root scope whose Current mirrors its own anchor.
func FromExact(dt ir.ExactDateTime) *Environment {
	return New(dt, ir.DateTimeFromExact(dt), nil)
}

// Child returns a new scope anchored at dateTime/current, with this
// environment as parent.
func (e *Environment) Child(dateTime ir.ExactDateTime, current ir.DateTime) *Environment {
	return New(dateTime, current, e)
}

func (e *Environment) DateTime() ir.ExactDateTime { return e.dateTime }
func (e *Environment) Current() ir.DateTime       { return e.current }
func (e *Environment) Parent() *Environment       { return e.parent }

// Get searches this scope then walks parents.
func (e *Environment) Get(name string) (ir.IdentData, bool) {
	if e == nil {
		return ir.IdentData{}, false
	}
	if v, ok := e.namespace[name]; ok {
		return v, true
	}
	return e.parent.Get(name)
}

// Set inserts/overwrites a binding in this scope's own namespace.
func (e *Environment) Set(name string, data ir.IdentData) {
	e.namespace[name] = data
}

// Del removes a binding from this scope's own namespace.
func (e *Environment) Del(name string) {
	delete(e.namespace, name)
}

// maxFitDate computes the longest definite prefix of current.Date,
// falling back through parents until a scope with a date is found (spec
// §4.2, step 1 of Iter).
func maxFitDate(e *Environment) (ir.Date, error) {
	if e == nil {
		return ir.Date{}, fmt.Errorf("no dated scope in environment chain")
	}
	if !e.current.HasDate {
		return maxFitDate(e.parent)
	}
	d := *e.current.Date
	nd := ir.NewDate()
	y, ok := d.Year.Get()
	if !ok {
		return nd, nil
	}
	nd.Year = ir.Number(y)
	m, ok := d.Month.Get()
	if !ok {
		return nd, nil
	}
	nd.Month = ir.Number(m)
	day, ok := d.Day.Get()
	if !ok {
		return nd, nil
	}
	nd.Day = ir.Number(day)
	return nd, nil
}

func fillOrOne(n ir.NumVal) int64 {
	if v, ok := n.Get(); ok {
		return v
	}
	return 1
}

// dateIter implements ir.DateIter: starting at the naive date derived
// from the scope's max-fit prefix, it steps one day at a time and stops
// on the first date the prefix filter rejects. Per spec §4.2 this
// assumes the prefix describes a contiguous range (true for year,
// year-month and year-month-day prefixes); pairing it with a
// non-contiguous filter is a caller error (spec §9 Open Question,
// decided in DESIGN.md).
type dateIter struct {
	env     ir.Env
	curDate time.Time
	filter  ir.FlexDate
}

func (it *dateIter) Next() (ir.Date, bool) {
	cur := ir.ExactDateFromTime(it.curDate)
	if !it.filter.Check(cur, it.env) {
		return ir.Date{}, false
	}
	d := cur.ToDate()
	it.curDate = it.curDate.AddDate(0, 0, 1)
	return d, true
}

// Iter produces the date-iteration facility of spec §4.2.
func (e *Environment) Iter() (ir.DateIter, error) {
	fit, err := maxFitDate(e)
	if err != nil {
		return nil, err
	}
	start := ir.ExactDate{
		Year:  int(fillOrOne(fit.Year)),
		Month: time.Month(fillOrOne(fit.Month)),
		Day:   int(fillOrOne(fit.Day)),
	}
	t, err := start.ToTime()
	if err != nil {
		return nil, err
	}
	filter := ir.FlexDate{Year: fit.Year, Month: fit.Month, Day: fit.Day}
	return &dateIter{env: e, curDate: t, filter: filter}, nil
}

var _ ir.Env = (*Environment)(nil)
