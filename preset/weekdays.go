// Package preset wires TimeBlok's builtin environment bindings (spec
// §4.4): the weekday/workday/weekend date filters and the builtin
// command table (print, set, del, t, tz/timezone, import, holidays,
// region).
package preset

import (
	"time"

	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/ir"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
	"sun":       time.Sunday,
}

// insertWeekdays binds the 14 weekday names plus workday/weekend, each a
// DynFilter comparing the resolved date's weekday. Grounded on
// preset/mod.rs's insert_weekdays.
func insertWeekdays(env *environment.Environment) {
	for name, wkday := range weekdayNames {
		wkday := wkday
		filt := ir.DynFilter[ir.Date]{
			Name: name,
			Fn: func(d ir.Date, env ir.Env) bool {
				resolved, err := ir.ResolveDate(d, env)
				if err != nil {
					return false
				}
				w, err := resolved.Weekday()
				if err != nil {
					return false
				}
				return w == wkday
			},
		}
		env.Set(name, ir.IdentDataValue(ir.ValueDateFilter(filt)))
	}

	env.Set("workday", ir.IdentDataValue(ir.ValueDateFilter(ir.DynFilter[ir.Date]{
		Name: "workday",
		Fn: func(d ir.Date, env ir.Env) bool {
			resolved, err := ir.ResolveDate(d, env)
			if err != nil {
				return false
			}
			w, err := resolved.Weekday()
			if err != nil {
				return false
			}
			return w != time.Saturday && w != time.Sunday
		},
	})))

	env.Set("weekend", ir.IdentDataValue(ir.ValueDateFilter(ir.DynFilter[ir.Date]{
		Name: "weekend",
		Fn: func(d ir.Date, env ir.Env) bool {
			resolved, err := ir.ResolveDate(d, env)
			if err != nil {
				return false
			}
			w, err := resolved.Weekday()
			if err != nil {
				return false
			}
			return w == time.Saturday || w == time.Sunday
		},
	})))
}
