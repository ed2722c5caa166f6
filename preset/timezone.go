package preset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/ir"
)

// staticAbbreviations covers common US zone abbreviations used in the
// original's own example files, which a live tzdata abbreviation table
// would otherwise resolve; Go's stdlib has no such table, so TimeBlok
// carries this small fixed one (SPEC_FULL's supplemented-features note).
var staticAbbreviations = map[string]time.Duration{
	"pst": -8 * time.Hour,
	"pdt": -7 * time.Hour,
	"mst": -7 * time.Hour,
	"mdt": -6 * time.Hour,
	"cst": -6 * time.Hour,
	"cdt": -5 * time.Hour,
	"est": -5 * time.Hour,
	"edt": -4 * time.Hour,
}

// parseTimeZone parses the /tz and /timezone command argument text into a
// TimeZoneChoice: "utc", an IANA zone name, a literal ±HH:MM offset, or
// one of the static US abbreviations above.
func parseTimeZone(raw string) (ir.TimeZoneChoice, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ir.TimeZoneChoice{}, fmt.Errorf("empty timezone")
	}
	if s == "utc" || s == "gmt" {
		return ir.TZUTC, nil
	}
	if offset, ok := staticAbbreviations[s]; ok {
		return ir.TZOffset(offset), nil
	}
	if d, ok := parseOffset(s); ok {
		return ir.TZOffset(d), nil
	}
	if loc, err := time.LoadLocation(raw); err == nil {
		_, offset := time.Now().In(loc).Zone()
		return ir.TZOffset(time.Duration(offset) * time.Second), nil
	}
	return ir.TimeZoneChoice{}, fmt.Errorf("unrecognized timezone: %s", raw)
}

// parseOffset parses a literal "+05:30" / "-07:00" / "-0700" style offset.
func parseOffset(s string) (time.Duration, bool) {
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, false
	}
	sign := time.Duration(1)
	if s[0] == '-' {
		sign = -1
	}
	rest := strings.ReplaceAll(s[1:], ":", "")
	if len(rest) != 4 {
		return 0, false
	}
	hours, err1 := strconv.Atoi(rest[:2])
	minutes, err2 := strconv.Atoi(rest[2:])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return sign * (time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute), true
}

// insertTimezone binds tz/timezone, mirroring preset/mod.rs's
// insert_timezone.
func insertTimezone(env *environment.Environment) {
	fn := func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		tz, err := parseTimeZone(call.Plain)
		if err != nil {
			return nil, err
		}
		return []ir.ResolverAction{ir.ActionSetTimeZone(tz)}, nil
	}
	env.Set("timezone", cmd("timezone", 0, fn))
	env.Set("tz", cmd("tz", 0, fn))
}
