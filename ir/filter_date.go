package ir

import "log/slog"

// FlexDate is three filter-typed fields (year/month/day), each a
// Filter[NumVal]. A FlexDate whose fields are all concrete NumVals
// matches exactly one ExactDate (spec invariant 3).
type FlexDate struct {
	Year  Filter[NumVal]
	Month Filter[NumVal]
	Day   Filter[NumVal]
}

// Check implements Filter[ExactDate]: a conjunction over the three
// sub-filters. This is the form Environment.Iter uses internally, where
// the candidate date is already resolved.
func (f FlexDate) Check(value ExactDate, env Env) bool {
	return f.Year.Check(Number(int64(value.Year)), env) &&
		f.Month.Check(Number(int64(value.Month)), env) &&
		f.Day.Check(Number(int64(value.Day)), env)
}

// AsDateFilter exposes the FlexDate as a Filter[Date], resolving the
// input through the environment before delegating to Check — the second
// of the original's two trait impls for the same type (Go can't give one
// struct two methods both named Check with different parameter types, so
// the resolving half lives on this small adapter instead).
func (f FlexDate) AsDateFilter() Filter[Date] {
	return resolvingDateFilter{inner: f}
}

type resolvingDateFilter struct {
	inner Filter[ExactDate]
}

func (r resolvingDateFilter) Check(value Date, env Env) bool {
	exact, err := ResolveDate(value, env)
	if err != nil {
		return false
	}
	return r.inner.Check(exact, env)
}

// AsDateFilter wraps any Filter[ExactDate] (e.g. ExactRange, a SetFilter
// built over exact dates) as a Filter[Date] by resolving the input first.
func AsDateFilter(f Filter[ExactDate]) Filter[Date] {
	return resolvingDateFilter{inner: f}
}

// Check implements Filter[ExactDate] for ExactRange: AllDay matches
// exactly that date; a TimeRange matches any date within [start, end]
// inclusive (both ends truncated to their calendar date).
func (r ExactRange) Check(value ExactDate, _ Env) bool {
	if r.AllDay != nil {
		return *r.AllDay == value
	}
	startT, err1 := r.TimeRange.Start.Date.ToTime()
	endT, err2 := r.TimeRange.End.Date.ToTime()
	targetT, err3 := value.ToTime()
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	return !targetT.Before(startT) && !targetT.After(endT)
}

// Check implements Filter[Date] for Range: resolves both the range and
// the candidate date through the environment, then defers to ExactRange.
func (r Range) Check(value Date, env Env) bool {
	exactRange, err := ResolveRange(r, env)
	if err != nil {
		return false
	}
	exactDate, err := ResolveDate(value, env)
	if err != nil {
		return false
	}
	return exactRange.Check(exactDate, env)
}

// DynFilter wraps an arbitrary named predicate — used for the weekday,
// workday and weekend presets, where the predicate is a Go closure rather
// than a combination of the other filter variants. The Name makes the
// value printable/identifiable the way the original's DynFilter's
// Debug impl shows "DynFilter<name>".
type DynFilter[T any] struct {
	Name string
	Fn   func(value T, env Env) bool
}

func (f DynFilter[T]) Check(value T, env Env) bool {
	return f.Fn(value, env)
}

func (f DynFilter[T]) String() string {
	return "DynFilter<" + f.Name + ">"
}

// IdentFilter resolves at check time (not at parse time) by looking up
// Name in the environment. If the lookup fails or the binding isn't a
// date filter, it logs once and reports no match rather than aborting
// the enclosing iteration.
type IdentFilter struct {
	Name string
}

func (f IdentFilter) Check(value Date, env Env) bool {
	if env == nil {
		slog.Warn("identifier filter used without an environment", "name", f.Name)
		return false
	}
	data, ok := env.Get(f.Name)
	if !ok {
		slog.Warn("identifier not found", "name", f.Name)
		return false
	}
	if data.Value == nil || data.Value.DateFilter == nil {
		slog.Warn("identifier is not a date filter", "name", f.Name)
		return false
	}
	return data.Value.DateFilter.Check(value, env)
}
