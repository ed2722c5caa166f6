// Package ir holds TimeBlok's intermediate representation: the partial
// (unresolved) and exact (resolved) date/time types, the filter algebra
// that operates over them, and the values a command can carry.
package ir

import (
	"fmt"

	"github.com/samber/mo"
)

// NumVal is an integer field that may be Unsure — not yet supplied by the
// source text, to be defaulted from the enclosing environment at resolve
// time. The zero value is Unsure, matching the original's Date::new()/
// Time::new() convention of defaulting every field to the sentinel.
type NumVal struct {
	opt mo.Option[int64]
}

// Unsure is the sentinel "not yet specified" value.
var Unsure = NumVal{}

// Number wraps a concrete integer field.
func Number(n int64) NumVal {
	return NumVal{opt: mo.Some(n)}
}

// IsUnsure reports whether the field was left unspecified.
func (n NumVal) IsUnsure() bool {
	return n.opt.IsAbsent()
}

// Get returns the concrete value and true, or (0, false) if Unsure.
func (n NumVal) Get() (int64, bool) {
	return n.opt.Get()
}

// OrElse returns the concrete value, or def if Unsure.
func (n NumVal) OrElse(def int64) int64 {
	return n.opt.OrElse(def)
}

func (n NumVal) String() string {
	if v, ok := n.opt.Get(); ok {
		return fmt.Sprintf("%d", v)
	}
	return "?"
}

// Equal reports structural equality: two Unsure values are equal to each
// other, matching the original's #[derive(PartialEq)] on an enum whose
// variants compare by tag-then-payload.
func (n NumVal) Equal(other NumVal) bool {
	a, aok := n.opt.Get()
	b, bok := other.opt.Get()
	if aok != bok {
		return false
	}
	return !aok || a == b
}

// NumRange is an inclusive numeric range; either endpoint may be Unsure
// to denote an open bound.
type NumRange struct {
	Start NumVal
	End   NumVal
}

// FlexField is either a single NumVal or a NumRange — the value a
// year/month/day/hour/etc. filter field is built from.
type FlexField struct {
	Val   *NumVal
	Range *NumRange
}

// FlexFieldOf wraps a bare NumVal as a FlexField.
func FlexFieldOf(v NumVal) FlexField {
	return FlexField{Val: &v}
}

// FlexFieldRange wraps a NumRange as a FlexField.
func FlexFieldRange(r NumRange) FlexField {
	return FlexField{Range: &r}
}
