package ir

// Check implements Filter[NumVal] for NumRange: inclusive range, with an
// Unsure endpoint denoting an open bound. An Unsure input always matches
// (the boundary case is unresolvable, so it isn't rejected).
func (r NumRange) Check(value NumVal, _ Env) bool {
	target, ok := value.Get()
	if !ok {
		return true
	}
	start, hasStart := r.Start.Get()
	end, hasEnd := r.End.Get()
	switch {
	case !hasStart && !hasEnd:
		return true
	case !hasStart:
		return target <= end
	case !hasEnd:
		return target >= start
	default:
		return target >= start && target <= end
	}
}

// Check implements Filter[NumVal] for NumVal itself: Unsure matches
// everything, otherwise it's equality.
func (n NumVal) Check(value NumVal, _ Env) bool {
	if n.IsUnsure() {
		return true
	}
	return n.Equal(value)
}

// Check implements Filter[NumVal] for FlexField: dispatch to whichever of
// NumVal/NumRange it wraps.
func (f FlexField) Check(value NumVal, env Env) bool {
	if f.Range != nil {
		return f.Range.Check(value, env)
	}
	if f.Val != nil {
		return f.Val.Check(value, env)
	}
	return true
}
