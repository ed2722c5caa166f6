package ir

// Env is everything a filter, a resolve helper, or a command needs from
// the environment tree (spec §4.2). The concrete implementation lives in
// the environment package; this interface exists so that ir — which
// defines both the filter algebra and the commands that mutate the
// environment — never has to import it back (breaking the cycle the
// original Rust crate tolerates between its ir::filter and environment
// modules, which Go packages cannot).
type Env interface {
	// DateTime returns this scope's fully-resolved anchor.
	DateTime() ExactDateTime
	// Current returns the partial DateTime that produced this scope's
	// anchor (used by the date-iteration facility).
	Current() DateTime
	// Get searches this scope then walks parents, returning a cloned
	// binding or (zero, false).
	Get(name string) (IdentData, bool)
	// Set inserts/overwrites a binding in this scope's own namespace.
	Set(name string, data IdentData)
	// Del removes a binding from this scope's own namespace.
	Del(name string)
	// Iter produces the date-iteration facility described in spec §4.2.
	Iter() (DateIter, error)
}

// DateIter is a lazy sequence of dates produced by Env.Iter.
type DateIter interface {
	// Next returns the next date and true, or (zero, false) once the
	// sequence is exhausted.
	Next() (Date, bool)
}
