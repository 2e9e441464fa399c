package params

import (
	"fmt"
	"slices"
)

// Set is an immutable mapping from parameter names to typed values.
// Every mutation returns a new Set, so instances can be shared freely.
// Iteration always follows the canonical vocabulary order; insertion
// order does not matter.
type Set struct {
	m map[Name]Value
}

// NewSet returns an empty parameter set.
func NewSet() Set {
	return Set{}
}

// FromMap builds a set from an initial mapping. Names outside the fixed
// vocabulary are rejected with an INVALID_ARGUMENT error.
func FromMap(init map[Name]Value) (Set, error) {
	m := make(map[Name]Value, len(init))
	for name, value := range init {
		if !IsKnown(name) {
			return Set{}, NewError(ErrCodeInvalidArgument,
				fmt.Sprintf("unknown parameter name %q", string(name)), nil)
		}
		m[name] = value
	}
	return Set{m: m}, nil
}

// With returns a new set with one entry added or overwritten. The
// receiver is left untouched. Name validity is enforced at the
// vocabulary-constant level, not here.
func (s Set) With(name Name, value Value) Set {
	m := make(map[Name]Value, len(s.m)+1)
	for k, v := range s.m {
		m[k] = v
	}
	m[name] = value
	return Set{m: m}
}

// Get returns the value for name and whether it is present.
func (s Set) Get(name Name) (Value, bool) {
	v, ok := s.m[name]
	return v, ok
}

// Has reports whether name is set.
func (s Set) Has(name Name) bool {
	_, ok := s.m[name]
	return ok
}

// Len returns the number of set parameters.
func (s Set) Len() int {
	return len(s.m)
}

// Names returns the set parameter names in canonical vocabulary order.
func (s Set) Names() []Name {
	out := make([]Name, 0, len(s.m))
	for _, name := range ordered {
		if _, ok := s.m[name]; ok {
			out = append(out, name)
		}
	}
	// Names set outside the vocabulary (possible via a cast) still
	// surface, so the adapter can reject them instead of dropping them.
	var unknown []Name
	for name := range s.m {
		if !IsKnown(name) {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)
	return append(out, unknown...)
}

// Snapshot returns a copy of the current mapping for iteration.
func (s Set) Snapshot() map[Name]Value {
	m := make(map[Name]Value, len(s.m))
	for k, v := range s.m {
		m[k] = v
	}
	return m
}
