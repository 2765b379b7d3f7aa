// Package percept defines the local sensory cues an agent receives in a cell.
package percept

import "strings"

// Percept is a single sensory cue
type Percept uint8

// Percept constants. Values are bit flags so a Set is a plain bitmask.
const (
	Glitter Percept = 1 << iota
	Stench
	Breeze
)

// All returns every percept in display order
func All() []Percept {
	return []Percept{Glitter, Stench, Breeze}
}

// String returns the string representation of a percept
func (p Percept) String() string {
	switch p {
	case Glitter:
		return "Glitter"
	case Stench:
		return "Stench"
	case Breeze:
		return "Breeze"
	default:
		return "Unknown"
	}
}

// Set is a set of percepts. The zero value is the empty set and two sets
// holding the same percepts compare equal with ==.
type Set uint8

// NewSet returns a set holding the given percepts
func NewSet(ps ...Percept) Set {
	var s Set
	for _, p := range ps {
		s = s.With(p)
	}
	return s
}

// With returns s plus p
func (s Set) With(p Percept) Set {
	return s | Set(p)
}

// Has reports whether p is in the set
func (s Set) Has(p Percept) bool {
	return s&Set(p) != 0
}

// IsEmpty reports whether the set holds no percepts
func (s Set) IsEmpty() bool {
	return s == 0
}

// IsSafe reports whether the set carries no hazard warning (no Breeze, no Stench)
func (s Set) IsSafe() bool {
	return !s.Has(Breeze) && !s.Has(Stench)
}

// Slice returns the percepts in display order
func (s Set) Slice() []Percept {
	var out []Percept
	for _, p := range All() {
		if s.Has(p) {
			out = append(out, p)
		}
	}
	return out
}

// Each calls fn for every percept in display order
func (s Set) Each(fn func(p Percept)) {
	for _, p := range s.Slice() {
		fn(p)
	}
}

// String returns "{Glitter, Breeze}" style output; the empty set is "{}"
func (s Set) String() string {
	ps := s.Slice()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
