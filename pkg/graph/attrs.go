package graph

import (
	"maps"
	"slices"
)

// Attrs is a read-only string attribute bag. The zero value is empty.
type Attrs struct {
	m map[string]string
}

// NewAttrs returns an attribute bag holding a copy of m.
func NewAttrs(m map[string]string) Attrs {
	if len(m) == 0 {
		return Attrs{}
	}
	return Attrs{m: maps.Clone(m)}
}

// Get returns the value for key and whether it is present.
func (a Attrs) Get(key string) (string, bool) {
	v, ok := a.m[key]
	return v, ok
}

// Value returns the value for key, or "" if absent.
func (a Attrs) Value(key string) string {
	return a.m[key]
}

// Len returns the number of attributes.
func (a Attrs) Len() int { return len(a.m) }

// Keys returns the attribute keys in lexicographic order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a.m))
}

// Map returns a copy of the attributes as a plain map.
func (a Attrs) Map() map[string]string {
	if a.m == nil {
		return map[string]string{}
	}
	return maps.Clone(a.m)
}

// merge returns a new bag with b's entries layered over a's.
func (a Attrs) merge(b Attrs) Attrs {
	out := a.Map()
	maps.Copy(out, b.m)
	return Attrs{m: out}
}
