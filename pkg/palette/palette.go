// Package palette assigns display colors to node types.
//
// Assignment depends only on the set of distinct types: tags are sorted and
// paired with palette entries in order, wrapping around when there are more
// types than colors. Two types may therefore share a color once the palette
// is exhausted.
//
//	m := palette.Assign([]string{"Site", "Forest"}, palette.Default)
//	m.Lookup("Forest") // "#4C78A8"
//	m.Lookup("Site")   // "#F58518"
//	m.Lookup("Other")  // palette.Neutral
package palette

import (
	"slices"
)

// Palette is an ordered list of CSS colors.
type Palette []string

// Default is the built-in ten-color categorical palette.
var Default = Palette{
	"#4C78A8", "#F58518", "#54A24B", "#E45756", "#72B7B2",
	"#EECA3B", "#B279A2", "#FF9DA6", "#9D755D", "#BAB0AC",
}

// Neutral is returned for types that have no assigned color.
const Neutral = "#999999"

// Map associates type tags with colors.
type Map struct {
	colors  map[string]string
	neutral string
}

// Assign maps the distinct tags in types to colors from p. The input order
// of types does not matter. An empty palette falls back to [Default].
func Assign(types []string, p Palette) Map {
	return AssignWithNeutral(types, p, Neutral)
}

// AssignWithNeutral is [Assign] with a custom fallback color.
func AssignWithNeutral(types []string, p Palette, neutral string) Map {
	if len(p) == 0 {
		p = Default
	}
	if neutral == "" {
		neutral = Neutral
	}

	sorted := slices.Clone(types)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	m := Map{colors: make(map[string]string, len(sorted)), neutral: neutral}
	for i, t := range sorted {
		m.colors[t] = p[i%len(p)]
	}
	return m
}

// Lookup returns the color for a type, or the neutral color if unmapped.
func (m Map) Lookup(typ string) string {
	if c, ok := m.colors[typ]; ok {
		return c
	}
	if m.neutral == "" {
		return Neutral
	}
	return m.neutral
}

// Len returns the number of mapped types.
func (m Map) Len() int { return len(m.colors) }

// Types returns the mapped types in lexicographic order.
func (m Map) Types() []string {
	out := make([]string, 0, len(m.colors))
	for t := range m.colors {
		out = append(out, t)
	}
	slices.Sort(out)
	return out
}
