package graph

import (
	"maps"
	"slices"
	"strings"
)

// Well-known attribute keys and derivation constants.
const (
	// AttrName holds a node's display name.
	AttrName = "Name"
	// AttrLabels holds a node's type in ":Type" form, or an edge's fallback label.
	AttrLabels = "labels"
	// AttrLabel holds an edge's label.
	AttrLabel = "label"

	// TypeMarker is stripped from the labels attribute to obtain the type.
	TypeMarker = ":"
	// UnknownType is the type of nodes without a usable labels attribute.
	UnknownType = "Unknown"
)

// Node is a graph vertex with its derived display label and type.
type Node struct {
	ID    string // Unique within the graph
	Label string // Display label
	Type  string // Type tag used for coloring
	Attrs Attrs  // All extracted attributes, including Name and labels
}

// Edge is a directed connection between two node ids.
type Edge struct {
	Source string // Source node id (may be dangling)
	Target string // Target node id (may be dangling)
	Label  string // Display label, possibly empty
	Attrs  Attrs  // All extracted attributes
}

// Graph is an ordered collection of nodes and directed edges.
//
// The zero value is an empty graph. Graph is safe for concurrent reads; it
// has no mutating methods.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int
}

// New assembles a graph from already-derived nodes and edges, as read back
// from a serialized graph. Nodes with an empty id are dropped and a
// duplicate id replaces the earlier node in place.
func New(nodes []Node, edges []Edge) *Graph {
	g := &Graph{index: make(map[string]int, len(nodes))}
	for _, n := range nodes {
		if n.ID == "" {
			continue
		}
		if i, ok := g.index[n.ID]; ok {
			g.nodes[i] = n
			continue
		}
		g.index[n.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}
	for _, e := range edges {
		if e.Source == "" || e.Target == "" {
			continue
		}
		g.edges = append(g.edges, e)
	}
	return g
}

// Nodes returns the nodes in document order.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns the edges in document order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Types returns the distinct node types in lexicographic order.
func (g *Graph) Types() []string {
	seen := make(map[string]struct{}, len(g.nodes))
	for _, n := range g.nodes {
		seen[n.Type] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// RenderedTypes returns the distinct types of every node a renderer draws:
// [Graph.Types] plus [UnknownType] when some edge endpoint is not a node.
func (g *Graph) RenderedTypes() []string {
	types := g.Types()
	if len(g.Placeholders()) > 0 && !slices.Contains(types, UnknownType) {
		types = append(types, UnknownType)
		slices.Sort(types)
	}
	return types
}

// Placeholders returns the edge endpoints that are not nodes of g, in order
// of first appearance. Renderers draw them as nodes of type [UnknownType].
func (g *Graph) Placeholders() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range g.edges {
		for _, id := range [2]string{e.Source, e.Target} {
			if _, ok := g.index[id]; ok || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// Dangling returns the edges whose source or target is not a node of g.
func (g *Graph) Dangling() []Edge {
	var out []Edge
	for _, e := range g.edges {
		_, src := g.index[e.Source]
		_, dst := g.index[e.Target]
		if !src || !dst {
			out = append(out, e)
		}
	}
	return out
}

// TypeFromLabels normalizes a labels value such as ":Forest" to "Forest".
// Every type marker is removed, not only a leading one.
func TypeFromLabels(labels string) string {
	t := strings.TrimSpace(strings.ReplaceAll(labels, TypeMarker, ""))
	if t == "" {
		return UnknownType
	}
	return t
}

// DisplayLabel returns the Name attribute when non-empty, otherwise id.
func DisplayLabel(id string, attrs Attrs) string {
	if name := attrs.Value(AttrName); name != "" {
		return name
	}
	return id
}

// EdgeLabel returns the first non-empty of the label and labels attributes.
func EdgeLabel(attrs Attrs) string {
	if l := attrs.Value(AttrLabel); l != "" {
		return l
	}
	return attrs.Value(AttrLabels)
}
