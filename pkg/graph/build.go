package graph

import "github.com/matzehuels/graphview/pkg/graphml"

// NewNode derives a node from an id and its attribute bag.
func NewNode(id string, attrs map[string]string) Node {
	a := NewAttrs(attrs)
	return Node{
		ID:    id,
		Label: DisplayLabel(id, a),
		Type:  TypeFromLabels(a.Value(AttrLabels)),
		Attrs: a,
	}
}

// NewEdge derives an edge from its endpoints and attribute bag.
func NewEdge(source, target string, attrs map[string]string) Edge {
	a := NewAttrs(attrs)
	return Edge{
		Source: source,
		Target: target,
		Label:  EdgeLabel(a),
		Attrs:  a,
	}
}

// Build assembles the canonical graph from extracted records.
//
// Records are expected to be pre-filtered by the extractor; any that still
// lack an id or endpoint are dropped here too. When several node records
// share an id, the node keeps its first position, its attributes are merged
// with later values winning, and its label and type come from the last
// record.
func Build(nodes []graphml.NodeRecord, edges []graphml.EdgeRecord) *Graph {
	g := &Graph{index: make(map[string]int, len(nodes))}

	for _, rec := range nodes {
		if rec.ID == "" {
			continue
		}
		n := NewNode(rec.ID, rec.Attrs)
		if i, ok := g.index[rec.ID]; ok {
			n.Attrs = g.nodes[i].Attrs.merge(n.Attrs)
			g.nodes[i] = n
			continue
		}
		g.index[rec.ID] = len(g.nodes)
		g.nodes = append(g.nodes, n)
	}

	for _, rec := range edges {
		if rec.Source == "" || rec.Target == "" {
			continue
		}
		g.edges = append(g.edges, NewEdge(rec.Source, rec.Target, rec.Attrs))
	}

	return g
}

// BuildRecords is a convenience wrapper around [Build].
func BuildRecords(r *graphml.Records) *Graph {
	if r == nil {
		return &Graph{}
	}
	return Build(r.Nodes, r.Edges)
}
