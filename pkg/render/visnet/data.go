package visnet

import (
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/palette"
)

// Keys reserved for the engine's label and type channel. They never appear
// in hover text.
const (
	keyDisplay   = "display"
	keyNodeType  = "node_type"
	keyEdgeLabel = "edge_label"
)

// edgeNamespace scopes the name-based edge ids.
var edgeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/matzehuels/graphview/edge"))

// NodeData is one entry of the engine's node data set.
type NodeData struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// EdgeData is one entry of the engine's edge data set.
type EdgeData struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Arrows string `json:"arrows"`
}

// Data is the engine input for one graph.
type Data struct {
	Nodes []NodeData `json:"nodes"`
	Edges []EdgeData `json:"edges"`
}

// Build converts g into engine input, coloring nodes by type.
//
// Edge endpoints that are not nodes of g are added as placeholder nodes of
// type [graph.UnknownType] after the regular nodes, so dangling edges stay
// visible. Color maps built from [graph.Graph.RenderedTypes] give them a
// palette slot.
func Build(g *graph.Graph, colors palette.Map) Data {
	data := Data{
		Nodes: make([]NodeData, 0, g.NodeCount()),
		Edges: make([]EdgeData, 0, g.EdgeCount()),
	}

	for _, n := range g.Nodes() {
		data.Nodes = append(data.Nodes, NodeData{
			ID:    n.ID,
			Label: n.Label,
			Title: nodeTitle(n),
			Color: colors.Lookup(n.Type),
		})
	}

	for _, id := range g.Placeholders() {
		n := graph.Node{ID: id, Label: id, Type: graph.UnknownType}
		data.Nodes = append(data.Nodes, NodeData{
			ID:    id,
			Label: id,
			Title: nodeTitle(n),
			Color: colors.Lookup(n.Type),
		})
	}

	ordinals := make(map[[2]string]int)
	for _, e := range g.Edges() {
		pair := [2]string{e.Source, e.Target}
		ord := ordinals[pair]
		ordinals[pair] = ord + 1

		data.Edges = append(data.Edges, EdgeData{
			ID:     EdgeID(e.Source, e.Target, ord),
			From:   e.Source,
			To:     e.Target,
			Label:  e.Label,
			Title:  edgeTitle(e),
			Arrows: "to",
		})
	}

	return data
}

// EdgeID returns the stable id of the ordinal-th edge from source to target.
func EdgeID(source, target string, ordinal int) string {
	name := source + "\x00" + target + "\x00" + strconv.Itoa(ordinal)
	return uuid.NewSHA1(edgeNamespace, []byte(name)).String()
}

func nodeTitle(n graph.Node) string {
	lines := []string{
		n.Label,
		"Type: " + n.Type,
		"ID: " + n.ID,
	}
	lines = appendAttrs(lines, n.Attrs, keyDisplay, keyNodeType)
	return strings.Join(lines, "\n")
}

func edgeTitle(e graph.Edge) string {
	head := e.Label
	if head == "" {
		head = "edge"
	}
	lines := appendAttrs([]string{head}, e.Attrs, keyEdgeLabel)
	return strings.Join(lines, "\n")
}

func appendAttrs(lines []string, attrs graph.Attrs, skip ...string) []string {
	for _, k := range attrs.Keys() {
		if slices.Contains(skip, k) {
			continue
		}
		lines = append(lines, k+": "+attrs.Value(k))
	}
	return lines
}
