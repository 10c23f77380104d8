package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/graphview/pkg/errors"
	"github.com/matzehuels/graphview/pkg/graph"
)

// ReadJSON decodes a JSON graph from r.
//
// ReadJSON returns an INVALID_FORMAT error if the JSON is malformed, a node
// has an empty or duplicate id, or an edge lacks an endpoint. Edges that
// reference unknown nodes are kept, as in parsed graphs. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph JSON")
	}

	seen := make(map[string]bool, len(data.Nodes))
	nodes := make([]graph.Node, 0, len(data.Nodes))
	for i, n := range data.Nodes {
		if n.ID == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %d: missing id", i)
		}
		if seen[n.ID] {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %s: duplicate id", n.ID)
		}
		seen[n.ID] = true

		nd := graph.NewNode(n.ID, n.Attrs)
		if n.Label != "" {
			nd.Label = n.Label
		}
		if n.Type != "" {
			nd.Type = n.Type
		}
		nodes = append(nodes, nd)
	}

	edges := make([]graph.Edge, 0, len(data.Edges))
	for i, e := range data.Edges {
		if e.Source == "" || e.Target == "" {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "edge %d: missing endpoint", i)
		}
		ed := graph.NewEdge(e.Source, e.Target, e.Attrs)
		if e.Label != "" {
			ed.Label = e.Label
		}
		edges = append(edges, ed)
	}

	return graph.New(nodes, edges), nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
