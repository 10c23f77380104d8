// Package io provides JSON import and export for canonical graphs.
//
// # Overview
//
// The JSON form of a [graph.Graph] is used in two places: the parsed-graph
// cache stores it between runs, and "graphview render --json" writes it
// next to the HTML page for use by other tools.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {"id": "n1", "label": "corp.example", "type": "Forest",
//	     "attrs": {"Name": "corp.example", "labels": ":Forest"}},
//	    {"id": "n2", "label": "n2", "type": "Site", "attrs": {"labels": ":Site"}}
//	  ],
//	  "edges": [
//	    {"source": "n2", "target": "n1", "label": "Linked To",
//	     "attrs": {"label": "Linked To"}}
//	  ]
//	}
//
// Node and edge order is preserved. Attribute objects are written with
// sorted keys, so exporting the same graph twice yields identical bytes.
//
// # Import
//
// [ReadJSON] and [ImportJSON] rebuild the graph. Stored labels and types
// are used as-is; when missing they are derived from the attributes the
// same way the builder derives them. A node without an id or a repeated
// id is an INVALID_FORMAT error, as is an edge without both endpoints.
//
// [graph.Graph]: github.com/matzehuels/graphview/pkg/graph.Graph
package io
