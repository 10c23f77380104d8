// Package pkg provides the core libraries for graphview.
//
// # Overview
//
// Graphview turns a GraphML document into a self-contained interactive HTML
// page: nodes colored by type, a force-directed layout, hover tooltips and
// optional Save PNG / Save SVG buttons.
//
// # Architecture
//
// The data flow through graphview:
//
//	GraphML document
//	       ↓
//	  [graphml] package (extract node and edge records)
//	       ↓
//	  [graph] package (derive labels and types)
//	       ↓
//	  [palette] package (assign a color per type)
//	       ↓
//	  [render/visnet] package (write the network page)
//	       ↓
//	  [render/export] package (inject the export toolbar)
//
// [pipeline] runs these stages with caching ([cache]), logging and
// [observability] hooks.
//
// # Quick Start
//
//	recs, _ := graphml.ReadFile("forest.graphml", graphml.Options{})
//	g := graph.BuildRecords(recs)
//	colors := palette.Assign(g.RenderedTypes(), palette.Default)
//	_ = visnet.WriteFile("graph.html", visnet.Build(g, colors), visnet.DefaultOptions())
//	_ = export.InjectFile("graph.html")
//
// # Supporting Packages
//
// [errors] - Coded errors and exit statuses.
//
// [config] - TOML settings for the page, palette and cache.
//
// [io] - Canonical graph JSON.
//
// [render/nodelink] - Static Graphviz snapshots (SVG, PNG, PDF).
//
// [buildinfo] - Version information set at build time.
package pkg
