// Package visnet renders a graph as a self-contained vis-network HTML page.
//
// # Overview
//
// [Build] translates a [graph.Graph] and its type colors into the engine's
// node and edge records. [Render] and [WriteFile] emit the HTML document:
// the vis-network library from a CDN, the data sets, a fixed barnes-hut
// physics configuration, and optionally the engine's own configuration
// panel for physics, layout and interaction.
//
//	data := visnet.Build(g, palette.Assign(g.RenderedTypes(), palette.Default))
//	err := visnet.WriteFile("out/graph.html", data, visnet.DefaultOptions())
//
// The page declares the live engine instance as the global variable
// network, which the export toolbar in [export] relies on.
//
// # Hover Text
//
// Node titles list the label, "Type: <type>", "ID: <id>" and then every
// attribute as "key: value" sorted by key. Edge titles start with the edge
// label (or "edge") followed by the sorted attributes. Titles are plain text
// with one entry per line; the page styles tooltips to keep line breaks.
//
// # Determinism
//
// Rendering the same graph with the same options produces byte-identical
// output. Edge ids are name-based UUIDs derived from the endpoints and the
// edge's ordinal among parallel edges, and all maps are emitted in sorted
// order. Layout randomness lives entirely in the browser.
//
// [export]: github.com/matzehuels/graphview/pkg/render/export
package visnet
