// Package render holds the output stages of graphview.
//
// # Overview
//
// Rendering turns a canonical [graph.Graph] into files a viewer can open:
//
//   - [visnet]: the interactive HTML page (vis-network with physics layout)
//   - [export]: post-processing that adds Save PNG and Save SVG buttons
//   - [nodelink]: static Graphviz snapshots in SVG, PNG or PDF
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). The snapshot renderer uses
// them for PNG and PDF output.
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [graph.Graph]: github.com/matzehuels/graphview/pkg/graph.Graph
// [visnet]: github.com/matzehuels/graphview/pkg/render/visnet
// [export]: github.com/matzehuels/graphview/pkg/render/export
// [nodelink]: github.com/matzehuels/graphview/pkg/render/nodelink
package render
