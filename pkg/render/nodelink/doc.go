// Package nodelink renders static snapshots of a graph with Graphviz.
//
// # Overview
//
// The interactive page needs a browser. For reports and slides, this
// package draws the same graph as a classic node-link diagram: rounded
// boxes filled with the node's type color, connected by labelled arrows.
//
//	dot := nodelink.ToDOT(g, colors, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
//   - Detailed: node labels also list the type and every attribute
//   - LeftToRight: lay ranks out horizontally instead of top to bottom
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
