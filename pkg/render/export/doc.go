// Package export adds image-export controls to a rendered graph page.
//
// # Overview
//
// [Inject] inserts [Toolbar] immediately before the first closing body tag
// of a document. The toolbar floats in the top-right corner and offers two
// buttons:
//
//   - Save PNG: encodes the engine's live canvas with toDataURL and
//     downloads graph.png
//   - Save SVG: temporarily replaces the canvas's getContext with a
//     canvas2svg recording context, redraws the network into it, restores
//     the original factory, redraws again and downloads graph.svg
//
// The script expects the page to expose the engine instance as the global
// variable network, as pages from [visnet] do.
//
// # Vector Capture
//
// The getContext substitution is scoped: the original factory is restored
// in a finally block, so a failing redraw never leaves the live view
// drawing into the recorder. Both buttons are disabled while a vector
// export is in flight and re-enabled after restoration.
//
// # Anchors
//
// The lowercase "</body>" is preferred; "</BODY>" is accepted when the
// lowercase form is absent. A document with neither fails with
// INJECTION_ERROR and, for [InjectFile], is left unmodified.
//
// [visnet]: github.com/matzehuels/graphview/pkg/render/visnet
package export
