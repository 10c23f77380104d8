// Package graph provides the canonical typed graph model.
//
// # Overview
//
// [Build] turns raw GraphML records into a [Graph]: an ordered list of
// [Node] values and a list of directed [Edge] values, each carrying its
// complete attribute bag. Building is a pure function of its input.
//
// # Derived Fields
//
// Three fields are derived from well-known attributes; the attributes
// themselves stay in the bag:
//
//   - Node.Label: the "Name" attribute when non-empty, otherwise the node id
//   - Node.Type: the "labels" attribute with every ":" removed and surrounding
//     whitespace trimmed, or [UnknownType] when that leaves nothing
//   - Edge.Label: the "label" attribute, else "labels", else ""
//
// For a node exported as <node id="n1" labels=":Forest"> the type is
// "Forest". Multi-label values such as ":Server:DC" become "ServerDC".
//
// # Immutability
//
// Nodes and edges are values and their [Attrs] cannot be modified after
// construction. Accessors return copies.
//
// # Dangling Edges
//
// Edges may reference ids that are not among the graph's nodes. They are kept
// and passed through to rendering; [Graph.Dangling] lists them.
package graph
