// Package graphml extracts raw node and edge records from GraphML documents.
//
// # Overview
//
// The extractor is deliberately tolerant. It does not validate the document
// against the GraphML schema; it looks for the first top-level graph
// container and reads the node and edge elements directly beneath it:
//
//	<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
//	  <graph id="G" edgedefault="directed">
//	    <node id="n1" labels=":Forest"><data key="Name">corp.example</data></node>
//	    <node id="n2" labels=":Site"><data key="Name">HQ</data></node>
//	    <edge source="n2" target="n1" label="Linked To"/>
//	  </graph>
//	</graphml>
//
// The GraphML namespace is optional. Whatever namespace the graph container
// uses (the GraphML namespace or none) is the structural namespace for the
// document; node, edge and data elements in any other namespace are ignored.
//
// # Attribute Bags
//
// Each record carries a map of string attributes. Element attributes are
// captured first (except id on nodes and source/target on edges), then
// every data child with a non-empty key attribute is captured with its text
// trimmed. A data entry whose key matches an element attribute replaces it.
//
// # Skipped Records
//
// Nodes without an id and edges without both endpoints are dropped. This is
// not an error: [Records.Skipped] counts them and [Options.Logger] receives a
// line per skipped record.
//
// # Errors
//
// [Read] returns an error with code PARSE_ERROR for malformed XML and
// SCHEMA_ERROR when there is no graph container. See
// [github.com/matzehuels/graphview/pkg/errors].
package graphml
