package graphml

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/matzehuels/graphview/pkg/errors"
)

const (
	// Ext is the conventional file extension for GraphML documents.
	Ext = ".graphml"
	// Namespace is the canonical XML namespace for GraphML.
	Namespace = "http://graphml.graphdrawing.org/xmlns"
)

// Element and attribute names recognized by the extractor.
const (
	elemGraph = "graph"
	elemNode  = "node"
	elemEdge  = "edge"
	elemData  = "data"

	attrID     = "id"
	attrSource = "source"
	attrTarget = "target"
	attrKey    = "key"
)

// NodeRecord is a node as found in the document, before interpretation.
type NodeRecord struct {
	ID    string
	Attrs map[string]string
}

// EdgeRecord is an edge as found in the document, before interpretation.
type EdgeRecord struct {
	Source string
	Target string
	Attrs  map[string]string
}

// Records holds the raw records of one graph in document order.
type Records struct {
	Nodes []NodeRecord
	Edges []EdgeRecord

	// Skipped counts node and edge records dropped for missing identifiers.
	Skipped int
}

// Options configures extraction.
type Options struct {
	// Logger receives one line per skipped record. Nil discards them.
	Logger func(format string, args ...any)
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// ReadFile opens the GraphML document at path and extracts its records.
// A missing file yields FILE_NOT_FOUND; other errors match [Read].
func ReadFile(path string, opts Options) (*Records, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Read(f, opts)
}

// Read parses a GraphML document from r and extracts node and edge records.
// Read does not close r.
func Read(r io.Reader, opts Options) (*Records, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "malformed XML")
	}

	graph := findGraph(doc)
	if graph == nil {
		return nil, errors.New(errors.ErrCodeSchema, "could not find <graph> element")
	}
	ns := graph.NamespaceURI

	out := &Records{}
	for child := graph.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.NamespaceURI != ns {
			continue
		}
		switch child.Data {
		case elemNode:
			rec, ok := readNode(child, ns)
			if !ok {
				out.Skipped++
				opts.logf("skipping node without id")
				continue
			}
			out.Nodes = append(out.Nodes, rec)
		case elemEdge:
			rec, ok := readEdge(child, ns)
			if !ok {
				out.Skipped++
				opts.logf("skipping edge with missing endpoint (source=%q target=%q)", rec.Source, rec.Target)
				continue
			}
			out.Edges = append(out.Edges, rec)
		}
	}
	return out, nil
}

// findGraph returns the first graph element directly beneath the document
// root, in the GraphML namespace or in no namespace.
func findGraph(doc *xmlquery.Node) *xmlquery.Node {
	root := firstElement(doc)
	if root == nil {
		return nil
	}
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != elemGraph {
			continue
		}
		if child.NamespaceURI == Namespace || child.NamespaceURI == "" {
			return child
		}
	}
	return nil
}

func firstElement(n *xmlquery.Node) *xmlquery.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return child
		}
	}
	return nil
}

func readNode(n *xmlquery.Node, ns string) (NodeRecord, bool) {
	rec := NodeRecord{ID: n.SelectAttr(attrID)}
	if rec.ID == "" {
		return rec, false
	}
	rec.Attrs = collectAttrs(n, ns, attrID)
	return rec, true
}

func readEdge(n *xmlquery.Node, ns string) (EdgeRecord, bool) {
	rec := EdgeRecord{
		Source: n.SelectAttr(attrSource),
		Target: n.SelectAttr(attrTarget),
	}
	if rec.Source == "" || rec.Target == "" {
		return rec, false
	}
	rec.Attrs = collectAttrs(n, ns, attrSource, attrTarget)
	return rec, true
}

// collectAttrs builds the attribute bag: element attributes first, then data
// children, so data entries win on key collisions.
func collectAttrs(n *xmlquery.Node, ns string, exclude ...string) map[string]string {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		if isNamespaceDecl(a) {
			continue
		}
		key := attrName(a)
		if a.Name.Space == "" && slices.Contains(exclude, key) {
			continue
		}
		attrs[key] = a.Value
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode || child.Data != elemData || child.NamespaceURI != ns {
			continue
		}
		key := child.SelectAttr(attrKey)
		if key == "" {
			continue
		}
		attrs[key] = strings.TrimSpace(leadingText(child))
	}
	return attrs
}

// leadingText returns the character data of n up to its first child element.
func leadingText(n *xmlquery.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			break
		}
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}

func isNamespaceDecl(a xmlquery.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// attrName keys namespaced attributes as "{uri}local" and plain ones by
// their local name.
func attrName(a xmlquery.Attr) string {
	if a.Name.Space == "" {
		return a.Name.Local
	}
	space := a.Name.Space
	if a.NamespaceURI != "" {
		space = a.NamespaceURI
	}
	return "{" + space + "}" + a.Name.Local
}
