package graphml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/matzehuels/graphview/pkg/errors"
)

const forestDoc = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="Name" for="node" attr.name="Name" attr.type="string"/>
  <graph id="G" edgedefault="directed">
    <node id="n1" labels=":Forest"><data key="Name">Pine Wood</data></node>
    <node id="n2" labels=":Site"/>
    <edge source="n1" target="n2" label="CONTAINS"/>
  </graph>
</graphml>`

func TestRead(t *testing.T) {
	recs, err := Read(strings.NewReader(forestDoc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := &Records{
		Nodes: []NodeRecord{
			{ID: "n1", Attrs: map[string]string{"labels": ":Forest", "Name": "Pine Wood"}},
			{ID: "n2", Attrs: map[string]string{"labels": ":Site"}},
		},
		Edges: []EdgeRecord{
			{Source: "n1", Target: "n2", Attrs: map[string]string{"label": "CONTAINS"}},
		},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadNoNamespace(t *testing.T) {
	doc := `<graphml><graph><node id="a"/><node id="b"/><edge source="a" target="b"/></graph></graphml>`
	recs, err := Read(strings.NewReader(doc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs.Nodes) != 2 || len(recs.Edges) != 1 {
		t.Errorf("got %d nodes, %d edges; want 2, 1", len(recs.Nodes), len(recs.Edges))
	}
}

func TestReadDataOverridesAttribute(t *testing.T) {
	doc := `<graphml xmlns="http://graphml.graphdrawing.org/xmlns"><graph>
<node id="a" labels=":Old"><data key="labels">:New</data></node>
</graph></graphml>`
	recs, err := Read(strings.NewReader(doc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := recs.Nodes[0].Attrs["labels"]; got != ":New" {
		t.Errorf("labels = %q, want %q", got, ":New")
	}
}

func TestReadDataText(t *testing.T) {
	doc := `<graphml><graph>
<node id="a"><data key="Name">
    Pine Wood
  </data><data>no key</data><data key="Empty"/></node>
</graph></graphml>`
	recs, err := Read(strings.NewReader(doc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := map[string]string{"Name": "Pine Wood", "Empty": ""}
	if diff := cmp.Diff(want, recs.Nodes[0].Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadSkipsIncompleteRecords(t *testing.T) {
	doc := `<graphml><graph>
<node id="a"/>
<node/>
<node id=""/>
<edge source="a"/>
<edge target="a"/>
<edge source="" target="a"/>
<edge source="a" target="ghost"/>
</graph></graphml>`

	var logged []string
	opts := Options{Logger: func(format string, args ...any) { logged = append(logged, format) }}

	recs, err := Read(strings.NewReader(doc), opts)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs.Nodes) != 1 {
		t.Errorf("nodes = %d, want 1", len(recs.Nodes))
	}
	if len(recs.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(recs.Edges))
	}
	if recs.Edges[0].Target != "ghost" {
		t.Errorf("dangling edge target = %q, want ghost", recs.Edges[0].Target)
	}
	if recs.Skipped != 5 {
		t.Errorf("Skipped = %d, want 5", recs.Skipped)
	}
	if len(logged) != 5 {
		t.Errorf("logged %d lines, want 5", len(logged))
	}
}

func TestReadOnlyDirectChildren(t *testing.T) {
	doc := `<graphml><graph>
<node id="outer"><graph><node id="inner"/></graph></node>
</graph><graph><node id="second"/></graph></graphml>`
	recs, err := Read(strings.NewReader(doc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	ids := make([]string, 0, len(recs.Nodes))
	for _, n := range recs.Nodes {
		ids = append(ids, n.ID)
	}
	if diff := cmp.Diff([]string{"outer"}, ids); diff != "" {
		t.Errorf("node ids mismatch (-want +got):\n%s", diff)
	}
}

func TestReadIgnoresForeignNamespace(t *testing.T) {
	doc := `<graphml xmlns="http://graphml.graphdrawing.org/xmlns" xmlns:y="http://www.yworks.com/xml/graphml">
<graph>
<node id="a" y:color="red"><data key="Name">A</data><y:ShapeNode/></node>
<y:node id="b"/>
</graph></graphml>`
	recs, err := Read(strings.NewReader(doc), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(recs.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(recs.Nodes))
	}
	want := map[string]string{
		"Name": "A",
		"{http://www.yworks.com/xml/graphml}color": "red",
	}
	if diff := cmp.Diff(want, recs.Nodes[0].Attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code errors.Code
	}{
		{"malformed", `<graphml><graph>`, errors.ErrCodeParse},
		{"mismatched tags", `<graphml><graph></graphml>`, errors.ErrCodeParse},
		{"no graph", `<graphml><key id="k"/></graphml>`, errors.ErrCodeSchema},
		{"nested graph only", `<graphml><wrapper><graph/></wrapper></graphml>`, errors.ErrCodeSchema},
		{"wrong namespace", `<graphml xmlns:x="urn:other"><x:graph/></graphml>`, errors.ErrCodeSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.doc), Options{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestReadEmptyGraph(t *testing.T) {
	recs, err := Read(strings.NewReader(`<graphml><graph/></graphml>`), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if diff := cmp.Diff(&Records{}, recs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest"+Ext)
	if err := os.WriteFile(path, []byte(forestDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	recs, err := ReadFile(path, Options{})
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(recs.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(recs.Nodes))
	}

	_, err = ReadFile(filepath.Join(dir, "missing"+Ext), Options{})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: got %v, want FILE_NOT_FOUND", err)
	}
	if errors.ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", errors.ExitCode(err))
	}
}
