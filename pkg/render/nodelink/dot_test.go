package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/graphml"
	"github.com/matzehuels/graphview/pkg/palette"
)

func sampleGraph() *graph.Graph {
	return graph.Build(
		[]graphml.NodeRecord{
			{ID: "n1", Attrs: map[string]string{"labels": ":Forest", "Name": "corp.example"}},
			{ID: "n2", Attrs: map[string]string{"labels": ":Site"}},
		},
		[]graphml.EdgeRecord{
			{Source: "n2", Target: "n1", Attrs: map[string]string{"label": "Linked To"}},
			{Source: "n1", Target: "n2"},
		},
	)
}

func TestToDOT(t *testing.T) {
	g := sampleGraph()
	dot := ToDOT(g, palette.Assign(g.Types(), palette.Default), Options{})

	for _, want := range []string{
		"digraph G {",
		"rankdir=TB;",
		`"n1" [label="corp.example", fillcolor="#4C78A8", tooltip="Forest"];`,
		`"n2" [label="n2", fillcolor="#F58518", tooltip="Site"];`,
		`"n2" -> "n1" [label="Linked To"];`,
		`"n1" -> "n2";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestToDOTDanglingEndpoints(t *testing.T) {
	g := graph.Build(
		[]graphml.NodeRecord{{ID: "a", Attrs: map[string]string{"labels": ":Site"}}},
		[]graphml.EdgeRecord{{Source: "a", Target: "ghost"}},
	)
	dot := ToDOT(g, palette.Assign(g.RenderedTypes(), palette.Default), Options{})

	want := `"ghost" [label="ghost", fillcolor="#F58518", tooltip="Unknown"];`
	if !strings.Contains(dot, want) {
		t.Errorf("DOT missing %q\n%s", want, dot)
	}
}

func TestToDOTOptions(t *testing.T) {
	g := sampleGraph()
	dot := ToDOT(g, palette.Map{}, Options{Detailed: true, LeftToRight: true})

	if !strings.Contains(dot, "rankdir=LR;") {
		t.Error("LeftToRight should set rankdir=LR")
	}
	if !strings.Contains(dot, `label="corp.example\nType: Forest\nName: corp.example\nlabels: :Forest"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `fillcolor="`+palette.Neutral+`"`) {
		t.Error("unmapped types should use the neutral color")
	}
}

func TestToDOTQuotesIDs(t *testing.T) {
	g := graph.Build([]graphml.NodeRecord{{ID: `say "hi"`}}, nil)
	dot := ToDOT(g, palette.Map{}, Options{})
	if !strings.Contains(dot, `"say \"hi\""`) {
		t.Errorf("quotes in ids should be escaped:\n%s", dot)
	}
}

func TestFmtLabel(t *testing.T) {
	n := graph.NewNode("x", map[string]string{"Name": "Ex"})
	if got := fmtLabel(n, false); got != "Ex" {
		t.Errorf("fmtLabel() = %q, want Ex", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	noBox := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(noBox)) != string(noBox) {
		t.Error("svg without viewBox should be unchanged")
	}
}
