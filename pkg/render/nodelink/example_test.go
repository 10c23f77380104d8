package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/graphml"
	"github.com/matzehuels/graphview/pkg/palette"
	"github.com/matzehuels/graphview/pkg/render/nodelink"
)

func ExampleToDOT() {
	g := graph.Build(
		[]graphml.NodeRecord{
			{ID: "web", Attrs: map[string]string{"labels": ":Server"}},
			{ID: "db", Attrs: map[string]string{"labels": ":Server"}},
		},
		[]graphml.EdgeRecord{
			{Source: "web", Target: "db", Attrs: map[string]string{"label": "queries"}},
		},
	)

	dot := nodelink.ToDOT(g, palette.Assign(g.RenderedTypes(), palette.Default), nodelink.Options{})
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			fmt.Println(strings.TrimSpace(line))
		}
	}
	// Output:
	// "web" -> "db" [label="queries"];
}
