package graph_test

import (
	"fmt"

	"github.com/matzehuels/graphview/pkg/graph"
	"github.com/matzehuels/graphview/pkg/graphml"
)

func ExampleBuild() {
	g := graph.Build(
		[]graphml.NodeRecord{
			{ID: "n1", Attrs: map[string]string{"labels": ":Forest", "Name": "corp.example"}},
			{ID: "n2", Attrs: map[string]string{"labels": ":Site"}},
		},
		[]graphml.EdgeRecord{
			{Source: "n2", Target: "n1", Attrs: map[string]string{"label": "Linked To"}},
		},
	)

	for _, n := range g.Nodes() {
		fmt.Printf("%s: %s (%s)\n", n.ID, n.Label, n.Type)
	}
	fmt.Println("Types:", g.Types())
	// Output:
	// n1: corp.example (Forest)
	// n2: n2 (Site)
	// Types: [Forest Site]
}

func ExampleTypeFromLabels() {
	fmt.Println(graph.TypeFromLabels(":Forest"))
	fmt.Println(graph.TypeFromLabels(""))
	// Output:
	// Forest
	// Unknown
}
